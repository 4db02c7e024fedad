package entity

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type Role string

const (
	Admin     Role = "admin"
	Professor Role = "professor"
	Student   Role = "student"
)

type User struct {
	ID           string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt
	Name         string `gorm:"not null"`
	Surname      string
	Email        string `gorm:"not null;uniqueIndex"`
	NationalID   string
	PasswordHash string `gorm:"not null"`
	// Authorized is the manual admin gate on booking and attendance privileges.
	Authorized bool `gorm:"not null;default:false"`
	Roles      pq.StringArray `gorm:"type:text[]"`
	// ExpiryDate is the membership paid-through civil date (YYYY-MM-DD).
	// Empty means no paid membership on record.
	ExpiryDate    string
	LastPaymentAt *time.Time
	LastLoginAt   *time.Time
}

func (u *User) HasRole(role Role) bool {
	for _, r := range u.Roles {
		if Role(r) == role {
			return true
		}
	}
	return false
}

func (u *User) IsAdmin() bool {
	return u.HasRole(Admin)
}

// IsStudent reports whether the user carries neither the admin nor the
// professor tag. An empty role set counts as student.
func (u *User) IsStudent() bool {
	return !u.HasRole(Admin) && !u.HasRole(Professor)
}
