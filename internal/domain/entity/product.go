package entity

import (
	"time"

	"gorm.io/gorm"
)

// Product is a storefront item.
type Product struct {
	ID          string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt
	Title       string `gorm:"not null"`
	Description string
	// Price is stored in the smallest currency unit.
	Price    int `gorm:"not null"`
	ImageURL string
	Stock    int
	Active   *bool
}

func (p *Product) IsActive() bool {
	return p.Active == nil || *p.Active
}
