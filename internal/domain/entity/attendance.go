package entity

import "time"

// Attendance is one presence mark per user per civil date.
type Attendance struct {
	Date      string `gorm:"primaryKey;size:10"` // YYYY-MM-DD civil date
	UserID    string `gorm:"primaryKey;type:uuid"`
	Present   bool   `gorm:"not null"`
	Time      string // HH:MM civil time of the mark
	Name      string // denormalized display name for admin reports
	CreatedAt time.Time
	UpdatedAt time.Time
}
