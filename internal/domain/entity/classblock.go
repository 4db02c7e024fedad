package entity

import (
	"time"
)

// ClassBlock is a weekly-repeating scheduled slot on the club calendar.
type ClassBlock struct {
	ID        string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CreatedAt time.Time
	UpdatedAt time.Time
	// DayOfWeek is 0-6 with 0 = Sunday. A block without a day never joins
	// the active-weekday set.
	DayOfWeek *int
	StartTime string `gorm:"not null"` // HH:MM civil time
	EndTime   string `gorm:"not null"` // HH:MM civil time
	Type      string `gorm:"not null"`
	// ColorKey selects a display color; the block type is used when empty.
	ColorKey      string
	ProfessorID   string
	ProfessorName string
	MinCapacity   int
	MaxCapacity   int
	// Active and Permanent default to true when absent.
	Active    *bool
	Permanent *bool
}

func (b *ClassBlock) IsActive() bool {
	return b.Active == nil || *b.Active
}

// IsPermanent distinguishes standing recurring blocks from one-off blocks.
func (b *ClassBlock) IsPermanent() bool {
	return b.Permanent == nil || *b.Permanent
}

// ColorLookupKey returns the key used for color resolution.
func (b *ClassBlock) ColorLookupKey() string {
	if b.ColorKey != "" {
		return b.ColorKey
	}
	return b.Type
}
