package entity

import (
	"time"

	"gorm.io/gorm"

	"github.com/ironclub/gym-server/internal/domain/utils/location"
)

// Event is a one-off club event (seminar, open mat, tournament).
type Event struct {
	ID          string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt
	Name        string `gorm:"not null"`
	Description string
	Location    string
	StartTime   time.Time `gorm:"not null"`
	EndTime     time.Time
	ImageURL    string
}

// IsOver reports whether the event already started, shifted by additionalTime.
// A positive additionalTime keeps the event "open" for that long after start.
func (e *Event) IsOver(additionalTime time.Duration) bool {
	return e.StartTime.Before(time.Now().In(location.Location()).Add(-additionalTime))
}
