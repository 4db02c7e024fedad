package entity

import "time"

// Reservation is a booking of a class block slot for one civil date.
type Reservation struct {
	ID        string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CreatedAt time.Time
	Date      string `gorm:"not null;size:10;uniqueIndex:idx_reservation_slot"`
	BlockID   string `gorm:"not null;type:uuid;uniqueIndex:idx_reservation_slot"`
	UserID    string `gorm:"not null;type:uuid;uniqueIndex:idx_reservation_slot"`
	Block     ClassBlock `gorm:"foreignKey:BlockID"`
	User      User       `gorm:"foreignKey:UserID"`
}
