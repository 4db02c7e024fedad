package entity

import "time"

type NotificationType string

const (
	NotificationTypeExpiring NotificationType = "membership_expiring"
	NotificationTypePayment  NotificationType = "payment_registered"
	NotificationTypeGeneral  NotificationType = "general"
)

// Notification is a persisted per-user notice shown in the member area.
type Notification struct {
	ID        string           `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CreatedAt time.Time
	UserID    string           `gorm:"not null;type:uuid;index"`
	Type      NotificationType `gorm:"not null"`
	Title     string           `gorm:"not null"`
	Body      string
	ReadAt    *time.Time

	User User `gorm:"foreignKey:UserID"`
}
