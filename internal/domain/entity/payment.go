package entity

import "time"

const (
	PaymentMethodCash     = "cash"
	PaymentMethodTransfer = "transfer"
	PaymentMethodStore    = "store"
)

// Payment is a registered membership payment or a storefront checkout.
type Payment struct {
	ID        string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CreatedAt time.Time
	UserID    string `gorm:"not null;type:uuid;index"`
	User      User
	// Amount in the smallest currency unit.
	Amount int `gorm:"not null"`
	// Months is how many months of membership this payment covers;
	// zero for storefront purchases.
	Months  int
	Method  string `gorm:"not null"`
	Concept string
}
