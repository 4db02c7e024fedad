package errorz

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailInUse         = errors.New("email already in use")
	ErrWeakPassword       = errors.New("password too weak")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("not found")
	ErrInvalidQRPayload   = errors.New("invalid qr payload")
	ErrInvalidDate        = errors.New("invalid civil date")
	ErrMembershipExpired  = errors.New("membership expired")
	ErrNotAuthorized      = errors.New("user not authorized by admin")
	ErrClassFull          = errors.New("class block is full")
	ErrAlreadyBooked      = errors.New("slot already booked")
	ErrEmptyCart          = errors.New("cart is empty")
)
