package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ironclub/gym-server/internal/domain/common/errorz"
)

type Success struct {
	Message string `json:"message"`
}

type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

type Token struct {
	AccessToken string `json:"accessToken"`
	Landing     string `json:"landing"`
}

// FromError writes the canonical error envelope for a domain error.
func FromError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errorz.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, Error{Code: "INVALID_CREDENTIALS", Message: "invalid email or password"})
	case errors.Is(err, errorz.ErrEmailInUse):
		c.JSON(http.StatusConflict, Error{Code: "EMAIL_IN_USE", Message: "an account with this email already exists"})
	case errors.Is(err, errorz.ErrWeakPassword):
		c.JSON(http.StatusBadRequest, Error{Code: "WEAK_PASSWORD", Message: "password does not meet the minimum length"})
	case errors.Is(err, errorz.ErrForbidden):
		c.JSON(http.StatusForbidden, Error{Code: "FORBIDDEN", Message: "not allowed"})
	case errors.Is(err, errorz.ErrInvalidQRPayload):
		c.JSON(http.StatusBadRequest, Error{Code: "INVALID_QR", Message: "code is not a member check-in code"})
	case errors.Is(err, errorz.ErrInvalidDate):
		c.JSON(http.StatusBadRequest, Error{Code: "INVALID_DATE", Message: "date must be YYYY-MM-DD"})
	case errors.Is(err, errorz.ErrMembershipExpired):
		c.JSON(http.StatusForbidden, Error{Code: "MEMBERSHIP_EXPIRED", Message: "membership is expired"})
	case errors.Is(err, errorz.ErrNotAuthorized):
		c.JSON(http.StatusForbidden, Error{Code: "NOT_AUTHORIZED", Message: "account is not authorized yet"})
	case errors.Is(err, errorz.ErrClassFull):
		c.JSON(http.StatusConflict, Error{Code: "CLASS_FULL", Message: "class is at capacity"})
	case errors.Is(err, errorz.ErrAlreadyBooked):
		c.JSON(http.StatusConflict, Error{Code: "ALREADY_BOOKED", Message: "slot already booked"})
	case errors.Is(err, errorz.ErrEmptyCart):
		c.JSON(http.StatusBadRequest, Error{Code: "EMPTY_CART", Message: "cart is empty"})
	case errors.Is(err, errorz.ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, Error{Code: "NOT_FOUND", Message: "resource not found"})
	default:
		c.JSON(http.StatusInternalServerError, Error{Code: "INTERNAL", Message: "internal server error"})
	}
}

// BadRequest writes a validation error envelope.
func BadRequest(c *gin.Context, details string) {
	c.JSON(http.StatusBadRequest, Error{
		Code:    "VALIDATION_ERROR",
		Message: "request validation failed",
		Details: details,
	})
}
