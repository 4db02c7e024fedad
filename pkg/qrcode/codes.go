package qr

import (
	"image/color"
	"strings"

	"github.com/google/uuid"

	"github.com/ironclub/gym-server/internal/domain/common/errorz"
)

// checkInScheme prefixes every member check-in code so stray QR scans
// (URLs, wifi configs) are rejected at the door.
const checkInScheme = "gym://checkin/"

// CheckIn is the club's rendering style for member check-in codes.
var CheckIn = Config{
	Size:          512,
	LogoScale:     0.2,
	Background:    color.RGBA{R: 20, G: 20, B: 20, A: 255},
	Foreground:    color.RGBA{R: 230, G: 230, B: 230, A: 255},
	RecoveryLevel: 3,
	QuietZone:     16,
}

// BuildCheckInPayload encodes a member's ID into the check-in scheme.
func BuildCheckInPayload(userID string) string {
	return checkInScheme + userID
}

// ParseCheckInPayload extracts the member ID from a scanned code.
func ParseCheckInPayload(payload string) (string, error) {
	raw, ok := strings.CutPrefix(payload, checkInScheme)
	if !ok {
		return "", errorz.ErrInvalidQRPayload
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", errorz.ErrInvalidQRPayload
	}
	return id.String(), nil
}

// GenerateCheckIn renders a member's check-in code in the club style.
func GenerateCheckIn(userID, logoPath string) ([]byte, error) {
	cfg := CheckIn
	cfg.Content = BuildCheckInPayload(userID)
	cfg.LogoPath = logoPath
	return cfg.Generate()
}
