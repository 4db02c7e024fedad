package qr

import (
	"errors"
	"testing"

	"github.com/ironclub/gym-server/internal/domain/common/errorz"
)

func TestCheckInPayloadRoundTrip(t *testing.T) {
	userID := "7a6f3c1e-9b7b-4c3a-8b1e-2f4d5e6a7b8c"
	payload := BuildCheckInPayload(userID)

	got, err := ParseCheckInPayload(payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != userID {
		t.Fatalf("expected %s, got %s", userID, got)
	}
}

func TestParseCheckInPayloadRejectsForeignCodes(t *testing.T) {
	cases := []string{
		"",
		"https://example.com/checkin/7a6f3c1e-9b7b-4c3a-8b1e-2f4d5e6a7b8c",
		"gym://checkin/",
		"gym://checkin/not-a-uuid",
		"7a6f3c1e-9b7b-4c3a-8b1e-2f4d5e6a7b8c",
	}
	for _, payload := range cases {
		if _, err := ParseCheckInPayload(payload); !errors.Is(err, errorz.ErrInvalidQRPayload) {
			t.Fatalf("payload %q: expected ErrInvalidQRPayload, got %v", payload, err)
		}
	}
}
