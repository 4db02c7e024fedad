package service

import (
	"context"
	"testing"
	"time"

	"github.com/ironclub/gym-server/internal/domain/entity"
)

func civil(t *testing.T, date string, hour int) time.Time {
	t.Helper()
	d, err := time.ParseInLocation("2006-01-02", date, time.UTC)
	if err != nil {
		t.Fatalf("bad test date %s: %v", date, err)
	}
	return d.Add(time.Duration(hour) * time.Hour)
}

func TestMembershipStateExpired(t *testing.T) {
	now := civil(t, "2025-01-06", 10)

	cases := map[string]entity.User{
		"past expiry":             {Authorized: true, ExpiryDate: "2025-01-05"},
		"past expiry long ago":    {Authorized: true, ExpiryDate: "2023-02-10"},
		"unauthorized":            {Authorized: false, ExpiryDate: "2025-06-01"},
		"unauthorized and past":   {Authorized: false, ExpiryDate: "2024-01-01"},
		"no expiry date":          {Authorized: true},
		"unparseable expiry date": {Authorized: true, ExpiryDate: "mañana"},
	}
	for name, user := range cases {
		if got := MembershipState(&user, now); got != MembershipExpired {
			t.Fatalf("%s: expected expired, got %s", name, got)
		}
	}
}

func TestMembershipStateExpiringWindow(t *testing.T) {
	now := civil(t, "2025-01-06", 10)

	cases := map[string]MembershipStatus{
		"2025-01-06": MembershipExpiring, // today
		"2025-01-08": MembershipExpiring,
		"2025-01-11": MembershipExpiring, // exactly 5 days out, inclusive
		"2025-01-12": MembershipActive,   // 6 days out
		"2025-06-01": MembershipActive,
	}
	for expiry, expected := range cases {
		user := entity.User{Authorized: true, ExpiryDate: expiry}
		if got := MembershipState(&user, now); got != expected {
			t.Fatalf("expiry %s: expected %s got %s", expiry, expected, got)
		}
	}
}

func TestMembershipStateEndOfDay(t *testing.T) {
	// Paid through today stays valid until the civil day ends.
	user := entity.User{Authorized: true, ExpiryDate: "2025-01-10"}

	if got := MembershipState(&user, civil(t, "2025-01-10", 23)); got != MembershipExpiring {
		t.Fatalf("expected expiring on expiry day evening, got %s", got)
	}
	if got := MembershipState(&user, civil(t, "2025-01-11", 0)); got != MembershipExpired {
		t.Fatalf("expected expired the day after, got %s", got)
	}
}

func TestMembershipStateScenario(t *testing.T) {
	user := entity.User{Authorized: true, ExpiryDate: "2025-01-10"}

	if got := MembershipState(&user, civil(t, "2025-01-06", 12)); got != MembershipExpiring {
		t.Fatalf("at 2025-01-06 expected expiring, got %s", got)
	}
	if got := MembershipState(&user, civil(t, "2025-01-11", 12)); got != MembershipExpired {
		t.Fatalf("at 2025-01-11 expected expired, got %s", got)
	}
}

func TestMembershipHidden(t *testing.T) {
	now := civil(t, "2025-06-01", 12)
	old := civil(t, "2024-01-01", 12)
	recent := civil(t, "2025-05-20", 12)

	if MembershipHidden(&entity.User{}, now) {
		t.Fatal("user without any activity fields must stay visible")
	}
	if !MembershipHidden(&entity.User{ExpiryDate: "2024-02-01"}, now) {
		t.Fatal("expiry far in the past should hide the record")
	}
	if MembershipHidden(&entity.User{ExpiryDate: "2024-02-01", LastLoginAt: &recent}, now) {
		t.Fatal("recent login must revive visibility")
	}
	if MembershipHidden(&entity.User{LastPaymentAt: &recent}, now) {
		t.Fatal("recent payment must keep the record visible")
	}
	if !MembershipHidden(&entity.User{LastPaymentAt: &old, LastLoginAt: &old}, now) {
		t.Fatal("only stale activity should hide the record")
	}
	if MembershipHidden(&entity.User{ExpiryDate: "2025-05-30"}, now) {
		t.Fatal("fresh expiry date must keep the record visible")
	}
}

func TestRecordLogin(t *testing.T) {
	user := &entity.User{ID: "u1", Authorized: true}
	svc := NewMembershipService(newFakeUserStorage(user))

	now := civil(t, "2025-06-01", 9)
	updated, err := svc.RecordLogin(context.Background(), "u1", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.LastLoginAt == nil || !updated.LastLoginAt.Equal(now) {
		t.Fatalf("expected login stamp %v, got %v", now, updated.LastLoginAt)
	}
}

func TestMembershipStateAcrossClockChange(t *testing.T) {
	loc, err := time.LoadLocation("America/Santiago")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	// The night of 2025-09-06 to 07 is an hour short in Chile. Six days
	// out stays active, the five-day boundary still reports expiring.
	now := time.Date(2025, 9, 3, 10, 0, 0, 0, loc)

	active := entity.User{Authorized: true, ExpiryDate: "2025-09-09"}
	if got := MembershipState(&active, now); got != MembershipActive {
		t.Fatalf("six days out across the clock change: expected active, got %s", got)
	}
	expiring := entity.User{Authorized: true, ExpiryDate: "2025-09-08"}
	if got := MembershipState(&expiring, now); got != MembershipExpiring {
		t.Fatalf("five days out across the clock change: expected expiring, got %s", got)
	}
}
