package service

import (
	"context"
	"time"

	"github.com/ironclub/gym-server/internal/domain/entity"
	"github.com/ironclub/gym-server/internal/domain/utils/dates"
)

type MembershipStatus string

const (
	MembershipActive   MembershipStatus = "active"
	MembershipExpiring MembershipStatus = "expiring"
	MembershipExpired  MembershipStatus = "expired"
)

const (
	// ExpiringWindowDays is how many days before the paid-through date a
	// membership starts reporting as expiring (inclusive).
	ExpiringWindowDays = 5
	// VisibilityDecayDays is how long a user can stay fully inactive before
	// admin listings hide the record by default.
	VisibilityDecayDays = 90
)

// MembershipState derives the membership status from the stored dates.
// Status is always recomputed, never persisted, so it cannot drift.
func MembershipState(u *entity.User, now time.Time) MembershipStatus {
	if !u.Authorized || u.ExpiryDate == "" {
		return MembershipExpired
	}
	expiry, err := dates.ParseCivilDate(u.ExpiryDate, now.Location())
	if err != nil {
		return MembershipExpired
	}
	if dates.EndOfDay(expiry).Before(now) {
		return MembershipExpired
	}
	if dates.DaysUntil(now, expiry) <= ExpiringWindowDays {
		return MembershipExpiring
	}
	return MembershipActive
}

// MembershipHidden reports whether the record decayed out of default admin
// views: the newest of paid-through end-of-day, last payment and last login
// is older than VisibilityDecayDays. A record with none of the three stays
// visible.
func MembershipHidden(u *entity.User, now time.Time) bool {
	var newest time.Time

	if u.ExpiryDate != "" {
		if expiry, err := dates.ParseCivilDate(u.ExpiryDate, now.Location()); err == nil {
			newest = dates.EndOfDay(expiry)
		}
	}
	if u.LastPaymentAt != nil && u.LastPaymentAt.After(newest) {
		newest = *u.LastPaymentAt
	}
	if u.LastLoginAt != nil && u.LastLoginAt.After(newest) {
		newest = *u.LastLoginAt
	}

	if newest.IsZero() {
		return false
	}
	return dates.DaysUntil(newest, now) > VisibilityDecayDays
}

type membershipUserStorage interface {
	Get(ctx context.Context, id string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) (*entity.User, error)
}

type MembershipService struct {
	userStorage membershipUserStorage
}

func NewMembershipService(userStorage membershipUserStorage) *MembershipService {
	return &MembershipService{
		userStorage: userStorage,
	}
}

// RecordLogin merges a fresh last-login timestamp into the user record,
// reviving visibility after decay.
func (s *MembershipService) RecordLogin(ctx context.Context, userID string, now time.Time) (*entity.User, error) {
	user, err := s.userStorage.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.LastLoginAt = &now
	return s.userStorage.Update(ctx, user)
}
