package service

import (
	"errors"
	"testing"

	"github.com/ironclub/gym-server/internal/domain/entity"
)

func TestResolveAccess(t *testing.T) {
	if got := ResolveAccess(false, nil, nil); got != TierAnonymous {
		t.Fatalf("no session expected anonymous, got %s", got)
	}
	if got := ResolveAccess(true, []entity.Role{entity.Student}, nil); got != TierAuthenticated {
		t.Fatalf("student expected authenticated, got %s", got)
	}
	if got := ResolveAccess(true, []entity.Role{entity.Professor}, nil); got != TierAuthenticated {
		t.Fatalf("professor expected authenticated, got %s", got)
	}
	if got := ResolveAccess(true, []entity.Role{entity.Student, entity.Admin}, nil); got != TierAdmin {
		t.Fatalf("admin tag expected admin, got %s", got)
	}
	if got := ResolveAccess(true, nil, nil); got != TierAuthenticated {
		t.Fatalf("empty roles expected authenticated, got %s", got)
	}
}

func TestResolveAccessFailsClosed(t *testing.T) {
	readErr := errors.New("backend read failed")

	// Even if stale role data says admin, a failed read never grants it.
	if got := ResolveAccess(true, []entity.Role{entity.Admin}, readErr); got != TierAuthenticated {
		t.Fatalf("roles read failure must fall back to authenticated, got %s", got)
	}
}

func TestDecideLanding(t *testing.T) {
	cases := map[AccessTier]string{
		TierAdmin:         AdminLanding,
		TierAuthenticated: MemberLanding,
		TierAnonymous:     MemberLanding,
	}
	for tier, expected := range cases {
		if got := DecideLanding(tier); got != expected {
			t.Fatalf("tier %s expected %s got %s", tier, expected, got)
		}
	}
}
