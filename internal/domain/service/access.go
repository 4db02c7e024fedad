package service

import (
	"github.com/ironclub/gym-server/internal/domain/entity"
)

type AccessTier string

const (
	TierAnonymous     AccessTier = "anonymous"
	TierAuthenticated AccessTier = "authenticated"
	TierAdmin         AccessTier = "admin"
)

const (
	AdminLanding  = "/admin"
	MemberLanding = "/member"
)

// ResolveAccess maps a session and its stored roles to an authorization
// tier. A failed roles read fails closed: the user stays authenticated but
// is never granted admin.
func ResolveAccess(authenticated bool, roles []entity.Role, rolesErr error) AccessTier {
	if !authenticated {
		return TierAnonymous
	}
	if rolesErr != nil {
		return TierAuthenticated
	}
	for _, r := range roles {
		if r == entity.Admin {
			return TierAdmin
		}
	}
	return TierAuthenticated
}

// DecideLanding picks the landing destination after sign-in.
func DecideLanding(tier AccessTier) string {
	if tier == TierAdmin {
		return AdminLanding
	}
	return MemberLanding
}
