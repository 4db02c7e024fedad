package sessions

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Storage keeps one session entry per issued token so sign-out and admin
// bans revoke access before the JWT itself expires.
type Storage struct {
	redis *redis.Client
}

func NewStorage(redis *redis.Client) *Storage {
	return &Storage{
		redis: redis,
	}
}

// Set registers a session token for a user with the given lifetime.
func (s *Storage) Set(ctx context.Context, token, userID string, expiration time.Duration) error {
	return s.redis.Set(ctx, token, userID, expiration).Err()
}

// Get resolves a token to its user. A revoked or expired token yields an
// empty user ID and no error.
func (s *Storage) Get(ctx context.Context, token string) (string, error) {
	userID, err := s.redis.Get(ctx, token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", err
	}
	return userID, nil
}

// Clear revokes a single session token.
func (s *Storage) Clear(ctx context.Context, token string) error {
	return s.redis.Del(ctx, token).Err()
}
