package carts

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ironclub/gym-server/internal/domain/dto"
)

// cartTTL keeps abandoned carts from accumulating forever.
const cartTTL = 30 * 24 * time.Hour

type Storage struct {
	redis *redis.Client
}

func NewStorage(redis *redis.Client) *Storage {
	return &Storage{
		redis: redis,
	}
}

func (s *Storage) Get(ctx context.Context, userID string) ([]dto.CartItem, error) {
	data, err := s.redis.Get(ctx, userID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var items []dto.CartItem
	if err := json.Unmarshal([]byte(data), &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Storage) Set(ctx context.Context, userID string, items []dto.CartItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.redis.Set(ctx, userID, data, cartTTL).Err()
}

func (s *Storage) Clear(ctx context.Context, userID string) error {
	return s.redis.Del(ctx, userID).Err()
}
