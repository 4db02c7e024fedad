package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/ironclub/gym-server/internal/adapters/database/redis/carts"
	"github.com/ironclub/gym-server/internal/adapters/database/redis/sessions"
)

// Client bundles the redis keyspaces the server uses: session state,
// per-user carts and the attendance live feed.
type Client struct {
	Sessions *sessions.Storage
	Carts    *carts.Storage
	Feed     *redis.Client
}

type Options struct {
	Host     string
	Port     string
	Password string
}

func New(opts Options) (*Client, error) {
	sessionStorage := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", opts.Host, opts.Port),
		Password: opts.Password,
		DB:       0,
	})
	if err := sessionStorage.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping session storage: %w", err)
	}

	cartStorage := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", opts.Host, opts.Port),
		Password: opts.Password,
		DB:       1,
	})
	if err := cartStorage.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping cart storage: %w", err)
	}

	feedClient := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", opts.Host, opts.Port),
		Password: opts.Password,
		DB:       2,
	})
	if err := feedClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping feed client: %w", err)
	}

	return &Client{
		Sessions: sessions.NewStorage(sessionStorage),
		Carts:    carts.NewStorage(cartStorage),
		Feed:     feedClient,
	}, nil
}
