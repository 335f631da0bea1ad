package db

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"orbit-ads/internal/config/configs"
)

// NewRedisClient parses the configured URL and verifies connectivity.
func NewRedisClient(ctx context.Context, cfg configs.Redis) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.Addr)
	if err != nil {
		return nil, fmt.Errorf("redis.ParseURL(%q): %w", cfg.Addr, err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return client, nil
}
