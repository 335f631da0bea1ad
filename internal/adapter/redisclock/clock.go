// Package redisclock keeps the simulated platform day in redis so it
// survives restarts and is shared by every process.
package redisclock

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"orbit-ads/internal/core/port"
)

const dayKey = "current_day"

// Clock implements port.Clock on a redis client. The day starts at 0 and
// Advance enforces monotonicity: the day never moves backward.
type Clock struct {
	rdb *redis.Client
}

func New(rdb *redis.Client) *Clock {
	return &Clock{rdb: rdb}
}

func (c *Clock) CurrentDay(ctx context.Context) (int, error) {
	day, err := c.rdb.Get(ctx, dayKey).Int()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("get current day: %w", err)
	}
	return day, nil
}

// Advance sets the day, rejecting moves backward. The check and the set
// run inside a WATCH transaction so concurrent advances cannot interleave
// into a rollback.
func (c *Clock) Advance(ctx context.Context, day int) (int, error) {
	err := c.rdb.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, dayKey).Int()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if day < current {
			return port.ErrDayRollback
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, dayKey, day, 0)
			return nil
		})
		return err
	}, dayKey)
	if err != nil {
		if errors.Is(err, port.ErrDayRollback) {
			return 0, err
		}
		return 0, fmt.Errorf("advance day: %w", err)
	}
	return day, nil
}
