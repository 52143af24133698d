package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ViewCounter decides whether a view by caller should be counted. It allows
// one count per caller and project within the TTL window.
type ViewCounter interface {
	ShouldCount(ctx context.Context, callerID, projectUUID string) (bool, error)
}

type RedisViewCounter struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisViewCounter(rdb *redis.Client, ttl time.Duration) *RedisViewCounter {
	return &RedisViewCounter{rdb: rdb, ttl: ttl}
}

func viewCountKey(callerID, projectUUID string) string {
	return fmt.Sprintf("viewcount:%s:%s", callerID, projectUUID)
}

func (c *RedisViewCounter) ShouldCount(ctx context.Context, callerID, projectUUID string) (bool, error) {
	return c.rdb.SetNX(ctx, viewCountKey(callerID, projectUUID), 1, c.ttl).Result()
}
