package cache

import (
	"context"

	"github.com/linskybing/project-review/internal/config"
	"github.com/redis/go-redis/v9"
)

func New() (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr,
		Password: config.RedisPassword,
		DB:       config.RedisDB,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return rdb, nil
}
