package main

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/xlance/connects-service/internal/infrastructure/config"
	redisdb "github.com/xlance/connects-service/internal/infrastructure/db/redis"
)

// connectRedis returns nil without error when Redis is disabled.
func connectRedis(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	if !cfg.Redis.Enabled {
		return nil, nil
	}
	return redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
}
