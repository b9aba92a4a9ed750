package db

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/gaablh4z/v7-sistema-completo/internal/config"
)

// NewRedis conecta ao Redis quando REDIS_URL está configurado; sem a
// variável o serviço roda normalmente, apenas sem cache.
func NewRedis(cfg *config.Config, log *zap.Logger) *redis.Client {
	if cfg.RedisURL == "" {
		return nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Warn("invalid REDIS_URL, cache disabled", zap.Error(err))
		return nil
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn("redis unreachable, cache disabled", zap.Error(err))
		return nil
	}

	return client
}
