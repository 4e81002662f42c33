package memcache_fx

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"carebuilds/internal/infra"
	"carebuilds/pkg/logger"
	mem "carebuilds/pkg/memcache"
)

var Module = fx.Provide(provideRevocationStore)

// provideRevocationStore uses Redis when REDIS_URL is set and an in-process
// map otherwise.
func provideRevocationStore(lc fx.Lifecycle, cfg infra.Config, log *logger.Logger) (mem.TokenRevocationStore, error) {
	if cfg.RedisURL == "" {
		log.Warn("REDIS_URL not set, revoked tokens are kept in memory")
		return mem.NewRevokedTokens(), nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("parse REDIS_URL: %w", err)
	}
	client := redis.NewClient(opts)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				return fmt.Errorf("ping redis: %w", err)
			}
			log.Info("Connected to Redis")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
	return mem.NewRedisRevokedTokens(client), nil
}
