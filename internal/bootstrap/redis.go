package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Dipanshu0612/Time-Tracker-API/config"
	"github.com/Dipanshu0612/Time-Tracker-API/internal/ratelimit"
)

// OpenRedis returns nil when no address is configured.
func OpenRedis(ctx context.Context, cfg *config.RedisConfig) (*redis.Client, error) {
	if cfg.Addr == "" {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}
	return client, nil
}

// LoginLimiter prefers the shared Redis window and falls back to an in-process limiter.
func LoginLimiter(client *redis.Client, cfg *config.AuthConfig) ratelimit.Limiter {
	if client != nil {
		return ratelimit.NewRedisLimiter(client, cfg.LoginRateLimit, cfg.LoginRateWindow)
	}
	return ratelimit.NewLocalLimiter(cfg.LoginRateLimit, cfg.LoginRateWindow)
}
