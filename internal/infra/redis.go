package infra

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"innkeep/internal/config"
)

// InitRedis returns nil when REDIS_ADDR is not configured.
func InitRedis(cfg *config.Config, log *zap.Logger) (*redis.Client, error) {
	if cfg.RedisAddr == "" {
		log.Info("REDIS_ADDR not set, redis disabled")
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.RedisAddr, err)
	}

	log.Info("connected to redis", zap.String("addr", cfg.RedisAddr), zap.Int("db", cfg.RedisDB))
	return rdb, nil
}
