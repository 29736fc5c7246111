package mem

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const redisKeyPrefix = "innkeep:qr:"

// RedisImages shares the image cache across instances. Redis failures degrade to cache misses.
type RedisImages struct {
	rdb *redis.Client
	log *zap.Logger
}

func NewRedisImages(rdb *redis.Client, log *zap.Logger) *RedisImages {
	return &RedisImages{rdb: rdb, log: log}
}

func (s *RedisImages) Get(ctx context.Context, key string) ([]byte, bool) {
	data, err := s.rdb.Get(ctx, redisKeyPrefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.log.Warn("redis get failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}
	return data, true
}

func (s *RedisImages) Set(ctx context.Context, key string, data []byte, ttl time.Duration) {
	if err := s.rdb.Set(ctx, redisKeyPrefix+key, data, ttl).Err(); err != nil {
		s.log.Warn("redis set failed", zap.String("key", key), zap.Error(err))
	}
}
