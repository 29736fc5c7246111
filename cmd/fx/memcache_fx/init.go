package memcache_fx

import (
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"innkeep/internal/config"
	"innkeep/internal/infra"
	mem "innkeep/pkg/memcache"
)

var Module = fx.Provide(provideRedis, provideImageStore)

func provideRedis(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) (*redis.Client, error) {
	rdb, err := infra.InitRedis(cfg, log)
	if err != nil || rdb == nil {
		return nil, err
	}
	lc.Append(fx.StopHook(rdb.Close))
	return rdb, nil
}

// provideImageStore falls back to the in-process store when redis is disabled.
func provideImageStore(rdb *redis.Client, log *zap.Logger) mem.ImageStore {
	if rdb == nil {
		return mem.NewTTLImages(512)
	}
	return mem.NewRedisImages(rdb, log)
}
