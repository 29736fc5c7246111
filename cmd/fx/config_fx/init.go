package config_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"innkeep/internal/config"
	"innkeep/internal/infra"
)

var Module = fx.Provide(
	config.Load,
	provideLogger,
	infra.NewMetrics,
)

func provideLogger(lc fx.Lifecycle, cfg *config.Config) (*zap.Logger, error) {
	log, err := infra.NewLogger(cfg)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.StopHook(func() {
		_ = log.Sync()
	}))
	return log, nil
}
