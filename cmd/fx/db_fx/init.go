package db_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"innkeep/internal/config"
	"innkeep/internal/infra"
)

var Module = fx.Provide(
	provideDB)

func provideDB(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	db, err := infra.InitPostgresql(cfg, log)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.StopHook(func() {
		infra.ClosePostgresql(db, log)
	}))
	return db, nil
}
