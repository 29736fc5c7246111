package infra

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"innkeep/internal/config"
)

func InitPostgresql(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	logLevel := logger.Warn
	if cfg.IsDev() {
		logLevel = logger.Info
	}

	connectionPool, err := gorm.Open(postgres.New(postgres.Config{
		DSN: cfg.DatabaseURL,
		// transaction-mode poolers in front of the hosted database reject named statements
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := connectionPool.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying SQL DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.DBConnMaxLifetime)

	log.Info("connected to postgres", zap.Int("max_open_conns", cfg.DBMaxOpenConns))
	return connectionPool, nil
}

func ClosePostgresql(db *gorm.DB, log *zap.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Error("error getting database instance", zap.Error(err))
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Error("error closing database connection", zap.Error(err))
	} else {
		log.Info("postgres connection closed")
	}
}
