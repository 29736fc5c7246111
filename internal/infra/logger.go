package infra

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"innkeep/internal/config"
)

// NewLogger builds a JSON logger; development environments get debug level and console output.
func NewLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsDev() {
		zc := zap.NewDevelopmentConfig()
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		return zc.Build()
	}

	zc := zap.NewProductionConfig()
	zc.EncoderConfig.TimeKey = "ts"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return zc.Build(zap.Fields(zap.String("service", "innkeep")))
}
