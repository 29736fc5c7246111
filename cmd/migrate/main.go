package main

import (
	"flag"

	"go.uber.org/zap"

	"innkeep/internal/config"
	"innkeep/internal/infra"
)

func main() {
	command := flag.String("command", "up", "migration command: up, down or status")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		zap.Must(zap.NewProduction()).Fatal("load config", zap.Error(err))
	}

	log, err := infra.NewLogger(cfg)
	if err != nil {
		zap.Must(zap.NewProduction()).Fatal("build logger", zap.Error(err))
	}
	defer func() { _ = log.Sync() }()

	if err := infra.RunMigrations(cfg.DatabaseURL, *command, log); err != nil {
		log.Fatal("migration failed", zap.String("command", *command), zap.Error(err))
	}
	log.Info("migrations applied", zap.String("command", *command))
}
