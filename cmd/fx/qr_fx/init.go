package qr_fx

import (
	"net/http"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"innkeep/internal/api/controllers"
	"innkeep/internal/config"
	"innkeep/internal/services"
	mem "innkeep/pkg/memcache"
)

var Module = fx.Provide(
	provideQRService,
	controllers.NewQRController,
)

func provideQRService(cfg *config.Config, cache mem.ImageStore, log *zap.Logger) services.QRServiceInterface {
	client := &http.Client{Timeout: 10 * time.Second}
	return services.NewQRService(client, cache, services.QRConfig{
		ProviderURL: cfg.QRProviderURL,
		TTL:         cfg.QRCacheTTL,
	}, log)
}
