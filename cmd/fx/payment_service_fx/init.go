package payment_service_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"innkeep/internal/api/controllers"
	"innkeep/internal/config"
	"innkeep/internal/infra"
	"innkeep/internal/repositories"
	"innkeep/internal/services"
)

var Module = fx.Provide(
	provideBillingProvider,
	provideBillingService,
	controllers.NewBillingController,
)

func provideBillingProvider(cfg *config.Config, log *zap.Logger) services.BillingProvider {
	if cfg.StripeSecretKey == "" {
		log.Warn("STRIPE_SECRET_KEY not set, billing portal and schedule cleanup will fail")
	}
	return infra.NewStripeBilling(cfg.StripeSecretKey)
}

func provideBillingService(
	accountRepo repositories.AccountRepository,
	scopeService services.ScopeServiceInterface,
	provider services.BillingProvider,
	cfg *config.Config,
	log *zap.Logger,
) services.BillingServiceInterface {
	return services.NewBillingService(accountRepo, scopeService, provider, services.BillingConfig{
		AppBaseURL: cfg.AppBaseURL,
		PriceID:    cfg.PriceID,
	}, log)
}
