package account_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"innkeep/internal/api/controllers"
	"innkeep/internal/infra"
	"innkeep/internal/repositories"
	"innkeep/internal/services"
)

var Module = fx.Provide(
	provideAccountRepo,
	provideMembershipRepo,
	provideScopeService,
	provideAccountService,
	controllers.NewAccountController,
	controllers.NewScopeController,
)

func provideAccountRepo(db *gorm.DB, metrics *infra.Metrics) repositories.AccountRepository {
	return repositories.NewAccountRepository(db, metrics)
}

func provideMembershipRepo(db *gorm.DB) repositories.MembershipRepository {
	return repositories.NewMembershipRepository(db)
}

func provideScopeService(membershipRepo repositories.MembershipRepository) services.ScopeServiceInterface {
	return services.NewScopeService(membershipRepo)
}

func provideAccountService(
	accountRepo repositories.AccountRepository,
	scopeService services.ScopeServiceInterface,
	log *zap.Logger,
) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, scopeService, log)
}
