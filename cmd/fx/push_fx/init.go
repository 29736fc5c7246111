package push_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"innkeep/internal/api/controllers"
	"innkeep/internal/repositories"
	"innkeep/internal/services"
)

var Module = fx.Provide(
	providePushRepo,
	providePushService,
	controllers.NewPushController,
)

func providePushRepo(db *gorm.DB) repositories.PushRepository {
	return repositories.NewPushRepository(db)
}

func providePushService(pushRepo repositories.PushRepository) services.PushServiceInterface {
	return services.NewPushService(pushRepo)
}
