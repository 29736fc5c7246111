package bridge_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"innkeep/internal/api/controllers"
	"innkeep/internal/repositories"
	"innkeep/internal/services"
)

var Module = fx.Provide(
	provideBridgeRepo,
	provideBridgeService,
	controllers.NewBridgeController,
)

func provideBridgeRepo(db *gorm.DB) repositories.BridgeRepository {
	return repositories.NewBridgeRepository(db)
}

func provideBridgeService(bridgeRepo repositories.BridgeRepository, roomRepo repositories.RoomRepository) services.BridgeServiceInterface {
	return services.NewBridgeService(bridgeRepo, roomRepo)
}
