package room_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"innkeep/internal/api/controllers"
	"innkeep/internal/repositories"
	"innkeep/internal/services"
)

var Module = fx.Provide(
	provideRoomRepo,
	providePropertyRepo,
	provideRoomService,
	controllers.NewRoomController,
)

func provideRoomRepo(db *gorm.DB) repositories.RoomRepository {
	return repositories.NewRoomRepository(db)
}

func providePropertyRepo(db *gorm.DB) repositories.PropertyRepository {
	return repositories.NewPropertyRepository(db)
}

func provideRoomService(roomRepo repositories.RoomRepository, propertyRepo repositories.PropertyRepository) services.RoomServiceInterface {
	return services.NewRoomService(roomRepo, propertyRepo)
}
