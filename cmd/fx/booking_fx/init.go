package booking_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"innkeep/internal/api/controllers"
	"innkeep/internal/repositories"
	"innkeep/internal/services"
)

var Module = fx.Provide(
	provideBookingRepo,
	provideBookingService,
	controllers.NewBookingController,
)

func provideBookingRepo(db *gorm.DB) repositories.BookingRepository {
	return repositories.NewBookingRepository(db)
}

func provideBookingService(bookingRepo repositories.BookingRepository, log *zap.Logger) services.BookingServiceInterface {
	return services.NewBookingService(bookingRepo, log)
}
