package services

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"innkeep/internal/repositories"
	"innkeep/pkg/utils"
)

type BookingServiceInterface interface {
	Delete(ctx context.Context, id string) error
}

type BookingService struct {
	bookingRepo repositories.BookingRepository
	log         *zap.Logger
}

func NewBookingService(bookingRepo repositories.BookingRepository, log *zap.Logger) BookingServiceInterface {
	return &BookingService{
		bookingRepo: bookingRepo,
		log:         log,
	}
}

func (b *BookingService) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return utils.InvalidInput("booking id is required")
	}

	if err := b.bookingRepo.DeleteCascade(ctx, id); err != nil {
		if errors.Is(err, utils.ErrBookingNotFound) {
			return err
		}
		return &utils.ProcedureError{
			Procedure: "delete_booking",
			Message:   repositories.ProcedureMessage(err),
			Err:       err,
		}
	}

	b.log.Info("booking deleted", zap.String("booking_id", id))
	return nil
}
