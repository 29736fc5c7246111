package repositories

import (
	"context"

	"gorm.io/gorm"

	"innkeep/internal/models/db_models"
	"innkeep/pkg/utils"
)

type BookingRepository interface {
	// DeleteCascade removes the booking and its child rows in one transaction.
	DeleteCascade(ctx context.Context, id string) error
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (b *bookingRepository) DeleteCascade(ctx context.Context, id string) error {
	return b.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&db_models.Booking{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return utils.ErrBookingNotFound
		}

		children := []interface{}{
			&db_models.BookingContact{},
			&db_models.BookingCheckinValue{},
			&db_models.BookingGuest{},
		}
		for _, child := range children {
			if err := tx.Where("booking_id = ?", id).Delete(child).Error; err != nil {
				return err
			}
		}

		return tx.Where("id = ?", id).Delete(&db_models.Booking{}).Error
	})
}
