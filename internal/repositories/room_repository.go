package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"innkeep/internal/models/db_models"
	"innkeep/pkg/utils"
)

type RoomRepository interface {
	FindRoomType(ctx context.Context, id uuid.UUID) (*db_models.RoomType, error)
	ListRoomTypes(ctx context.Context, propertyID uuid.UUID) ([]db_models.RoomType, error)
	ListByRoomTypes(ctx context.Context, roomTypeIDs []uuid.UUID) ([]db_models.Room, error)
	ListByProperty(ctx context.Context, propertyID uuid.UUID) ([]db_models.Room, error)
	Create(ctx context.Context, room *db_models.Room) error
}

type roomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) RoomRepository {
	return &roomRepository{db: db}
}

func (r *roomRepository) FindRoomType(ctx context.Context, id uuid.UUID) (*db_models.RoomType, error) {
	var roomType db_models.RoomType
	err := r.db.WithContext(ctx).First(&roomType, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &roomType, nil
}

func (r *roomRepository) ListRoomTypes(ctx context.Context, propertyID uuid.UUID) ([]db_models.RoomType, error) {
	var types []db_models.RoomType
	err := r.db.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Order("created_at ASC").
		Find(&types).Error
	return types, err
}

func (r *roomRepository) ListByRoomTypes(ctx context.Context, roomTypeIDs []uuid.UUID) ([]db_models.Room, error) {
	if len(roomTypeIDs) == 0 {
		return nil, nil
	}
	var rooms []db_models.Room
	err := r.db.WithContext(ctx).
		Where("room_type_id IN ?", roomTypeIDs).
		Find(&rooms).Error
	return rooms, err
}

func (r *roomRepository) ListByProperty(ctx context.Context, propertyID uuid.UUID) ([]db_models.Room, error) {
	var rooms []db_models.Room
	err := r.db.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Find(&rooms).Error
	return rooms, err
}

func (r *roomRepository) Create(ctx context.Context, room *db_models.Room) error {
	if err := r.db.WithContext(ctx).Create(room).Error; err != nil {
		if isUniqueViolation(err) {
			return utils.ErrRoomExists
		}
		return err
	}
	return nil
}
