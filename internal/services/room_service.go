package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"innkeep/internal/models/db_models"
	"innkeep/internal/models/request_models"
	"innkeep/internal/repositories"
	"innkeep/pkg/utils"
)

type RoomServiceInterface interface {
	Create(ctx context.Context, accountID uuid.UUID, req request_models.CreateRoomRequest) (*db_models.Room, error)
	List(ctx context.Context, accountID, propertyID uuid.UUID) ([]db_models.Room, error)
}

type RoomService struct {
	roomRepo     repositories.RoomRepository
	propertyRepo repositories.PropertyRepository
}

func NewRoomService(roomRepo repositories.RoomRepository, propertyRepo repositories.PropertyRepository) RoomServiceInterface {
	return &RoomService{
		roomRepo:     roomRepo,
		propertyRepo: propertyRepo,
	}
}

func (r *RoomService) Create(ctx context.Context, accountID uuid.UUID, req request_models.CreateRoomRequest) (*db_models.Room, error) {
	name := strings.TrimSpace(req.Name)
	if req.PropertyID == "" || req.RoomTypeID == "" || name == "" {
		return nil, utils.InvalidInput("propertyId, roomTypeId and name are required")
	}

	propertyID, err := uuid.Parse(req.PropertyID)
	if err != nil {
		return nil, utils.InvalidInput("propertyId is not a valid id")
	}
	roomTypeID, err := uuid.Parse(req.RoomTypeID)
	if err != nil {
		return nil, utils.InvalidInput("roomTypeId is not a valid id")
	}

	if _, err := ownedProperty(ctx, r.propertyRepo, accountID, propertyID); err != nil {
		return nil, err
	}

	roomType, err := r.roomRepo.FindRoomType(ctx, roomTypeID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if roomType == nil {
		return nil, utils.ErrRoomTypeNotFound
	}
	if roomType.PropertyID != propertyID {
		return nil, utils.ErrRoomTypeMismatch
	}

	room := &db_models.Room{
		PropertyID: propertyID,
		RoomTypeID: roomTypeID,
		Name:       name,
	}
	if err := r.roomRepo.Create(ctx, room); err != nil {
		if errors.Is(err, utils.ErrRoomExists) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return room, nil
}

func (r *RoomService) List(ctx context.Context, accountID, propertyID uuid.UUID) ([]db_models.Room, error) {
	if _, err := ownedProperty(ctx, r.propertyRepo, accountID, propertyID); err != nil {
		return nil, err
	}

	rooms, err := r.roomRepo.ListByProperty(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if rooms == nil {
		rooms = []db_models.Room{}
	}
	utils.SortByName(rooms, func(room db_models.Room) string { return room.Name })
	return rooms, nil
}

// ownedProperty loads a property and hides it from other accounts.
func ownedProperty(ctx context.Context, repo repositories.PropertyRepository, accountID, propertyID uuid.UUID) (*db_models.Property, error) {
	property, err := repo.FindById(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if property == nil || property.AccountID != accountID {
		return nil, utils.ErrPropertyNotFound
	}
	return property, nil
}
