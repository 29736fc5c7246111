package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"innkeep/internal/models/db_models"
	"innkeep/internal/models/response_models"
	"innkeep/internal/repositories"
	"innkeep/pkg/utils"
)

// MaxLogsPerIntegration bounds the sync history returned with each integration.
const MaxLogsPerIntegration = 5

type BridgeServiceInterface interface {
	ListIntegrations(ctx context.Context, propertyID uuid.UUID) (*response_models.IntegrationListResponse, error)
	ListUnassigned(ctx context.Context, propertyID uuid.UUID) (*response_models.UnassignedListResponse, error)
}

type BridgeService struct {
	bridgeRepo repositories.BridgeRepository
	roomRepo   repositories.RoomRepository
}

func NewBridgeService(bridgeRepo repositories.BridgeRepository, roomRepo repositories.RoomRepository) BridgeServiceInterface {
	return &BridgeService{
		bridgeRepo: bridgeRepo,
		roomRepo:   roomRepo,
	}
}

func (b *BridgeService) ListIntegrations(ctx context.Context, propertyID uuid.UUID) (*response_models.IntegrationListResponse, error) {
	integrations, err := b.bridgeRepo.ListIntegrations(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	ids := make([]uuid.UUID, 0, len(integrations))
	for _, in := range integrations {
		ids = append(ids, in.ID)
	}

	logs, err := b.bridgeRepo.ListSyncLogs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	grouped := GroupRecentLogs(logs, MaxLogsPerIntegration)

	out := make([]response_models.IntegrationWithLogs, 0, len(integrations))
	for _, in := range integrations {
		entry := response_models.IntegrationWithLogs{
			ICalIntegration: in,
			Logs:            grouped[in.ID],
		}
		if entry.Logs == nil {
			entry.Logs = []db_models.ICalSyncLog{}
		}
		out = append(out, entry)
	}

	return &response_models.IntegrationListResponse{Integrations: out}, nil
}

// GroupRecentLogs partitions logs by integration keeping the first limit of each.
// logs must already be ordered newest first.
func GroupRecentLogs(logs []db_models.ICalSyncLog, limit int) map[uuid.UUID][]db_models.ICalSyncLog {
	grouped := make(map[uuid.UUID][]db_models.ICalSyncLog)
	for _, l := range logs {
		if len(grouped[l.IntegrationID]) >= limit {
			continue
		}
		grouped[l.IntegrationID] = append(grouped[l.IntegrationID], l)
	}
	return grouped
}

func (b *BridgeService) ListUnassigned(ctx context.Context, propertyID uuid.UUID) (*response_models.UnassignedListResponse, error) {
	events, err := b.bridgeRepo.ListUnassigned(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	roomTypes, err := b.roomRepo.ListRoomTypes(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	typeIDs := make([]uuid.UUID, 0, len(roomTypes))
	for _, t := range roomTypes {
		typeIDs = append(typeIDs, t.ID)
	}

	rooms, err := b.roomRepo.ListByRoomTypes(ctx, typeIDs)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	if events == nil {
		events = []db_models.ICalUnassignedEvent{}
	}
	if roomTypes == nil {
		roomTypes = []db_models.RoomType{}
	}

	return &response_models.UnassignedListResponse{
		Events:      events,
		RoomTypes:   roomTypes,
		RoomsByType: GroupRoomsByType(rooms),
	}, nil
}

// GroupRoomsByType keys rooms by room type id, each group sorted by name.
func GroupRoomsByType(rooms []db_models.Room) map[string][]db_models.Room {
	grouped := make(map[string][]db_models.Room)
	for _, r := range rooms {
		key := r.RoomTypeID.String()
		grouped[key] = append(grouped[key], r)
	}
	for _, group := range grouped {
		utils.SortByName(group, func(r db_models.Room) string { return r.Name })
	}
	return grouped
}
