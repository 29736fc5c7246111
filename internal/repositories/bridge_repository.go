package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"innkeep/internal/models/db_models"
)

// BridgeRepository reads the rows produced by the external calendar sync engine.
type BridgeRepository interface {
	ListIntegrations(ctx context.Context, propertyID uuid.UUID) ([]db_models.ICalIntegration, error)
	// ListSyncLogs returns logs of all given integrations in one query, newest first.
	ListSyncLogs(ctx context.Context, integrationIDs []uuid.UUID) ([]db_models.ICalSyncLog, error)
	ListUnassigned(ctx context.Context, propertyID uuid.UUID) ([]db_models.ICalUnassignedEvent, error)
}

type bridgeRepository struct {
	db *gorm.DB
}

func NewBridgeRepository(db *gorm.DB) BridgeRepository {
	return &bridgeRepository{db: db}
}

func (b *bridgeRepository) ListIntegrations(ctx context.Context, propertyID uuid.UUID) ([]db_models.ICalIntegration, error) {
	var integrations []db_models.ICalIntegration
	err := b.db.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Order("created_at ASC").
		Find(&integrations).Error
	return integrations, err
}

func (b *bridgeRepository) ListSyncLogs(ctx context.Context, integrationIDs []uuid.UUID) ([]db_models.ICalSyncLog, error) {
	if len(integrationIDs) == 0 {
		return nil, nil
	}
	var logs []db_models.ICalSyncLog
	err := b.db.WithContext(ctx).
		Where("integration_id IN ?", integrationIDs).
		Order("started_at DESC").
		Find(&logs).Error
	return logs, err
}

func (b *bridgeRepository) ListUnassigned(ctx context.Context, propertyID uuid.UUID) ([]db_models.ICalUnassignedEvent, error) {
	var events []db_models.ICalUnassignedEvent
	err := b.db.WithContext(ctx).
		Where("property_id = ? AND resolved = ?", propertyID, false).
		Order("created_at DESC").
		Find(&events).Error
	return events, err
}
