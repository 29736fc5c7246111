package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"innkeep/internal/models/db_models"
)

type PushRepository interface {
	CountForUser(ctx context.Context, userID uuid.UUID) (int64, error)
	Upsert(ctx context.Context, sub *db_models.PushSubscription) error
	DeleteEndpoint(ctx context.Context, userID uuid.UUID, endpoint string) (int64, error)
	DeleteAllForUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

type pushRepository struct {
	db *gorm.DB
}

func NewPushRepository(db *gorm.DB) PushRepository {
	return &pushRepository{db: db}
}

func (p *pushRepository) CountForUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := p.db.WithContext(ctx).
		Model(&db_models.PushSubscription{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

// Upsert keys on endpoint; a browser re-subscribing moves the endpoint to the current user.
func (p *pushRepository) Upsert(ctx context.Context, sub *db_models.PushSubscription) error {
	return p.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "endpoint"}},
		DoUpdates: clause.AssignmentColumns([]string{"user_id", "keys", "user_agent"}),
	}).Create(sub).Error
}

func (p *pushRepository) DeleteEndpoint(ctx context.Context, userID uuid.UUID, endpoint string) (int64, error) {
	res := p.db.WithContext(ctx).
		Where("user_id = ? AND endpoint = ?", userID, endpoint).
		Delete(&db_models.PushSubscription{})
	return res.RowsAffected, res.Error
}

func (p *pushRepository) DeleteAllForUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	res := p.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&db_models.PushSubscription{})
	return res.RowsAffected, res.Error
}
