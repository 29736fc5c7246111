package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"innkeep/internal/models/db_models"
)

type MembershipRepository interface {
	// FirstForUser returns the oldest membership row of the user, or nil when there is none.
	FirstForUser(ctx context.Context, userID uuid.UUID) (*db_models.AccountUser, error)
}

type membershipRepository struct {
	db *gorm.DB
}

func NewMembershipRepository(db *gorm.DB) MembershipRepository {
	return &membershipRepository{db: db}
}

func (m *membershipRepository) FirstForUser(ctx context.Context, userID uuid.UUID) (*db_models.AccountUser, error) {
	var membership db_models.AccountUser
	err := m.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Limit(1).
		Take(&membership).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &membership, nil
}
