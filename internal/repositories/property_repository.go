package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"innkeep/internal/models/db_models"
)

type PropertyRepository interface {
	FindById(ctx context.Context, id uuid.UUID) (*db_models.Property, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.Property, error)
}

type propertyRepository struct {
	db *gorm.DB
}

func NewPropertyRepository(db *gorm.DB) PropertyRepository {
	return &propertyRepository{db: db}
}

func (p *propertyRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.Property, error) {
	var property db_models.Property
	err := p.db.WithContext(ctx).First(&property, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &property, nil
}

func (p *propertyRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.Property, error) {
	var properties []db_models.Property
	err := p.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at ASC").
		Find(&properties).Error
	return properties, err
}
