package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"innkeep/internal/models/db_models"
	"innkeep/internal/models/request_models"
	"innkeep/internal/models/response_models"
	"innkeep/internal/repositories"
	"innkeep/pkg/utils"
)

type PushServiceInterface interface {
	Status(ctx context.Context, userID uuid.UUID) (*response_models.PushStatusResponse, error)
	Subscribe(ctx context.Context, userID uuid.UUID, req request_models.PushSubscribeRequest, userAgent string) error
	Unsubscribe(ctx context.Context, userID uuid.UUID, endpoint string) (int64, error)
}

type PushService struct {
	pushRepo repositories.PushRepository
}

func NewPushService(pushRepo repositories.PushRepository) PushServiceInterface {
	return &PushService{pushRepo: pushRepo}
}

func (p *PushService) Status(ctx context.Context, userID uuid.UUID) (*response_models.PushStatusResponse, error) {
	count, err := p.pushRepo.CountForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return &response_models.PushStatusResponse{Subscribed: count > 0, Count: count}, nil
}

func (p *PushService) Subscribe(ctx context.Context, userID uuid.UUID, req request_models.PushSubscribeRequest, userAgent string) error {
	endpoint := strings.TrimSpace(req.Endpoint)
	if !strings.HasPrefix(endpoint, "https://") {
		return utils.InvalidInput("endpoint must be an https url")
	}
	if req.Keys.P256dh == "" || req.Keys.Auth == "" {
		return utils.InvalidInput("keys.p256dh and keys.auth are required")
	}

	keys, err := json.Marshal(req.Keys)
	if err != nil {
		return err
	}

	sub := &db_models.PushSubscription{
		UserID:   userID,
		Endpoint: endpoint,
		Keys:     datatypes.JSON(keys),
	}
	if userAgent != "" {
		sub.UserAgent = &userAgent
	}

	if err := p.pushRepo.Upsert(ctx, sub); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return nil
}

// Unsubscribe removes one endpoint, or every subscription of the user when endpoint is empty.
func (p *PushService) Unsubscribe(ctx context.Context, userID uuid.UUID, endpoint string) (int64, error) {
	var (
		removed int64
		err     error
	)
	if endpoint = strings.TrimSpace(endpoint); endpoint != "" {
		removed, err = p.pushRepo.DeleteEndpoint(ctx, userID, endpoint)
	} else {
		removed, err = p.pushRepo.DeleteAllForUser(ctx, userID)
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return removed, nil
}
