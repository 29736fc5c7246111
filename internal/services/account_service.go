package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"innkeep/internal/models/response_models"
	"innkeep/internal/repositories"
	"innkeep/pkg/utils"
)

type AccountServiceInterface interface {
	RequestCancellation(ctx context.Context, userID uuid.UUID) error
	DeleteAccount(ctx context.Context, userID uuid.UUID) error
	Me(ctx context.Context, userID uuid.UUID, email string) (*response_models.MeResponse, error)
}

type AccountService struct {
	accountRepo  repositories.AccountRepository
	scopeService ScopeServiceInterface
	log          *zap.Logger
}

func NewAccountService(
	accountRepo repositories.AccountRepository,
	scopeService ScopeServiceInterface,
	log *zap.Logger,
) AccountServiceInterface {
	return &AccountService{
		accountRepo:  accountRepo,
		scopeService: scopeService,
		log:          log,
	}
}

// RequestCancellation never fails: clients render the cancel intent optimistically.
// A failing procedure is only logged.
func (a *AccountService) RequestCancellation(ctx context.Context, userID uuid.UUID) error {
	if err := a.accountRepo.RequestCancellation(ctx, userID); err != nil {
		a.log.Warn("cancellation request failed, reporting success",
			zap.String("user_id", userID.String()),
			zap.Error(err))
	}
	return nil
}

func (a *AccountService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	if err := a.accountRepo.DeleteCascade(ctx, userID); err != nil {
		return err
	}
	a.log.Info("account deleted", zap.String("user_id", userID.String()))
	return nil
}

func (a *AccountService) Me(ctx context.Context, userID uuid.UUID, email string) (*response_models.MeResponse, error) {
	access, err := a.scopeService.Resolve(ctx, userID)
	if err != nil {
		return nil, err
	}

	account, err := a.accountRepo.FindById(ctx, access.AccountID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	scopes := access.Scopes
	if scopes == nil {
		scopes = []string{}
	}

	me := &response_models.MeResponse{
		UserID:     userID.String(),
		Email:      email,
		AccountID:  access.AccountID.String(),
		Role:       access.Role,
		Scopes:     scopes,
		Disabled:   access.Disabled,
		FullAccess: access.FullAccess(),
	}
	if account != nil {
		me.Plan = account.Plan
		me.Status = account.Status
	}
	return me, nil
}
