package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"innkeep/internal/models/db_models"
	"innkeep/internal/models/response_models"
	"innkeep/internal/repositories"
	"innkeep/pkg/utils"
)

// BillingProvider is the slice of the payment provider this service uses.
type BillingProvider interface {
	CreatePortalSession(ctx context.Context, customerID, returnURL string) (string, error)
	CancelSchedule(ctx context.Context, scheduleID string) error
}

// PriceResolver maps a plan slug to the provider's price id.
type PriceResolver func(plan string) (string, bool)

type BillingConfig struct {
	AppBaseURL string
	PriceID    PriceResolver
}

const billingReturnPath = "/app/billing"

type BillingServiceInterface interface {
	PortalURL(ctx context.Context, userID uuid.UUID, requestOrigin string) (string, error)
	Status(ctx context.Context, userID uuid.UUID) (*response_models.BillingStatusResponse, error)
	SetCancelAtPeriodEnd(ctx context.Context, userID uuid.UUID, cancel bool) (bool, error)
	ClearSchedule(ctx context.Context, userID uuid.UUID) error
	ChangePlan(ctx context.Context, userID uuid.UUID, plan string) (*response_models.PlanChangeResponse, error)
}

type BillingService struct {
	accountRepo  repositories.AccountRepository
	scopeService ScopeServiceInterface
	provider     BillingProvider
	cfg          BillingConfig
	log          *zap.Logger
}

func NewBillingService(
	accountRepo repositories.AccountRepository,
	scopeService ScopeServiceInterface,
	provider BillingProvider,
	cfg BillingConfig,
	log *zap.Logger,
) BillingServiceInterface {
	return &BillingService{
		accountRepo:  accountRepo,
		scopeService: scopeService,
		provider:     provider,
		cfg:          cfg,
		log:          log,
	}
}

// ReturnURL prefers the configured base URL and falls back to the caller's origin.
func (b *BillingService) ReturnURL(requestOrigin string) string {
	base := strings.TrimRight(b.cfg.AppBaseURL, "/")
	if base == "" {
		base = strings.TrimRight(requestOrigin, "/")
	}
	return base + billingReturnPath
}

func (b *BillingService) PortalURL(ctx context.Context, userID uuid.UUID, requestOrigin string) (string, error) {
	access, err := b.billingAccess(ctx, userID)
	if err != nil {
		return "", err
	}
	account, err := b.findAccount(ctx, access.AccountID)
	if err != nil {
		return "", err
	}

	customerID := account.CustomerID()
	if customerID == "" {
		return "", utils.ErrNoBillingCustomer
	}

	url, err := b.provider.CreatePortalSession(ctx, customerID, b.ReturnURL(requestOrigin))
	if err != nil {
		return "", fmt.Errorf("%w: %v", utils.ErrUpstream, err)
	}
	return url, nil
}

func (b *BillingService) Status(ctx context.Context, userID uuid.UUID) (*response_models.BillingStatusResponse, error) {
	access, err := b.billingAccess(ctx, userID)
	if err != nil {
		return nil, err
	}
	account, err := b.findAccount(ctx, access.AccountID)
	if err != nil {
		return nil, err
	}
	return &response_models.BillingStatusResponse{
		Account:   account,
		BuyerType: account.EffectiveBuyerType(),
	}, nil
}

func (b *BillingService) SetCancelAtPeriodEnd(ctx context.Context, userID uuid.UUID, cancel bool) (bool, error) {
	access, err := b.billingAccess(ctx, userID)
	if err != nil {
		return false, err
	}
	return b.accountRepo.SetCancelAtPeriodEnd(ctx, access.AccountID, cancel)
}

// ClearSchedule drops a pending plan change. Provider-side cleanup is best effort;
// only the final procedure's error reaches the caller. Both sides act on the same account.
func (b *BillingService) ClearSchedule(ctx context.Context, userID uuid.UUID) error {
	access, err := b.billingAccess(ctx, userID)
	if err != nil {
		return err
	}
	account, err := b.findAccount(ctx, access.AccountID)
	if err != nil && !errors.Is(err, utils.ErrAccountNotFound) {
		return err
	}

	if scheduleID := account.ScheduleID(); scheduleID != "" {
		if err := b.provider.CancelSchedule(ctx, scheduleID); err != nil {
			b.log.Warn("cancel billing schedule failed",
				zap.String("schedule_id", scheduleID),
				zap.Error(err))
		}
		if err := b.accountRepo.ClearScheduleID(ctx, account.ID); err != nil {
			b.log.Warn("clear stored schedule id failed",
				zap.String("account_id", account.ID.String()),
				zap.Error(err))
		}
	}

	return b.accountRepo.ClearPendingPlan(ctx, access.AccountID)
}

func (b *BillingService) ChangePlan(ctx context.Context, userID uuid.UUID, plan string) (*response_models.PlanChangeResponse, error) {
	plan = strings.ToLower(strings.TrimSpace(plan))
	if plan == "" {
		return nil, utils.InvalidInput("plan is required")
	}

	priceID, ok := b.cfg.PriceID(plan)
	if !ok {
		return nil, utils.ErrUnknownPlan
	}

	access, err := b.billingAccess(ctx, userID)
	if err != nil {
		return nil, err
	}

	effective, err := b.accountRepo.SchedulePlanChange(ctx, access.AccountID, plan, priceID)
	if err != nil {
		return nil, err
	}

	return &response_models.PlanChangeResponse{
		OK:          true,
		Plan:        plan,
		EffectiveAt: effective,
	}, nil
}

// billingAccess resolves the caller and rejects revoked members and members without the billing scope.
// Every billing operation targets access.AccountID.
func (b *BillingService) billingAccess(ctx context.Context, userID uuid.UUID) (*Access, error) {
	access, err := b.scopeService.Resolve(ctx, userID)
	if err != nil {
		return nil, err
	}
	if access.Disabled {
		return nil, utils.ErrAccessRevoked
	}
	if !access.Check(ScopeBilling).Allowed {
		return nil, utils.ScopeDenied(ScopeBilling)
	}
	return access, nil
}

func (b *BillingService) findAccount(ctx context.Context, accountID uuid.UUID) (*db_models.Account, error) {
	account, err := b.accountRepo.FindById(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}
	return account, nil
}
