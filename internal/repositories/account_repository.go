package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"innkeep/internal/infra"
	"innkeep/internal/models/db_models"
	"innkeep/pkg/utils"
)

const (
	ProcRequestCancellation = "request_account_cancellation"
	ProcDeleteAccount       = "delete_account_cascade"
	ProcSetCancelAtEnd      = "set_cancel_at_period_end"
	ProcClearPendingPlan    = "clear_pending_plan"
	ProcSchedulePlanChange  = "schedule_plan_change"
)

type AccountRepository interface {
	FindById(ctx context.Context, id uuid.UUID) (*db_models.Account, error)
	ClearScheduleID(ctx context.Context, id uuid.UUID) error

	RequestCancellation(ctx context.Context, userID uuid.UUID) error
	DeleteCascade(ctx context.Context, userID uuid.UUID) error

	// Billing procedures act on an account id, which differs from the caller for members.
	SetCancelAtPeriodEnd(ctx context.Context, accountID uuid.UUID, cancel bool) (bool, error)
	ClearPendingPlan(ctx context.Context, accountID uuid.UUID) error
	SchedulePlanChange(ctx context.Context, accountID uuid.UUID, plan, priceID string) (time.Time, error)
}

type accountRepository struct {
	db      *gorm.DB
	metrics *infra.Metrics
}

func NewAccountRepository(db *gorm.DB, metrics *infra.Metrics) AccountRepository {
	return &accountRepository{
		db:      db,
		metrics: metrics,
	}
}

func (a *accountRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}

func (a *accountRepository) ClearScheduleID(ctx context.Context, id uuid.UUID) error {
	return a.db.WithContext(ctx).
		Model(&db_models.Account{}).
		Where("id = ?", id).
		Update("stripe_schedule_id", nil).Error
}

func (a *accountRepository) RequestCancellation(ctx context.Context, userID uuid.UUID) error {
	return a.exec(ctx, ProcRequestCancellation, "SELECT request_account_cancellation(?)", userID)
}

func (a *accountRepository) DeleteCascade(ctx context.Context, userID uuid.UUID) error {
	return a.exec(ctx, ProcDeleteAccount, "SELECT delete_account_cascade(?)", userID)
}

func (a *accountRepository) SetCancelAtPeriodEnd(ctx context.Context, accountID uuid.UUID, cancel bool) (bool, error) {
	var applied bool
	err := a.db.WithContext(ctx).
		Raw("SELECT set_cancel_at_period_end(?, ?)", accountID, cancel).
		Scan(&applied).Error
	if err != nil {
		return false, a.procedureError(ProcSetCancelAtEnd, err)
	}
	a.observe(ProcSetCancelAtEnd, nil)
	return applied, nil
}

func (a *accountRepository) ClearPendingPlan(ctx context.Context, accountID uuid.UUID) error {
	return a.exec(ctx, ProcClearPendingPlan, "SELECT clear_pending_plan(?)", accountID)
}

func (a *accountRepository) SchedulePlanChange(ctx context.Context, accountID uuid.UUID, plan, priceID string) (time.Time, error) {
	var effective time.Time
	err := a.db.WithContext(ctx).
		Raw("SELECT schedule_plan_change(?, ?, ?)", accountID, plan, priceID).
		Scan(&effective).Error
	if err != nil {
		return time.Time{}, a.procedureError(ProcSchedulePlanChange, err)
	}
	a.observe(ProcSchedulePlanChange, nil)
	return effective, nil
}

func (a *accountRepository) exec(ctx context.Context, procedure, query string, args ...interface{}) error {
	if err := a.db.WithContext(ctx).Exec(query, args...).Error; err != nil {
		return a.procedureError(procedure, err)
	}
	a.observe(procedure, nil)
	return nil
}

func (a *accountRepository) procedureError(procedure string, err error) error {
	a.observe(procedure, err)
	return &utils.ProcedureError{
		Procedure: procedure,
		Message:   ProcedureMessage(err),
		Err:       err,
	}
}

func (a *accountRepository) observe(procedure string, err error) {
	if a.metrics == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	a.metrics.ProcedureCalls.WithLabelValues(procedure, outcome).Inc()
}

// ProcedureMessage returns the message raised by Postgres, or the error text otherwise.
func ProcedureMessage(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Message
	}
	return err.Error()
}

// isUniqueViolation reports a Postgres 23505 or a gorm-translated duplicate key.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
