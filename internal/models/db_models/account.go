package db_models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const (
	BuyerTypeIndividual = "individual"
	BuyerTypeBusiness   = "business"
)

const (
	RoleOwner      = "owner"
	RoleManager    = "manager"
	RoleRestricted = "restricted"
)

// Account is keyed by the owner's user id. Lifecycle fields change only through
// the account procedures; StripeScheduleID is the one field written directly.
type Account struct {
	ID                     uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Plan                   string     `json:"plan"`
	Status                 string     `json:"status"`
	BuyerType              string     `json:"buyerType"`
	CurrentPeriodStart     *time.Time `json:"currentPeriodStart,omitempty"`
	CurrentPeriodEnd       *time.Time `json:"currentPeriodEnd,omitempty"`
	TrialEndsAt            *time.Time `json:"trialEndsAt,omitempty"`
	CancelAtPeriodEnd      bool       `json:"cancelAtPeriodEnd"`
	CancelRequestedAt      *time.Time `json:"cancelRequestedAt,omitempty"`
	PendingPlan            *string    `json:"pendingPlan,omitempty"`
	PendingPlanPriceID     *string    `json:"-"`
	PendingPlanEffectiveAt *time.Time `json:"pendingPlanEffectiveAt,omitempty"`
	StripeCustomerID       *string    `json:"-"`
	StripeScheduleID       *string    `json:"-"`
	CreatedAt              time.Time  `json:"createdAt"`
	UpdatedAt              time.Time  `json:"updatedAt"`
}

func (Account) TableName() string { return "accounts" }

func (a *Account) CustomerID() string {
	if a == nil || a.StripeCustomerID == nil {
		return ""
	}
	return *a.StripeCustomerID
}

func (a *Account) ScheduleID() string {
	if a == nil || a.StripeScheduleID == nil {
		return ""
	}
	return *a.StripeScheduleID
}

func (a *Account) EffectiveBuyerType() string {
	if a == nil || a.BuyerType == "" {
		return BuyerTypeIndividual
	}
	return a.BuyerType
}

// AccountUser is a membership row binding a user to someone else's account.
type AccountUser struct {
	BaseModel
	AccountID uuid.UUID      `gorm:"type:uuid;index" json:"accountId"`
	UserID    uuid.UUID      `gorm:"type:uuid;index" json:"userId"`
	Role      string         `json:"role"`
	Scopes    pq.StringArray `gorm:"type:text[]" json:"scopes"`
	Disabled  bool           `json:"disabled"`
}

func (AccountUser) TableName() string { return "account_users" }
