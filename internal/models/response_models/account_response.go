package response_models

import (
	"time"

	"innkeep/internal/models/db_models"
)

type OKResponse struct {
	OK bool `json:"ok"`
}

type CancelAtPeriodEndResponse struct {
	OK                bool `json:"ok"`
	CancelAtPeriodEnd bool `json:"cancelAtPeriodEnd"`
}

type PlanChangeResponse struct {
	OK          bool      `json:"ok"`
	Plan        string    `json:"plan"`
	EffectiveAt time.Time `json:"effectiveAt"`
}

type BillingStatusResponse struct {
	Account   *db_models.Account `json:"account"`
	BuyerType string             `json:"buyerType"`
}

type PortalResponse struct {
	URL string `json:"url"`
}

type MeResponse struct {
	UserID     string   `json:"userId"`
	Email      string   `json:"email"`
	AccountID  string   `json:"accountId"`
	Role       string   `json:"role"`
	Scopes     []string `json:"scopes"`
	Disabled   bool     `json:"disabled"`
	FullAccess bool     `json:"fullAccess"`
	Plan       string   `json:"plan,omitempty"`
	Status     string   `json:"status,omitempty"`
}

type ScopeCheckResponse struct {
	Scope    string `json:"scope"`
	Allowed  bool   `json:"allowed"`
	Redirect string `json:"redirect,omitempty"`
}
