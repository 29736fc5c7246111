package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"innkeep/internal/models/db_models"
	"innkeep/internal/repositories"
	"innkeep/pkg/utils"
)

const (
	ScopeDashboard    = "dashboard"
	ScopeCleaning     = "cleaning"
	ScopeInbox        = "inbox"
	ScopeCalendar     = "calendar"
	ScopeChannels     = "channels"
	ScopeConfigurator = "configurator"
	ScopeBilling      = "billing"
)

const (
	PathLogin  = "/login"
	PathLogout = "/logout"
	PathApp    = "/app"
)

// fallbackOrder is where a restricted member lands when the requested section is not theirs.
// dashboard is deliberately absent.
var fallbackOrder = []string{ScopeCleaning, ScopeInbox, ScopeCalendar, ScopeChannels, ScopeConfigurator}

func SectionPath(scope string) string {
	return PathApp + "/" + scope
}

// Access is the resolved permission set of one user.
type Access struct {
	UserID    uuid.UUID
	AccountID uuid.UUID
	Role      string
	Scopes    []string
	Disabled  bool
	// Member is false for account owners without a membership row.
	Member bool
}

type Decision struct {
	Allowed  bool
	Redirect string
}

// Unauthenticated is the decision for a request without a session.
func Unauthenticated() Decision {
	return Decision{Redirect: PathLogin}
}

func (a *Access) FullAccess() bool {
	if a.Disabled {
		return false
	}
	if !a.Member {
		return true
	}
	return a.Role == db_models.RoleOwner || a.Role == db_models.RoleManager
}

func (a *Access) Has(scope string) bool {
	for _, s := range a.Scopes {
		if s == scope {
			return true
		}
	}
	return false
}

func (a *Access) Check(scope string) Decision {
	if a.Disabled {
		return Decision{Redirect: PathLogout}
	}
	if a.FullAccess() || a.Has(scope) {
		return Decision{Allowed: true}
	}
	for _, candidate := range fallbackOrder {
		if a.Has(candidate) {
			return Decision{Redirect: SectionPath(candidate)}
		}
	}
	return Decision{Redirect: PathApp}
}

type ScopeServiceInterface interface {
	Resolve(ctx context.Context, userID uuid.UUID) (*Access, error)
}

type ScopeService struct {
	membershipRepo repositories.MembershipRepository
}

func NewScopeService(membershipRepo repositories.MembershipRepository) ScopeServiceInterface {
	return &ScopeService{
		membershipRepo: membershipRepo,
	}
}

func (s *ScopeService) Resolve(ctx context.Context, userID uuid.UUID) (*Access, error) {
	membership, err := s.membershipRepo.FirstForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	if membership == nil {
		return &Access{
			UserID:    userID,
			AccountID: userID,
			Role:      db_models.RoleOwner,
		}, nil
	}

	scopes := make([]string, len(membership.Scopes))
	copy(scopes, membership.Scopes)

	return &Access{
		UserID:    userID,
		AccountID: membership.AccountID,
		Role:      membership.Role,
		Scopes:    scopes,
		Disabled:  membership.Disabled,
		Member:    true,
	}, nil
}
