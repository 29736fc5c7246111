package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"innkeep/internal/models/db_models"
)

var allScopes = []string{
	ScopeDashboard, ScopeCleaning, ScopeInbox, ScopeCalendar, ScopeChannels, ScopeConfigurator, ScopeBilling,
}

func resolve(t *testing.T, membership *db_models.AccountUser) *Access {
	t.Helper()
	userID := uuid.New()
	repo := &fakeMembershipRepo{byUser: map[uuid.UUID]*db_models.AccountUser{}}
	if membership != nil {
		membership.UserID = userID
		repo.byUser[userID] = membership
	}

	access, err := NewScopeService(repo).Resolve(context.Background(), userID)
	require.NoError(t, err)
	return access
}

func TestNoMembershipGrantsFullAccess(t *testing.T) {
	access := resolve(t, nil)

	assert.False(t, access.Member)
	assert.Equal(t, access.UserID, access.AccountID)
	assert.Equal(t, db_models.RoleOwner, access.Role)
	for _, scope := range allScopes {
		assert.Equal(t, Decision{Allowed: true}, access.Check(scope), scope)
	}
}

func TestDisabledMembershipAlwaysLogsOut(t *testing.T) {
	for _, role := range []string{db_models.RoleOwner, db_models.RoleManager, db_models.RoleRestricted} {
		access := resolve(t, &db_models.AccountUser{
			AccountID: uuid.New(),
			Role:      role,
			Scopes:    pq.StringArray(allScopes),
			Disabled:  true,
		})
		for _, scope := range allScopes {
			assert.Equal(t, Decision{Redirect: PathLogout}, access.Check(scope), "%s/%s", role, scope)
		}
		assert.False(t, access.FullAccess())
	}
}

func TestOwnerAndManagerIgnoreScopes(t *testing.T) {
	for _, role := range []string{db_models.RoleOwner, db_models.RoleManager} {
		access := resolve(t, &db_models.AccountUser{AccountID: uuid.New(), Role: role})
		for _, scope := range allScopes {
			assert.True(t, access.Check(scope).Allowed, "%s/%s", role, scope)
		}
	}
}

func TestRestrictedMemberRedirects(t *testing.T) {
	tests := []struct {
		name   string
		scopes []string
		check  string
		want   Decision
	}{
		{"held scope passes", []string{ScopeInbox}, ScopeInbox, Decision{Allowed: true}},
		{"first in priority order", []string{ScopeChannels, ScopeInbox}, ScopeCalendar, Decision{Redirect: "/app/inbox"}},
		{"cleaning wins", []string{ScopeConfigurator, ScopeCleaning}, ScopeDashboard, Decision{Redirect: "/app/cleaning"}},
		{"configurator last", []string{ScopeConfigurator}, ScopeCleaning, Decision{Redirect: "/app/configurator"}},
		{"dashboard is never a fallback", []string{ScopeDashboard}, ScopeInbox, Decision{Redirect: PathApp}},
		{"dashboard needs explicit scope", []string{ScopeCleaning}, ScopeDashboard, Decision{Redirect: "/app/cleaning"}},
		{"no scopes", nil, ScopeCalendar, Decision{Redirect: PathApp}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			access := resolve(t, &db_models.AccountUser{
				AccountID: uuid.New(),
				Role:      db_models.RoleRestricted,
				Scopes:    pq.StringArray(tt.scopes),
			})
			assert.Equal(t, tt.want, access.Check(tt.check))
		})
	}
}

func TestMembershipAccountTakesPrecedence(t *testing.T) {
	accountID := uuid.New()
	access := resolve(t, &db_models.AccountUser{AccountID: accountID, Role: db_models.RoleRestricted})

	assert.True(t, access.Member)
	assert.Equal(t, accountID, access.AccountID)
	assert.NotEqual(t, access.UserID, access.AccountID)
}

func TestUnauthenticatedGoesToLogin(t *testing.T) {
	assert.Equal(t, Decision{Redirect: PathLogin}, Unauthenticated())
}
