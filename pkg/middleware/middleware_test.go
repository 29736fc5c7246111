package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"innkeep/internal/services"
	"innkeep/pkg/utils"
)

const testSecret = "middleware-secret"

type stubScopes struct {
	access *services.Access
}

func (s *stubScopes) Resolve(_ context.Context, userID uuid.UUID) (*services.Access, error) {
	a := *s.access
	a.UserID = userID
	return &a, nil
}

func token(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	tok, err := utils.NewTokenVerifier(testSecret).CreateToken(userID, "u@example.com", time.Hour)
	require.NoError(t, err)
	return tok
}

func newRouter(scopes services.ScopeServiceInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	verifier := utils.NewTokenVerifier(testSecret)

	r := gin.New()
	r.Use(TraceIDMiddleware())
	r.GET("/api/whoami", SessionMiddleware(verifier), func(c *gin.Context) {
		id, _ := UserID(c)
		c.String(http.StatusOK, id.String())
	})

	app := r.Group("/app", PageSessionMiddleware(verifier, services.PathLogin))
	app.GET("/inbox", RequireScope(scopes, services.ScopeInbox, zap.NewNop()), func(c *gin.Context) {
		c.String(http.StatusOK, "inbox")
	})
	return r
}

func TestSessionFromCookieAndBearer(t *testing.T) {
	r := newRouter(&stubScopes{access: &services.Access{}})
	userID := uuid.New()

	req := httptest.NewRequest(http.MethodGet, "/api/whoami", nil)
	req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: token(t, userID)})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, userID.String(), w.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/api/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token(t, userID))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSessionMissingOrInvalid(t *testing.T) {
	r := newRouter(&stubScopes{access: &services.Access{}})

	for _, header := range []string{"", "Bearer garbage", "Basic abc"} {
		req := httptest.NewRequest(http.MethodGet, "/api/whoami", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, header)
		assert.Contains(t, w.Body.String(), `"error":"Unauthorized"`)
		assert.NotEmpty(t, w.Header().Get(TraceIDHeader))
	}
}

func TestSectionRedirects(t *testing.T) {
	tests := []struct {
		name     string
		access   services.Access
		loggedIn bool
		code     int
		location string
	}{
		{"unauthenticated", services.Access{}, false, http.StatusFound, "/login"},
		{"owner", services.Access{Role: "owner"}, true, http.StatusOK, ""},
		{"disabled", services.Access{Member: true, Role: "manager", Disabled: true}, true, http.StatusFound, "/logout"},
		{"restricted fallback", services.Access{Member: true, Role: "restricted", Scopes: []string{"calendar"}}, true, http.StatusFound, "/app/calendar"},
		{"restricted no scopes", services.Access{Member: true, Role: "restricted"}, true, http.StatusFound, "/app"},
		{"restricted held", services.Access{Member: true, Role: "restricted", Scopes: []string{"inbox"}}, true, http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			access := tt.access
			r := newRouter(&stubScopes{access: &access})

			req := httptest.NewRequest(http.MethodGet, "/app/inbox", nil)
			if tt.loggedIn {
				req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: token(t, uuid.New())})
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.code, w.Code)
			assert.Equal(t, tt.location, w.Header().Get("Location"))
		})
	}
}

func TestTraceIDPropagation(t *testing.T) {
	r := newRouter(&stubScopes{access: &services.Access{}})
	incoming := uuid.NewString()

	req := httptest.NewRequest(http.MethodGet, "/api/whoami", nil)
	req.Header.Set(TraceIDHeader, incoming)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, incoming, w.Header().Get(TraceIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/api/whoami", nil)
	req.Header.Set(TraceIDHeader, "not-a-uuid")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.NotEqual(t, "not-a-uuid", w.Header().Get(TraceIDHeader))
}
