package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"innkeep/pkg/utils"
)

const (
	AccessTokenCookie = "sb-access-token"

	ctxUserID    = "user_id"
	ctxUserEmail = "user_email"
)

// TokenValidator is satisfied by *utils.TokenVerifier.
type TokenValidator interface {
	ValidateToken(token string) (*utils.Claims, error)
}

// AccessToken reads the hosted-auth token from the session cookie or a bearer header.
func AccessToken(c *gin.Context) string {
	if cookie, err := c.Cookie(AccessTokenCookie); err == nil && cookie != "" {
		return cookie
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	}
	return ""
}

func authenticate(c *gin.Context, validator TokenValidator) bool {
	token := AccessToken(c)
	if token == "" {
		return false
	}
	claims, err := validator.ValidateToken(token)
	if err != nil {
		return false
	}
	userID, err := claims.UserID()
	if err != nil {
		return false
	}

	c.Set(ctxUserID, userID)
	c.Set(ctxUserEmail, claims.Email)
	return true
}

// SessionMiddleware guards API routes: no valid session means 401.
func SessionMiddleware(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authenticate(c, validator) {
			utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		c.Next()
	}
}

// PageSessionMiddleware guards section routes: no valid session redirects to login.
func PageSessionMiddleware(validator TokenValidator, loginPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authenticate(c, validator) {
			c.Redirect(http.StatusFound, loginPath)
			c.Abort()
			return
		}
		c.Next()
	}
}

// UserID returns the authenticated user set by one of the session middlewares.
func UserID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(ctxUserID)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

func UserEmail(c *gin.Context) string {
	return c.GetString(ctxUserEmail)
}
