package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"innkeep/internal/services"
)

const ctxAccess = "access"

// RequireScope redirects to the caller's first permitted section when scope is not held.
// It must run after PageSessionMiddleware.
func RequireScope(scopes services.ScopeServiceInterface, scope string, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := UserID(c)
		if !ok {
			c.Redirect(http.StatusFound, services.Unauthenticated().Redirect)
			c.Abort()
			return
		}

		access, err := scopes.Resolve(c.Request.Context(), userID)
		if err != nil {
			log.Error("scope resolution failed", zap.String("user_id", userID.String()), zap.Error(err))
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		decision := access.Check(scope)
		if !decision.Allowed {
			c.Redirect(http.StatusFound, decision.Redirect)
			c.Abort()
			return
		}

		c.Set(ctxAccess, access)
		c.Next()
	}
}

// ResolveAccess makes the resolved access of the caller available to API handlers.
// A revoked membership is rejected with 403.
func ResolveAccess(scopes services.ScopeServiceInterface, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := UserID(c)
		if !ok {
			abortJSON(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		access, err := scopes.Resolve(c.Request.Context(), userID)
		if err != nil {
			log.Error("scope resolution failed", zap.String("user_id", userID.String()), zap.Error(err))
			abortJSON(c, http.StatusInternalServerError, err.Error())
			return
		}
		if access.Disabled {
			abortJSON(c, http.StatusForbidden, "Access revoked")
			return
		}

		c.Set(ctxAccess, access)
		c.Next()
	}
}

// RequireAPIScope rejects API calls outside the caller's scopes with 403. Runs after ResolveAccess.
func RequireAPIScope(scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		access, ok := Access(c)
		if !ok || !access.Check(scope).Allowed {
			abortJSON(c, http.StatusForbidden, "Forbidden: missing scope "+scope)
			return
		}
		c.Next()
	}
}

func Access(c *gin.Context) (*services.Access, bool) {
	v, ok := c.Get(ctxAccess)
	if !ok {
		return nil, false
	}
	access, ok := v.(*services.Access)
	return access, ok
}
