package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"innkeep/internal/services"
	"innkeep/pkg/middleware"
	"innkeep/pkg/utils"
)

func currentUser(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.UserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return uuid.Nil, false
	}
	return userID, true
}

func currentAccess(c *gin.Context) (*services.Access, bool) {
	access, ok := middleware.Access(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return nil, false
	}
	return access, true
}

// uuidParam reads a required id from the query string or path.
func uuidParam(c *gin.Context, raw, name string) (uuid.UUID, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		utils.RespondError(c, http.StatusBadRequest, name+" is required")
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, name+" is not a valid id")
		return uuid.Nil, false
	}
	return id, true
}

// requestOrigin is the Origin header, else the scheme and host the request came in on.
func requestOrigin(c *gin.Context) string {
	if origin := c.GetHeader("Origin"); origin != "" && origin != "null" {
		return origin
	}
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if forwarded := c.GetHeader("X-Forwarded-Proto"); forwarded != "" {
		scheme = strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}
	return scheme + "://" + c.Request.Host
}
