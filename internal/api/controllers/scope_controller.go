package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"innkeep/internal/models/response_models"
	"innkeep/internal/services"
	"innkeep/pkg/utils"
)

type ScopeController struct {
	scopeService services.ScopeServiceInterface
}

func NewScopeController(scopeService services.ScopeServiceInterface) *ScopeController {
	return &ScopeController{scopeService: scopeService}
}

// Check godoc
// @Summary Check a scope
// @Description Returns whether the caller may open a section, and where to go otherwise
// @Tags Scope
// @Produce json
// @Param scope query string true "Scope name"
// @Success 200 {object} utils.APIResponse{data=response_models.ScopeCheckResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/scope/check [get]
func (s *ScopeController) Check(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	scope := strings.TrimSpace(c.Query("scope"))
	if scope == "" {
		utils.RespondError(c, http.StatusBadRequest, "scope is required")
		return
	}

	access, err := s.scopeService.Resolve(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	decision := access.Check(scope)
	utils.RespondSuccess(c, response_models.ScopeCheckResponse{
		Scope:    scope,
		Allowed:  decision.Allowed,
		Redirect: decision.Redirect,
	}, "")
}

// Section serves a guarded application section once RequireScope has let the request through.
func (s *ScopeController) Section(section string) gin.HandlerFunc {
	return func(c *gin.Context) {
		utils.RespondSuccess(c, gin.H{"section": section}, "")
	}
}
