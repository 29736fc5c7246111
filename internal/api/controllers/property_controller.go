package controllers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"innkeep/internal/models/request_models"
	"innkeep/internal/models/response_models"
	"innkeep/internal/services"
	"innkeep/pkg/utils"
)

type PropertyController struct {
	propertyService services.PropertyServiceInterface
}

func NewPropertyController(propertyService services.PropertyServiceInterface) *PropertyController {
	return &PropertyController{propertyService: propertyService}
}

// List godoc
// @Summary List properties of the caller's account
// @Tags Properties
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]db_models.Property}
// @Router /api/properties [get]
func (p *PropertyController) List(c *gin.Context) {
	access, ok := currentAccess(c)
	if !ok {
		return
	}

	properties, err := p.propertyService.List(c.Request.Context(), access.AccountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, properties, "")
}

// DraftHouseRules godoc
// @Summary Draft house rules with AI
// @Description The draft is returned, not stored
// @Tags Properties
// @Accept json
// @Produce json
// @Param id path string true "Property id"
// @Param request body request_models.HouseRulesDraftRequest false "Optional notes"
// @Success 200 {object} utils.APIResponse{data=response_models.HouseRulesDraftResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/properties/{id}/house-rules/draft [post]
func (p *PropertyController) DraftHouseRules(c *gin.Context) {
	access, ok := currentAccess(c)
	if !ok {
		return
	}
	propertyID, ok := uuidParam(c, c.Param("id"), "id")
	if !ok {
		return
	}

	var req request_models.HouseRulesDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	draft, err := p.propertyService.DraftHouseRules(c.Request.Context(), access.AccountID, propertyID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.HouseRulesDraftResponse{
		PropertyID: propertyID.String(),
		Draft:      draft,
	}, "")
}
