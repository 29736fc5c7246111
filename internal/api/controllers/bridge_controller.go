package controllers

import (
	"github.com/gin-gonic/gin"

	"innkeep/internal/services"
	"innkeep/pkg/utils"
)

type BridgeController struct {
	bridgeService services.BridgeServiceInterface
}

func NewBridgeController(bridgeService services.BridgeServiceInterface) *BridgeController {
	return &BridgeController{bridgeService: bridgeService}
}

// ListIntegrations godoc
// @Summary List calendar integrations
// @Description Integrations of a property with their five most recent sync logs
// @Tags Bridge
// @Produce json
// @Param propertyId query string true "Property id"
// @Success 200 {object} utils.APIResponse{data=response_models.IntegrationListResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/bridge/ical/type/list [get]
func (b *BridgeController) ListIntegrations(c *gin.Context) {
	propertyID, ok := uuidParam(c, c.Query("propertyId"), "propertyId")
	if !ok {
		return
	}

	res, err := b.bridgeService.ListIntegrations(c.Request.Context(), propertyID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, res, "")
}

// ListUnassigned godoc
// @Summary List unassigned calendar events
// @Description Unresolved events with the property's rooms grouped by room type
// @Tags Bridge
// @Produce json
// @Param propertyId query string true "Property id"
// @Success 200 {object} utils.APIResponse{data=response_models.UnassignedListResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/bridge/ical/unassigned/list [get]
func (b *BridgeController) ListUnassigned(c *gin.Context) {
	propertyID, ok := uuidParam(c, c.Query("propertyId"), "propertyId")
	if !ok {
		return
	}

	res, err := b.bridgeService.ListUnassigned(c.Request.Context(), propertyID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, res, "")
}
