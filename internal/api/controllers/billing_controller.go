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

type BillingController struct {
	billingService services.BillingServiceInterface
}

func NewBillingController(billingService services.BillingServiceInterface) *BillingController {
	return &BillingController{
		billingService: billingService,
	}
}

// Portal godoc
// @Summary Open billing portal
// @Description Returns a hosted billing-portal URL for the account's customer
// @Tags Billing
// @Produce json
// @Success 200 {object} utils.APIResponse{data=response_models.PortalResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/billing/portal [post]
func (b *BillingController) Portal(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	url, err := b.billingService.PortalURL(c.Request.Context(), userID, requestOrigin(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.PortalResponse{URL: url}, "")
}

// Status godoc
// @Summary Billing status
// @Tags Billing
// @Produce json
// @Success 200 {object} utils.APIResponse{data=response_models.BillingStatusResponse}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/billing/status [get]
func (b *BillingController) Status(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	status, err := b.billingService.Status(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, status, "")
}

// CancelAtPeriodEnd godoc
// @Summary Toggle cancel at period end
// @Tags Billing
// @Accept json
// @Produce json
// @Param request body request_models.CancelAtPeriodEndRequest false "Defaults to true"
// @Success 200 {object} utils.APIResponse{data=response_models.CancelAtPeriodEndResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/billing/cancel [post]
func (b *BillingController) CancelAtPeriodEnd(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req request_models.CancelAtPeriodEndRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	applied, err := b.billingService.SetCancelAtPeriodEnd(c.Request.Context(), userID, req.Value())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.CancelAtPeriodEndResponse{OK: true, CancelAtPeriodEnd: applied}, "")
}

// ClearSchedule godoc
// @Summary Clear scheduled plan change
// @Tags Billing
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/billing/schedule/clear [post]
func (b *BillingController) ClearSchedule(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	if err := b.billingService.ClearSchedule(c.Request.Context(), userID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.OKResponse{OK: true}, "Pending plan cleared")
}

// ChangePlan godoc
// @Summary Schedule a plan change
// @Tags Billing
// @Accept json
// @Produce json
// @Param request body request_models.ChangePlanRequest true "Target plan slug"
// @Success 200 {object} utils.APIResponse{data=response_models.PlanChangeResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/billing/plan [post]
func (b *BillingController) ChangePlan(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req request_models.ChangePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "plan is required")
		return
	}

	res, err := b.billingService.ChangePlan(c.Request.Context(), userID, req.Plan)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, res, "Plan change scheduled")
}
