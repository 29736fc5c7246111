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

type PushController struct {
	pushService services.PushServiceInterface
}

func NewPushController(pushService services.PushServiceInterface) *PushController {
	return &PushController{pushService: pushService}
}

// Status godoc
// @Summary Push subscription status
// @Tags Push
// @Produce json
// @Success 200 {object} utils.APIResponse{data=response_models.PushStatusResponse}
// @Router /api/push/status [get]
func (p *PushController) Status(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	status, err := p.pushService.Status(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, status, "")
}

// Subscribe godoc
// @Summary Register a push subscription
// @Tags Push
// @Accept json
// @Produce json
// @Param request body request_models.PushSubscribeRequest true "Browser subscription"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/push/subscribe [post]
func (p *PushController) Subscribe(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req request_models.PushSubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := p.pushService.Subscribe(c.Request.Context(), userID, req, c.Request.UserAgent()); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.OKResponse{OK: true}, "Subscribed")
}

// Unsubscribe godoc
// @Summary Remove push subscriptions
// @Description Removes one endpoint, or all of the caller's subscriptions when none is given
// @Tags Push
// @Accept json
// @Produce json
// @Param request body request_models.PushUnsubscribeRequest false "Endpoint"
// @Success 200 {object} utils.APIResponse{data=response_models.PushUnsubscribeResponse}
// @Router /api/push/unsubscribe [post]
func (p *PushController) Unsubscribe(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req request_models.PushUnsubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	removed, err := p.pushService.Unsubscribe(c.Request.Context(), userID, req.Endpoint)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.PushUnsubscribeResponse{OK: true, Removed: removed}, "")
}
