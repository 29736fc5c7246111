package controllers

import (
	"github.com/gin-gonic/gin"

	"innkeep/internal/models/response_models"
	"innkeep/internal/services"
	"innkeep/pkg/middleware"
	"innkeep/pkg/utils"
)

type AccountController struct {
	accountService services.AccountServiceInterface
}

func NewAccountController(accountService services.AccountServiceInterface) *AccountController {
	return &AccountController{
		accountService: accountService,
	}
}

// Cancel godoc
// @Summary Request account cancellation
// @Description Records the cancellation intent. Always reports ok.
// @Tags Account
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/account/cancel [post]
func (a *AccountController) Cancel(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	_ = a.accountService.RequestCancellation(c.Request.Context(), userID)
	utils.RespondSuccess(c, response_models.OKResponse{OK: true}, "Cancellation requested")
}

// Delete godoc
// @Summary Delete account
// @Description Deletes the account and everything it owns
// @Tags Account
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/account/delete [post]
func (a *AccountController) Delete(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	if err := a.accountService.DeleteAccount(c.Request.Context(), userID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.OKResponse{OK: true}, "Account deleted")
}

// Me godoc
// @Summary Current user
// @Description Resolves role, scopes and plan of the caller
// @Tags Account
// @Produce json
// @Success 200 {object} utils.APIResponse{data=response_models.MeResponse}
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/me [get]
func (a *AccountController) Me(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	me, err := a.accountService.Me(c.Request.Context(), userID, middleware.UserEmail(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, me, "")
}
