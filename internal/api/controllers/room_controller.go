package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"innkeep/internal/models/request_models"
	"innkeep/internal/services"
	"innkeep/pkg/utils"
)

type RoomController struct {
	roomService services.RoomServiceInterface
}

func NewRoomController(roomService services.RoomServiceInterface) *RoomController {
	return &RoomController{roomService: roomService}
}

// Create godoc
// @Summary Create a room
// @Tags Rooms
// @Accept json
// @Produce json
// @Param request body request_models.CreateRoomRequest true "Room"
// @Success 201 {object} utils.APIResponse{data=db_models.Room}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/rooms [post]
func (r *RoomController) Create(c *gin.Context) {
	access, ok := currentAccess(c)
	if !ok {
		return
	}

	var req request_models.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	room, err := r.roomService.Create(c.Request.Context(), access.AccountID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, room, "Room created")
}

// List godoc
// @Summary List rooms of a property
// @Tags Rooms
// @Produce json
// @Param propertyId query string true "Property id"
// @Success 200 {object} utils.APIResponse{data=[]db_models.Room}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/rooms [get]
func (r *RoomController) List(c *gin.Context) {
	access, ok := currentAccess(c)
	if !ok {
		return
	}
	propertyID, ok := uuidParam(c, c.Query("propertyId"), "propertyId")
	if !ok {
		return
	}

	rooms, err := r.roomService.List(c.Request.Context(), access.AccountID, propertyID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, rooms, "")
}
