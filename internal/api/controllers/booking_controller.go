package controllers

import (
	"github.com/gin-gonic/gin"

	"innkeep/internal/models/response_models"
	"innkeep/internal/services"
	"innkeep/pkg/utils"
)

type BookingController struct {
	bookingService services.BookingServiceInterface
}

func NewBookingController(bookingService services.BookingServiceInterface) *BookingController {
	return &BookingController{bookingService: bookingService}
}

// Delete godoc
// @Summary Delete a booking
// @Description Removes the booking with its contacts, check-in values and guests
// @Tags Bookings
// @Produce json
// @Param id path string true "Booking id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/bookings/{id}/delete [post]
func (b *BookingController) Delete(c *gin.Context) {
	if err := b.bookingService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.OKResponse{OK: true}, "Booking deleted")
}
