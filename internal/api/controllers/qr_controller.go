package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"innkeep/internal/services"
	"innkeep/pkg/utils"
)

type QRController struct {
	qrService services.QRServiceInterface
}

func NewQRController(qrService services.QRServiceInterface) *QRController {
	return &QRController{qrService: qrService}
}

// Render godoc
// @Summary Render a QR code
// @Tags QR
// @Produce png
// @Param data query string true "Encoded content"
// @Param size query int false "Edge in pixels, 64..1024"
// @Success 200 {file} binary
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/qr [get]
func (q *QRController) Render(c *gin.Context) {
	size := 0
	if raw := c.Query("size"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "size must be a number")
			return
		}
		size = parsed
	}

	img, err := q.qrService.Render(c.Request.Context(), c.Query("data"), size)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	cache := "MISS"
	if img.Cached {
		cache = "HIT"
	}
	c.Header("Cache-Control", "public, max-age=86400")
	c.Header("X-Cache", cache)
	c.Data(http.StatusOK, img.ContentType, img.Data)
}
