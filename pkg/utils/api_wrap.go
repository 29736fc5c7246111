package utils

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    int    `json:"code"`
	TraceID string `json:"trace_id,omitempty"`
}

func traceID(c *gin.Context) string {
	return c.GetString("trace_id")
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	respond(c, http.StatusOK, data, message)
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	respond(c, http.StatusCreated, data, message)
}

func respond(c *gin.Context, code int, data interface{}, message string) {
	c.JSON(code, APIResponse{
		Status:  "success",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, ErrorResponse{
		Error:   message,
		Code:    code,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps service errors onto status codes. The error is also
// attached to the gin context so the request logger records it.
func HandleServiceError(c *gin.Context, err error) {
	_ = c.Error(err)

	var procErr *ProcedureError
	switch {
	case errors.As(err, &procErr):
		RespondError(c, http.StatusBadRequest, procErr.Message)
	case errors.Is(err, ErrUnauthorized):
		RespondError(c, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, ErrAccessRevoked):
		RespondError(c, http.StatusForbidden, "Access revoked")
	case errors.Is(err, ErrScopeDenied):
		RespondError(c, http.StatusForbidden, "Forbidden: missing scope "+detail(err, ErrScopeDenied))
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, detail(err, ErrInvalidInput))
	case errors.Is(err, ErrDatabaseError):
		RespondError(c, http.StatusBadRequest, detail(err, ErrDatabaseError))
	case errors.Is(err, ErrNoBillingCustomer):
		RespondError(c, http.StatusBadRequest, "No billing customer on file")
	case errors.Is(err, ErrUnknownPlan):
		RespondError(c, http.StatusBadRequest, "Unknown plan")
	case errors.Is(err, ErrRoomTypeMismatch):
		RespondError(c, http.StatusBadRequest, "Room type does not belong to this property")
	case errors.Is(err, ErrRoomTypeNotFound):
		RespondError(c, http.StatusBadRequest, "Room type not found")
	case errors.Is(err, ErrRoomExists):
		RespondError(c, http.StatusConflict, "A room with this name already exists")
	case errors.Is(err, ErrAccountNotFound):
		RespondError(c, http.StatusNotFound, "Account not found")
	case errors.Is(err, ErrBookingNotFound):
		RespondError(c, http.StatusNotFound, "Booking not found")
	case errors.Is(err, ErrPropertyNotFound):
		RespondError(c, http.StatusNotFound, "Property not found")
	case errors.Is(err, ErrAIUnavailable):
		RespondError(c, http.StatusServiceUnavailable, "AI provider is not configured")
	case errors.Is(err, ErrUpstream):
		RespondError(c, http.StatusBadGateway, err.Error())
	default:
		RespondError(c, http.StatusInternalServerError, err.Error())
	}
}

// detail strips the sentinel prefix from a wrapped "<sentinel>: <detail>" error.
func detail(err, sentinel error) string {
	return strings.TrimPrefix(err.Error(), sentinel.Error()+": ")
}
