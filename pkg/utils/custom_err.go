package utils

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthorized      = errors.New("not authenticated")
	ErrInvalidInput      = errors.New("invalid input")
	ErrAccountNotFound   = errors.New("account not found")
	ErrBookingNotFound   = errors.New("booking not found")
	ErrPropertyNotFound  = errors.New("property not found")
	ErrRoomTypeNotFound  = errors.New("room type not found")
	ErrRoomTypeMismatch  = errors.New("room type does not belong to property")
	ErrRoomExists        = errors.New("a room with this name already exists")
	ErrNoBillingCustomer = errors.New("no billing customer on file for this account")
	ErrUnknownPlan       = errors.New("unknown plan")
	ErrAccessRevoked     = errors.New("access revoked")
	ErrScopeDenied       = errors.New("missing scope")
	ErrAIUnavailable     = errors.New("ai provider is not configured")
	ErrUpstream          = errors.New("upstream provider error")
	ErrDatabaseError     = errors.New("database error")
)

// ProcedureError carries the message a remote procedure raised.
type ProcedureError struct {
	Procedure string
	Message   string
	Err       error
}

func (e *ProcedureError) Error() string {
	return fmt.Sprintf("%s: %s", e.Procedure, e.Message)
}

func (e *ProcedureError) Unwrap() error { return e.Err }

// InvalidInput wraps ErrInvalidInput with a caller-facing message.
func InvalidInput(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, msg)
}

// ScopeDenied wraps ErrScopeDenied with the scope the caller lacks.
func ScopeDenied(scope string) error {
	return fmt.Errorf("%w: %s", ErrScopeDenied, scope)
}
