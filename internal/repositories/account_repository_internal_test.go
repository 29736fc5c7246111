package repositories

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestProcedureMessagePrefersPgMessage(t *testing.T) {
	err := fmt.Errorf("exec: %w", &pgconn.PgError{Severity: "ERROR", Code: "P0001", Message: "account not found"})
	assert.Equal(t, "account not found", ProcedureMessage(err))
	assert.Equal(t, "boom", ProcedureMessage(errors.New("boom")))
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, isUniqueViolation(gorm.ErrDuplicatedKey))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("other")))
}
