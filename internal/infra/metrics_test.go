package infra

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"innkeep/internal/config"
)

func TestMetricsHandlerExposesCounters(t *testing.T) {
	m := NewMetrics()
	m.RequestsTotal.WithLabelValues("/api/qr", "GET", "200").Inc()
	m.ProcedureCalls.WithLabelValues("delete_account_cascade", "error").Inc()

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `innkeep_http_requests_total{method="GET",route="/api/qr",status="200"} 1`)
	assert.Contains(t, body, `innkeep_remote_procedure_calls_total{outcome="error",procedure="delete_account_cascade"} 1`)
}

func TestInitRedisDisabledWithoutAddr(t *testing.T) {
	rdb, err := InitRedis(&config.Config{}, zap.NewNop())
	require.NoError(t, err)
	assert.Nil(t, rdb)
}

func TestMigrationsAreEmbedded(t *testing.T) {
	entries, err := embedMigrations.ReadDir(migrationsDir)
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Equal(t, []string{"00001_schema.sql", "00002_account_procedures.sql"}, names)
}
