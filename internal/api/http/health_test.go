package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveHealth(t *testing.T, h *HealthHandler, wantCode int) HealthResponse {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h.RegisterRoutes(r)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, wantCode, w.Code)

	var body HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHealthCheck(t *testing.T) {
	t.Run("without database", func(t *testing.T) {
		body := serveHealth(t, NewHealthHandler("time-tracker-api", "1.0.0", nil), http.StatusOK)
		assert.Equal(t, "healthy", body.Status)
		assert.Equal(t, "disabled", body.DB)
		assert.Equal(t, "time-tracker-api", body.Service)
	})

	t.Run("database up", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		defer db.Close()
		mock.ExpectPing()

		body := serveHealth(t, NewHealthHandler("svc", "v", db), http.StatusOK)
		assert.Equal(t, "up", body.DB)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database down", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		defer db.Close()
		mock.ExpectPing().WillReturnError(errors.New("connection refused"))

		body := serveHealth(t, NewHealthHandler("svc", "v", db), http.StatusServiceUnavailable)
		assert.Equal(t, "down", body.DB)
		assert.Equal(t, "unhealthy", body.Status)
	})
}
