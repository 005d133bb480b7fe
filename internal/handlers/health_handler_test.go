package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"jindam_vocab/internal/config"
	"jindam_vocab/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestHealthHandler_GetHealth(t *testing.T) {
	tr := newTestRouter(t, nil)

	rr := tr.do(http.MethodGet, "/api/health", nil, nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	got := decode[model.HealthResponse](t, rr)
	assert.Equal(t, "ok", got.Status)
	assert.Equal(t, config.HealthMessage, got.Message)
	assert.Equal(t, config.AppVersion, got.Version)
	assert.Equal(t, config.APILabel, got.API)
	_, err := time.Parse(time.RFC3339, got.Timestamp)
	assert.NoError(t, err)
}

func TestHealthHandler_GetLiveness(t *testing.T) {
	t.Run("正常系: DB疎通OK", func(t *testing.T) {
		tr := newTestRouter(t, func(ctx context.Context) error { return nil })
		rr := tr.do(http.MethodGet, "/health", nil, nil)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "OK", rr.Body.String())
	})

	t.Run("異常系: DB疎通NG", func(t *testing.T) {
		tr := newTestRouter(t, func(ctx context.Context) error { return errors.New("connection refused") })
		rr := tr.do(http.MethodGet, "/health", nil, nil)
		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	})
}

func TestRouter_CORSPreflight(t *testing.T) {
	tr := newTestRouter(t, nil)

	rr := tr.do(http.MethodOptions, "/api/words", nil, map[string]string{
		"Origin":                         "http://localhost:3000",
		"Access-Control-Request-Method":  http.MethodDelete,
		"Access-Control-Request-Headers": "X-Client-ID",
	})

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.NotEmpty(t, rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rr.Header().Get("Access-Control-Allow-Methods"), http.MethodDelete)
}
