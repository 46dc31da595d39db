package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func performHealth(t *testing.T, pingPostgres, pingRedis func(context.Context) error) (int, map[string]any) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/health", healthWith(pingPostgres, pingRedis))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	r.ServeHTTP(w, req)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestHealthOK(t *testing.T) {
	ok := func(context.Context) error { return nil }
	code, body := performHealth(t, ok, ok)

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "invencost", body["service"])

	checks, isMap := body["checks"].(map[string]any)
	require.True(t, isMap)
	assert.Equal(t, "up", checks["postgres"])
	assert.Equal(t, "up", checks["redis"])
}

func TestHealthDegradedWhenRedisDown(t *testing.T) {
	ok := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("connection refused") }
	code, body := performHealth(t, ok, down)

	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "degraded", body["status"])

	checks, isMap := body["checks"].(map[string]any)
	require.True(t, isMap)
	assert.Equal(t, "up", checks["postgres"])
	assert.Equal(t, "down", checks["redis"])
}
