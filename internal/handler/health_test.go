package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGetHealth_DatabaseConnected verifies that GET /api/health reports the
// database as connected when the ping succeeds.
func TestGetHealth_DatabaseConnected(t *testing.T) {
	h := newTestHandler(nil, nil, pingFunc(func(_ context.Context) error { return nil }))

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "transport-sentiment-api", body["service"])
	assert.Equal(t, "connected", body["database"])
}

// TestGetHealth_DatabaseDisconnected verifies the check still returns 200 when
// the database is unreachable — only the database field changes.
func TestGetHealth_DatabaseDisconnected(t *testing.T) {
	h := newTestHandler(nil, nil, pingFunc(func(_ context.Context) error {
		return errors.New("dial tcp: connection refused")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "disconnected", body["database"])
}
