package middleware_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/internal/middleware"
)

// logRequest runs one request through the logger with a fixed request id and
// returns the decoded log line.
func logRequest(t *testing.T, status int, body string) map[string]any {
	t.Helper()
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	h := middleware.NewSlogLogger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))

	req := httptest.NewRequest(http.MethodGet, "/trips/42", nil)
	req = req.WithContext(context.WithValue(req.Context(), chimiddleware.RequestIDKey, "test-req-id"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, status, rec.Code)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestSlogLogger_logsRequestFields(t *testing.T) {
	entry := logRequest(t, http.StatusOK, "hello")

	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/trips/42", entry["path"])
	assert.EqualValues(t, http.StatusOK, entry["status"])
	assert.EqualValues(t, 5, entry["bytes"])
	assert.Equal(t, "test-req-id", entry["request_id"])
	assert.NotNil(t, entry["duration_ms"])
}

func TestSlogLogger_levelFollowsStatus(t *testing.T) {
	assert.Equal(t, "WARN", logRequest(t, http.StatusNotFound, "")["level"])
	assert.Equal(t, "ERROR", logRequest(t, http.StatusInternalServerError, "")["level"])
}
