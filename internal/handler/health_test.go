package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/internal/api"
)

func TestGetHealth_returns200WithOKStatus(t *testing.T) {
	rec := serve(newHTTPHandler(services{}), http.MethodGet, "/healthz", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var body api.HealthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Equal(t, "ok", body.Status)
}

func TestGetOpenAPI_servesEmbeddedDocument(t *testing.T) {
	rec := serve(newHTTPHandler(services{}), http.MethodGet, "/openapi.yaml", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/yaml", rec.Header().Get("Content-Type"))
	require.Contains(t, rec.Body.String(), "openapi: 3.0.3")
	require.Contains(t, rec.Body.String(), "/participants/{participantID}/confirm")
}
