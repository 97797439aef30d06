package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"animal-rescue/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestLogger_LogsStatusAndRequestID(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Options{Level: logger.ParseLevel("debug"), Format: logger.FormatJSON, Output: &buf})

	h := chimw.RequestID(RequestLogger(log)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("nope"))
	})))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/reports/", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &entry))
	assert.Equal(t, "request", entry["msg"])
	assert.Equal(t, "warning", entry["level"])
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/reports/", entry["path"])
	assert.EqualValues(t, 404, entry["status"])
	assert.EqualValues(t, 4, entry["bytes"])
	assert.NotEmpty(t, entry["request_id"])
}

func TestRequestLogger_DefaultsToOK(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Options{Level: logger.ParseLevel("info"), Format: logger.FormatJSON, Output: &buf})

	h := RequestLogger(log)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &entry))
	assert.EqualValues(t, 200, entry["status"])
	assert.Equal(t, "info", entry["level"])
	_, hasID := entry["request_id"]
	assert.False(t, hasID)
}
