package shared

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/phrazzld/creatortune-gateway/internal/platform/logger"
)

func TestRespondWithErrorAndLog(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logger.WithLogger(WithTraceID(httptest.NewRequest(http.MethodGet, "/", nil).Context(), "trace-123"), zap.New(core))
	r := httptest.NewRequest(http.MethodPost, "/api/operations/youtube_audit", nil).WithContext(ctx)
	rec := httptest.NewRecorder()

	RespondWithErrorAndLog(rec, r, http.StatusBadGateway, "Please try again.",
		errors.New("upstream rejected key AIzaSyA1234567890abcdefghijklmnopqrstuvwx"),
		WithErrorKind("TransportError"))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Please try again.", body["error"])
	assert.Equal(t, "TransportError", body["kind"])
	assert.Equal(t, "trace-123", body["trace_id"])
	assert.NotContains(t, body, "Code")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	assert.NotContains(t, entries[0].ContextMap()["error"], "AIzaSyA1234567890")
}

func TestClientErrorsLogAtDebug(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	r := httptest.NewRequest(http.MethodPost, "/", nil)
	r = r.WithContext(logger.WithLogger(r.Context(), zap.New(core)))

	RespondWithError(httptest.NewRecorder(), r, http.StatusBadRequest, "bad input")
	RespondWithError(httptest.NewRecorder(), r, http.StatusBadRequest, "bad input", WithElevatedLogLevel())

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
}
