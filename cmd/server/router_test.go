package main

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/phrazzld/creatortune-gateway/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Port: 8080, LogLevel: "debug", LogFormat: "console", ShutdownTimeoutSeconds: 5},
		LLM:    config.LLMConfig{ModelName: config.DefaultModel},
		History: config.HistoryConfig{
			MaxItems: 5,
		},
		Metrics: config.MetricsConfig{Enabled: true},
	}
}

func get(t *testing.T, server *httptest.Server, path string) (*http.Response, string) {
	t.Helper()
	resp, err := server.Client().Get(server.URL + path)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestRouterWithoutCredential(t *testing.T) {
	app, err := newApplication(context.Background(), testConfig(), zaptest.NewLogger(t))
	require.NoError(t, err)
	server := httptest.NewServer(app.setupRouter())
	defer server.Close()

	resp, body := get(t, server, "/health")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok","credential_configured":false,"history_enabled":false}`, body)

	post, err := server.Client().Post(server.URL+"/api/operations/youtube_audit", "application/json",
		strings.NewReader(`{"input":{"channelUrl":"https://www.youtube.com/@ThriftyHomestead"}}`))
	require.NoError(t, err)
	defer func() { _ = post.Body.Close() }()
	assert.Equal(t, http.StatusServiceUnavailable, post.StatusCode)
	assert.NotEmpty(t, post.Header.Get("X-Trace-ID"))

	resp, body = get(t, server, "/metrics")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `creatortune_operation_requests_total{kind="youtube_audit",outcome="ConfigurationError"} 1`)
	assert.Contains(t, body, "go_goroutines")
}

func TestRouterWithoutMetrics(t *testing.T) {
	cfg := testConfig()
	cfg.Metrics.Enabled = false
	app, err := newApplication(context.Background(), cfg, zaptest.NewLogger(t))
	require.NoError(t, err)
	server := httptest.NewServer(app.setupRouter())
	defer server.Close()

	resp, _ := get(t, server, "/metrics")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestApplicationWithRedisHistory(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := testConfig()
	cfg.History.RedisAddr = mr.Addr()
	cfg.LLM.GeminiAPIKey = "test-key"

	app, err := newApplication(context.Background(), cfg, zaptest.NewLogger(t))
	require.NoError(t, err)
	defer app.cleanup()
	require.True(t, app.historyEnabled())

	server := httptest.NewServer(app.setupRouter())
	defer server.Close()

	resp, body := get(t, server, "/health")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok","credential_configured":true,"history_enabled":true}`, body)

	resp, body = get(t, server, "/api/history")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"items":[]}`, body)
}

func TestRunStopsWhenContextIsCancelled(t *testing.T) {
	cfg := testConfig()
	cfg.Server.Port = 0
	app, err := newApplication(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()
	cancel()

	assert.NoError(t, <-done)
}
