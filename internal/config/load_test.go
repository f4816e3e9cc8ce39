package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupEnv sets up environment variables for testing
func setupEnv(t *testing.T, envVars map[string]string) func() {
	// Save current environment values
	originalValues := make(map[string]string)
	for name := range envVars {
		originalValues[name] = os.Getenv(name)
	}

	// Set new environment variables
	for name, value := range envVars {
		err := os.Setenv(name, value)
		require.NoError(t, err, "Failed to set environment variable %s", name)
	}

	// Return cleanup function
	return func() {
		// Restore original environment
		for name, value := range originalValues {
			if value == "" {
				os.Unsetenv(name)
			} else {
				os.Setenv(name, value)
			}
		}
	}
}

// TestLoadDefaults verifies that Load sets the expected defaults when no
// environment variables are set.
func TestLoadDefaults(t *testing.T) {
	cleanup := setupEnv(t, map[string]string{
		"CREATORTUNE_SERVER_PORT":        "",
		"CREATORTUNE_SERVER_LOG_LEVEL":   "",
		"CREATORTUNE_LLM_GEMINI_API_KEY": "",
		"CREATORTUNE_LLM_MODEL_NAME":     "",
		"CREATORTUNE_HISTORY_MAX_ITEMS":  "",
	})
	defer cleanup()

	cfg, err := LoadFrom()

	require.NoError(t, err, "a missing API key must not prevent startup")
	require.NotNil(t, cfg)
	assert.Equal(t, 8080, cfg.Server.Port, "Default server port should be 8080")
	assert.Equal(t, "info", cfg.Server.LogLevel, "Default log level should be 'info'")
	assert.Equal(t, "json", cfg.Server.LogFormat)
	assert.Equal(t, DefaultModel, cfg.LLM.ModelName)
	assert.Empty(t, cfg.LLM.GeminiAPIKey)
	assert.Equal(t, 5, cfg.History.MaxItems)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Empty(t, cfg.History.RedisAddr)
}

// TestLoadFromEnv verifies that Load reads values from environment variables.
func TestLoadFromEnv(t *testing.T) {
	cleanup := setupEnv(t, map[string]string{
		"CREATORTUNE_SERVER_PORT":        "9090",
		"CREATORTUNE_SERVER_LOG_LEVEL":   "debug",
		"CREATORTUNE_SERVER_LOG_FORMAT":  "console",
		"CREATORTUNE_LLM_GEMINI_API_KEY": "test-api-key",
		"CREATORTUNE_LLM_BASE_URL":       "http://127.0.0.1:9999/",
		"CREATORTUNE_HISTORY_REDIS_ADDR": "localhost:6379",
		"CREATORTUNE_HISTORY_MAX_ITEMS":  "10",
		"CREATORTUNE_HISTORY_REDIS_DB":   "2",
		"CREATORTUNE_METRICS_ENABLED":    "false",
	})
	defer cleanup()

	cfg, err := LoadFrom()

	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, 9090, cfg.Server.Port, "Server port should be loaded from environment variables")
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "console", cfg.Server.LogFormat)
	assert.Equal(t, "test-api-key", cfg.LLM.GeminiAPIKey, "Gemini API key should be loaded from environment variables")
	assert.Equal(t, "http://127.0.0.1:9999/", cfg.LLM.BaseURL)
	assert.Equal(t, "localhost:6379", cfg.History.RedisAddr)
	assert.Equal(t, 10, cfg.History.MaxItems)
	assert.Equal(t, 2, cfg.History.RedisDB)
	assert.False(t, cfg.Metrics.Enabled)
}

// TestLoadReadsDotEnv verifies that a .env file supplies values the process
// environment does not set.
func TestLoadReadsDotEnv(t *testing.T) {
	for _, name := range []string{"CREATORTUNE_LLM_GEMINI_API_KEY", "CREATORTUNE_SERVER_PORT"} {
		name := name
		if original, ok := os.LookupEnv(name); ok {
			t.Cleanup(func() { os.Setenv(name, original) })
		} else {
			t.Cleanup(func() { os.Unsetenv(name) })
		}
		require.NoError(t, os.Unsetenv(name))
	}

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("CREATORTUNE_LLM_GEMINI_API_KEY=from-dotenv\nCREATORTUNE_SERVER_PORT=7070\n"), 0o600))

	cfg, err := LoadFrom(path, filepath.Join(t.TempDir(), "missing.env"))

	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", cfg.LLM.GeminiAPIKey)
	assert.Equal(t, 7070, cfg.Server.Port)
}

// TestLoadValidationErrors verifies that Load rejects invalid settings.
func TestLoadValidationErrors(t *testing.T) {
	testCases := []struct {
		name           string
		envVars        map[string]string
		errorSubstring string
	}{
		{
			name:           "Invalid port number",
			envVars:        map[string]string{"CREATORTUNE_SERVER_PORT": "999999"},
			errorSubstring: "validation failed",
		},
		{
			name:           "Invalid log level",
			envVars:        map[string]string{"CREATORTUNE_SERVER_LOG_LEVEL": "invalid-level"},
			errorSubstring: "validation failed",
		},
		{
			name:           "Invalid log format",
			envVars:        map[string]string{"CREATORTUNE_SERVER_LOG_FORMAT": "xml"},
			errorSubstring: "validation failed",
		},
		{
			name:           "Invalid base URL",
			envVars:        map[string]string{"CREATORTUNE_LLM_BASE_URL": "not a url"},
			errorSubstring: "validation failed",
		},
		{
			name:           "History limit out of range",
			envVars:        map[string]string{"CREATORTUNE_HISTORY_MAX_ITEMS": "0"},
			errorSubstring: "validation failed",
		},
		{
			name:           "Redis address without port",
			envVars:        map[string]string{"CREATORTUNE_HISTORY_REDIS_ADDR": "localhost"},
			errorSubstring: "validation failed",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cleanup := setupEnv(t, tc.envVars)
			defer cleanup()

			cfg, err := LoadFrom()

			require.Error(t, err, "Load() should return an error with invalid configuration")
			assert.Contains(t, err.Error(), tc.errorSubstring)
			assert.Nil(t, cfg, "Config should be nil when an error occurs")
		})
	}
}
