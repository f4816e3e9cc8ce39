package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server  ServerConfig  `mapstructure:"server" validate:"required"`
	LLM     LLMConfig     `mapstructure:"llm" validate:"required"`
	History HistoryConfig `mapstructure:"history"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port      int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel  string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	LogFormat string `mapstructure:"log_format" validate:"required,oneof=json console"`

	// ShutdownTimeoutSeconds bounds graceful shutdown.
	ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds" validate:"gte=1,lte=300"`
}

// LLMConfig contains the remote model settings.
//
// GeminiAPIKey is deliberately not required here: the server starts without
// it and every generation request fails with a configuration error until it
// is set.
type LLMConfig struct {
	GeminiAPIKey string `mapstructure:"gemini_api_key"`
	ModelName    string `mapstructure:"model_name" validate:"required"`

	// BaseURL and APIVersion override the Gemini endpoint. They are empty in
	// production.
	BaseURL    string `mapstructure:"base_url" validate:"omitempty,url"`
	APIVersion string `mapstructure:"api_version"`
}

// HistoryConfig controls the saved audit history.
type HistoryConfig struct {
	// RedisAddr is host:port of the Redis server. Empty disables history.
	RedisAddr string `mapstructure:"redis_addr" validate:"omitempty,hostname_port"`
	RedisDB   int    `mapstructure:"redis_db" validate:"gte=0,lte=15"`
	MaxItems  int    `mapstructure:"max_items" validate:"gte=1,lte=50"`
}

// MetricsConfig toggles the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}
