package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g.
// CREATORTUNE_LLM_GEMINI_API_KEY.
const EnvPrefix = "CREATORTUNE"

// DefaultModel is the Gemini model every operation uses.
const DefaultModel = "gemini-2.5-flash"

// Load configuration from environment variables and optionally config files.
// Environment variables take precedence over values from config files, and a
// .env file in the working directory is read first if one exists.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	return LoadFrom(".env")
}

// LoadFrom behaves like Load but reads the given dotenv files. Missing files
// are skipped; variables already set in the process environment win.
func LoadFrom(envFiles ...string) (*Config, error) {
	if err := loadEnvFiles(envFiles...); err != nil {
		return nil, err
	}

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("creatortune")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// setDefaults registers every key so AutomaticEnv can override it during
// Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.log_format", "json")
	v.SetDefault("server.shutdown_timeout_seconds", 15)

	v.SetDefault("llm.gemini_api_key", "")
	v.SetDefault("llm.model_name", DefaultModel)
	v.SetDefault("llm.base_url", "")
	v.SetDefault("llm.api_version", "")

	v.SetDefault("history.redis_addr", "")
	v.SetDefault("history.redis_db", 0)
	v.SetDefault("history.max_items", 5)

	v.SetDefault("metrics.enabled", true)
}

func loadEnvFiles(paths ...string) error {
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("failed to load %s: %w", path, err)
		}
	}
	return nil
}
