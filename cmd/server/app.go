package main

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/phrazzld/creatortune-gateway/internal/config"
	"github.com/phrazzld/creatortune-gateway/internal/gateway"
	"github.com/phrazzld/creatortune-gateway/internal/generation"
	"github.com/phrazzld/creatortune-gateway/internal/history"
	"github.com/phrazzld/creatortune-gateway/internal/metrics"
	"github.com/phrazzld/creatortune-gateway/internal/platform/gemini"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *zap.Logger

	connector generation.Connector
	gateway   *gateway.Gateway
	metrics   *metrics.Metrics

	history history.Store
	redis   *redis.Client
}

// newApplication wires the gateway, its Gemini connector and the optional
// history store. A missing credential is logged but does not stop startup.
func newApplication(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	if cfg.Metrics.Enabled {
		app.metrics = metrics.New()
	}

	app.connector = gemini.NewClientFactory(cfg.LLM, gemini.WithLogger(logger.Named("gemini")))
	if !gemini.HasCredential(cfg.LLM.GeminiAPIKey) {
		logger.Warn("Gemini API key is not set; generation requests will fail until it is configured")
	}

	app.gateway = gateway.New(app.connector,
		gateway.WithLogger(logger.Named("gateway")),
		gateway.WithMetrics(app.metrics))

	app.history = history.Disabled{}
	if cfg.History.RedisAddr != "" {
		app.redis = history.NewRedisClient(cfg.History)
		store := history.NewRedisStore(app.redis, cfg.History.MaxItems)

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := store.Ping(pingCtx); err != nil {
			logger.Warn("audit history store is unreachable", zap.Error(err))
		}
		app.history = store
		logger.Info("audit history enabled",
			zap.String("redis_addr", cfg.History.RedisAddr),
			zap.Int("max_items", cfg.History.MaxItems))
	}

	logger.Info("Application initialized successfully",
		zap.Int("port", cfg.Server.Port),
		zap.String("model", cfg.LLM.ModelName),
		zap.Bool("metrics_enabled", cfg.Metrics.Enabled))
	return app, nil
}

// historyEnabled reports whether audits are being saved.
func (app *application) historyEnabled() bool {
	_, disabled := app.history.(history.Disabled)
	return !disabled
}

// Run starts the application server and blocks until it shuts down.
func (app *application) Run(ctx context.Context) error {
	return app.startHTTPServer(ctx, app.setupRouter())
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.redis != nil {
		if err := app.redis.Close(); err != nil {
			app.logger.Error("Error closing Redis connection", zap.Error(err))
		}
	}
	app.logger.Info("Application shutdown completed")
}
