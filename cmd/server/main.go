// Package main implements the entry point for the CreatorTune gateway
// server, which exposes the structured generation operations over HTTP.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/phrazzld/creatortune-gateway/internal/config"
	"github.com/phrazzld/creatortune-gateway/internal/platform/logger"
)

func main() {
	cfg, err := loadAppConfig()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		log.Fatalf("Failed to set up logger: %v", err)
	}
	defer func() { _ = l.Sync() }()

	ctx := context.Background()
	app, err := newApplication(ctx, cfg, l)
	if err != nil {
		l.Error("failed to initialize application", zap.Error(err))
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		l.Error("server stopped with error", zap.Error(err))
		os.Exit(1)
	}
}

// loadAppConfig loads the application configuration from the environment,
// an optional .env file and an optional config file.
func loadAppConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}
