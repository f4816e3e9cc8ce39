package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/phrazzld/creatortune-gateway/internal/api"
	apiMiddleware "github.com/phrazzld/creatortune-gateway/internal/api/middleware"
	"github.com/phrazzld/creatortune-gateway/internal/platform/gemini"
)

// setupRouter creates and configures the application router with all
// routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware(app.logger))

	operationHandler := api.NewOperationHandler(app.gateway, app.history)
	historyHandler := api.NewHistoryHandler(app.history)

	r.Route("/api", func(r chi.Router) {
		r.Get("/operations", operationHandler.ListOperations)
		r.Post("/operations/{kind}", operationHandler.RunOperation)

		r.Get("/history", historyHandler.ListHistory)
		r.Delete("/history", historyHandler.ClearHistory)
	})

	r.Get("/health", api.HealthHandler(gemini.HasCredential(app.config.LLM.GeminiAPIKey), app.historyEnabled()))
	if app.metrics != nil {
		r.Method(http.MethodGet, "/metrics", app.metrics.Handler())
	}

	return r
}
