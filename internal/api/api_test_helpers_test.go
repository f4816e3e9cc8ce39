package api_test

import (
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap/zaptest"

	"github.com/phrazzld/creatortune-gateway/internal/api"
	"github.com/phrazzld/creatortune-gateway/internal/api/middleware"
	"github.com/phrazzld/creatortune-gateway/internal/gateway"
	"github.com/phrazzld/creatortune-gateway/internal/generation"
	"github.com/phrazzld/creatortune-gateway/internal/history"
	"github.com/phrazzld/creatortune-gateway/internal/testutils"
)

// setupTestServer mounts the API routes over a gateway using connector.
func setupTestServer(t *testing.T, connector generation.Connector, store history.Store) *httptest.Server {
	t.Helper()
	l := zaptest.NewLogger(t)
	gw := gateway.New(connector, gateway.WithLogger(l))

	operations := api.NewOperationHandler(gw, store)
	histories := api.NewHistoryHandler(store)

	r := chi.NewRouter()
	r.Use(middleware.TraceMiddleware(l))
	r.Get("/api/operations", operations.ListOperations)
	r.Post("/api/operations/{kind}", operations.RunOperation)
	r.Get("/api/history", histories.ListHistory)
	r.Delete("/api/history", histories.ClearHistory)
	r.Get("/health", api.HealthHandler(true, store != nil))

	return testutils.CreateTestServer(t, r)
}
