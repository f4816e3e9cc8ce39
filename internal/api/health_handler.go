package api

import (
	"net/http"

	"github.com/phrazzld/creatortune-gateway/internal/api/shared"
)

// HealthResponse reports process health. The server stays healthy without
// a credential; generation calls fail individually until one is set.
type HealthResponse struct {
	Status               string `json:"status"`
	CredentialConfigured bool   `json:"credential_configured"`
	HistoryEnabled       bool   `json:"history_enabled"`
}

// HealthHandler serves GET /health.
func HealthHandler(credentialConfigured, historyEnabled bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{
			Status:               "ok",
			CredentialConfigured: credentialConfigured,
			HistoryEnabled:       historyEnabled,
		})
	}
}
