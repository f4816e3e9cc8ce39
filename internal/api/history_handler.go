package api

import (
	"net/http"

	"github.com/phrazzld/creatortune-gateway/internal/api/shared"
	"github.com/phrazzld/creatortune-gateway/internal/history"
)

// HistoryResponse lists saved audits, newest first.
type HistoryResponse struct {
	Items []history.Item `json:"items"`
}

// HistoryHandler serves the saved audit history
type HistoryHandler struct {
	store history.Store
}

// NewHistoryHandler creates a new HistoryHandler. A nil store reports
// history as disabled.
func NewHistoryHandler(store history.Store) *HistoryHandler {
	if store == nil {
		store = history.Disabled{}
	}
	return &HistoryHandler{store: store}
}

// ListHistory handles GET /api/history requests
func (h *HistoryHandler) ListHistory(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.List(r.Context())
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}
	if items == nil {
		items = []history.Item{}
	}
	shared.RespondWithJSON(w, r, http.StatusOK, HistoryResponse{Items: items})
}

// ClearHistory handles DELETE /api/history requests
func (h *HistoryHandler) ClearHistory(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Clear(r.Context()); err != nil {
		respondWithMappedError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
