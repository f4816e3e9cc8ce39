package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/phrazzld/creatortune-gateway/internal/api/shared"
	"github.com/phrazzld/creatortune-gateway/internal/history"
	"github.com/phrazzld/creatortune-gateway/internal/operation"
	"github.com/phrazzld/creatortune-gateway/internal/platform/logger"
	"github.com/phrazzld/creatortune-gateway/internal/redact"
)

// OperationRequest is the body of POST /api/operations/{kind}.
type OperationRequest struct {
	// Language is the result language code; empty means English.
	Language string `json:"language" validate:"omitempty,max=8"`

	// Input is the operation's own input document.
	Input json.RawMessage `json:"input" validate:"required"`
}

// OperationResponse wraps a successful result.
type OperationResponse struct {
	Kind      operation.Kind `json:"kind"`
	Result    interface{}    `json:"result"`
	HistoryID string         `json:"history_id,omitempty"`
}

// OperationInfo describes one available operation.
type OperationInfo struct {
	Kind      operation.Kind `json:"kind"`
	Title     string         `json:"title"`
	Modality  string         `json:"modality"`
	Images    int            `json:"images"`
	Localized bool           `json:"localized"`
}

// Executor runs an operation. *gateway.Gateway satisfies it.
type Executor interface {
	Execute(ctx context.Context, req operation.Request, lang string) (interface{}, error)
}

// OperationHandler handles operation HTTP requests
type OperationHandler struct {
	gateway Executor
	history history.Store
}

// NewOperationHandler creates a new OperationHandler. Successful audits are
// saved to store; a nil store disables that.
func NewOperationHandler(gateway Executor, store history.Store) *OperationHandler {
	if store == nil {
		store = history.Disabled{}
	}
	return &OperationHandler{gateway: gateway, history: store}
}

// ListOperations handles GET /api/operations requests
func (h *OperationHandler) ListOperations(w http.ResponseWriter, r *http.Request) {
	kinds := operation.Kinds()
	out := make([]OperationInfo, 0, len(kinds))
	for _, kind := range kinds {
		spec, _ := operation.Lookup(kind)
		out = append(out, OperationInfo{
			Kind:      spec.Kind,
			Title:     spec.Title,
			Modality:  spec.Modality.String(),
			Images:    spec.Modality.Images(),
			Localized: spec.Localized,
		})
	}
	shared.RespondWithJSON(w, r, http.StatusOK, out)
}

// RunOperation handles POST /api/operations/{kind} requests
func (h *OperationHandler) RunOperation(w http.ResponseWriter, r *http.Request) {
	kind := operation.Kind(chi.URLParam(r, "kind"))
	if _, ok := operation.Lookup(kind); !ok {
		shared.RespondWithError(w, r, http.StatusNotFound, "Operation not found")
		return
	}

	var body OperationRequest
	if err := shared.DecodeJSON(w, r, &body); err != nil {
		if errors.Is(err, shared.ErrBodyTooLarge) {
			respondWithMappedError(w, r, err)
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}
	if err := shared.ValidateRequest(body); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Validation error: input is required", err)
		return
	}

	req, err := operation.DecodeRequest(kind, body.Input)
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	result, err := h.gateway.Execute(r.Context(), req, body.Language)
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	resp := OperationResponse{Kind: kind, Result: result}
	if audit, ok := req.(*operation.AuditInput); ok {
		resp.HistoryID = h.saveAudit(r.Context(), audit.ChannelURL, result)
	}
	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// saveAudit records a finished audit. History is a convenience, so a
// failure is logged and the result is still returned.
func (h *OperationHandler) saveAudit(ctx context.Context, url string, result interface{}) string {
	data, err := json.Marshal(result)
	if err != nil {
		logger.FromContext(ctx).Warn("failed to encode audit for history", zap.Error(err))
		return ""
	}
	item, err := h.history.Save(ctx, url, data)
	if err != nil {
		if !errors.Is(err, history.ErrDisabled) {
			logger.FromContext(ctx).Warn("failed to save audit history", redact.ErrorField(err))
		}
		return ""
	}
	return item.ID
}
