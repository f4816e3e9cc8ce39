package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phrazzld/creatortune-gateway/internal/api/shared"
	"github.com/phrazzld/creatortune-gateway/internal/generation"
	"github.com/phrazzld/creatortune-gateway/internal/history"
	"github.com/phrazzld/creatortune-gateway/internal/operation"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"configuration", generation.NewConfigurationError(nil), http.StatusServiceUnavailable},
		{"input", generation.NewInputError("bad", nil), http.StatusBadRequest},
		{"transport", generation.NewTransportError("down", errors.New("eof")), http.StatusBadGateway},
		{"validation", generation.NewValidationError("bad json", nil), http.StatusBadGateway},
		{"wrapped gateway error", fmt.Errorf("handler: %w", generation.NewInputError("bad", nil)), http.StatusBadRequest},
		{"unknown operation", fmt.Errorf("%w: %q", operation.ErrUnknownKind, "nope"), http.StatusNotFound},
		{"history disabled", history.ErrDisabled, http.StatusNotFound},
		{"body too large", shared.ErrBodyTooLarge, http.StatusRequestEntityTooLarge},
		{"anything else", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(nil))
	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(errors.New("pq: password=hunter2")))
	assert.Equal(t, generation.MissingCredentialMessage, GetSafeErrorMessage(generation.NewConfigurationError(nil)))
	assert.Equal(t, "Try again later.",
		GetSafeErrorMessage(generation.NewTransportError("Try again later.", errors.New("dial tcp 10.0.0.1:443"))))
	assert.Equal(t, "Operation not found", GetSafeErrorMessage(operation.ErrUnknownKind))
	assert.Contains(t, GetSafeErrorMessage(history.ErrDisabled), "History")
}
