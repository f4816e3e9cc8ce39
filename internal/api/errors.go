package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/creatortune-gateway/internal/api/shared"
	"github.com/phrazzld/creatortune-gateway/internal/generation"
	"github.com/phrazzld/creatortune-gateway/internal/history"
	"github.com/phrazzld/creatortune-gateway/internal/operation"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch generation.KindOf(err) {
	case generation.KindConfiguration:
		return http.StatusServiceUnavailable
	case generation.KindInput:
		return http.StatusBadRequest
	case generation.KindTransport, generation.KindValidation:
		return http.StatusBadGateway
	}

	switch {
	case errors.Is(err, operation.ErrUnknownKind):
		return http.StatusNotFound
	case errors.Is(err, history.ErrDisabled):
		return http.StatusNotFound
	case errors.Is(err, shared.ErrBodyTooLarge):
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var gerr *generation.Error
	if errors.As(err, &gerr) && gerr.Message != "" {
		return gerr.Message
	}

	switch {
	case errors.Is(err, operation.ErrUnknownKind):
		return "Operation not found"
	case errors.Is(err, history.ErrDisabled):
		return "History is not enabled on this server"
	case errors.Is(err, shared.ErrBodyTooLarge):
		return "Request is too large. Images must not exceed 4MB each."
	default:
		return "An unexpected error occurred"
	}
}

// respondWithMappedError writes the status and safe message for err.
func respondWithMappedError(w http.ResponseWriter, r *http.Request, err error) {
	opts := []shared.ResponseOption{}
	if kind := generation.KindOf(err); kind != "" {
		opts = append(opts, shared.WithErrorKind(string(kind)))
	}
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err, opts...)
}
