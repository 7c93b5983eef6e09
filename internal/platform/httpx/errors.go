// Package httpx provides HTTP response utilities.
package httpx

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/biztime/biztime/internal/shared"
)

// StatusFor returns the HTTP status a classified error maps to. Unclassified
// errors are data access failures and map to 500.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, shared.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, shared.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, shared.ErrReferentialIntegrity):
		return http.StatusBadRequest
	case errors.Is(err, shared.ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// RespondError maps domain errors to HTTP responses using RFC7807. Server-side
// failures are logged with an incident id that is echoed to the client in
// place of the error text.
func RespondError(w http.ResponseWriter, logger *slog.Logger, err error) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		instance := "urn:uuid:" + uuid.NewString()
		if logger != nil {
			logger.Error("request failed", slog.Any("error", err), slog.String("instance", instance))
		}
		writeProblem(w, ProblemDetail{
			Title:    http.StatusText(status),
			Status:   status,
			Instance: instance,
		})
		return
	}
	if logger != nil {
		logger.Warn("request rejected", slog.Any("error", err), slog.Int("status", status))
	}
	Problem(w, status, http.StatusText(status), shared.UserSafeMessage(err))
}
