package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/easi-app/easi-server/internal/domain"
	"github.com/easi-app/easi-server/pkg/ctxutil"
)

// ErrorResponse is the JSON body of every non-2xx API response.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody carries a stable code for clients and a human-readable message.
type ErrorBody struct {
	Code      string          `json:"code"`
	Message   string          `json:"message"`
	Fields    []FieldErrorDTO `json:"fields,omitempty"`
	RequestID string          `json:"requestId,omitempty"`
}

// FieldErrorDTO is one invalid request parameter.
type FieldErrorDTO struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Error: ErrorBody{
		Code:      code,
		Message:   message,
		RequestID: ctxutil.RequestIDFromCtx(r.Context()),
	}})
}

// writeDomainError maps domain errors to HTTP status codes and error codes.
// Unexpected errors are logged and hidden behind a generic message.
func writeDomainError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		body := ErrorBody{
			Code:      "VALIDATION",
			Message:   err.Error(),
			RequestID: ctxutil.RequestIDFromCtx(r.Context()),
		}
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			for _, fe := range ve.Errors {
				body.Fields = append(body.Fields, FieldErrorDTO{Field: fe.Field, Message: fe.Message})
			}
		}
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: body})

	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, r, http.StatusUnauthorized, "UNAUTHENTICATED", "authentication required")

	case errors.Is(err, domain.ErrForbidden):
		writeError(w, r, http.StatusForbidden, "FORBIDDEN", "admin access required")

	case errors.Is(err, domain.ErrNotFound):
		writeError(w, r, http.StatusNotFound, "NOT_FOUND", "not found")

	case errors.Is(err, domain.ErrAlreadyExists), errors.Is(err, domain.ErrConflict):
		writeError(w, r, http.StatusConflict, "CONFLICT", "conflict")

	case errors.Is(err, domain.ErrUnavailable):
		log.WarnContext(r.Context(), "upstream unavailable", slog.String("error", err.Error()))
		writeError(w, r, http.StatusServiceUnavailable, "UNAVAILABLE", "upstream service unavailable")

	default:
		log.ErrorContext(r.Context(), "unexpected error",
			slog.String("error", err.Error()),
			slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
		)
		writeError(w, r, http.StatusInternalServerError, "INTERNAL", "internal server error")
	}
}
