package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/kingbharath048-glitch/Onboarding-Flow-Pro/internal/domain"
	"github.com/kingbharath048-glitch/Onboarding-Flow-Pro/internal/handler/gen"
)

// notFoundBody returns an ErrorResponse for a missing resource.
// The caller supplies the human-readable message (e.g. "outlet not found")
// because the handler is the layer that knows what was being looked up.
func notFoundBody(message string) gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: "not_found", Message: message}}
}

// validationBody returns an ErrorResponse for a domain validation failure.
// The message is extracted from the wrapped domain.ErrValidation error.
func validationBody(err error) gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: "validation_error", Message: unwrapMessage(err)}}
}

// requestBody returns an ErrorResponse for a bad request rejected before
// reaching the service layer (e.g. missing or malformed body).
func requestBody(message string) gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: "validation_error", Message: message}}
}

// confirmationBody returns an ErrorResponse for a destructive call made
// without confirm=true.
func confirmationBody() gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{
		Code:    "confirmation_required",
		Message: "deleting an outlet cannot be undone; repeat the request with confirm=true",
	}}
}

// unwrapMessage extracts the human-readable part from a wrapped sentinel error.
// e.g. "service.BoardService.Move: validation error: unknown stage \"X\"" → "unknown stage \"X\""
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	marker := domain.ErrValidation.Error() + ": "
	if i := strings.LastIndex(msg, marker); i >= 0 && i+len(marker) < len(msg) {
		return msg[i+len(marker):]
	}
	return msg
}

// StrictOptions returns the error handlers for the generated strict server.
// Undecodable request bodies become 400s (413 past the body limit) and
// unexpected service errors become logged 500s, all with the ErrorResponse
// envelope.
func StrictOptions(log *slog.Logger) gen.StrictHTTPServerOptions {
	return gen.StrictHTTPServerOptions{
		RequestErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
			var mbe *http.MaxBytesError
			if errors.As(err, &mbe) {
				writeError(w, http.StatusRequestEntityTooLarge, gen.ErrorDetail{Code: "too_large", Message: err.Error()})
				return
			}
			writeError(w, http.StatusBadRequest, gen.ErrorDetail{Code: "bad_request", Message: err.Error()})
		},
		ResponseErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
			log.ErrorContext(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "error", err)
			writeError(w, http.StatusInternalServerError, gen.ErrorDetail{Code: "internal", Message: "internal server error"})
		},
	}
}

// ParamErrorHandler reports malformed path or query parameters with the
// ErrorResponse envelope. Pass it as gen.ChiServerOptions.ErrorHandlerFunc.
func ParamErrorHandler(w http.ResponseWriter, _ *http.Request, err error) {
	writeError(w, http.StatusBadRequest, gen.ErrorDetail{Code: "bad_request", Message: err.Error()})
}

func writeError(w http.ResponseWriter, status int, detail gen.ErrorDetail) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(gen.ErrorResponse{Error: detail})
}
