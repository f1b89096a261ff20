package web

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/visitaup/visitas-api/internal/apperrors"
)

// errorResponse is the error envelope returned by every endpoint: a
// machine-readable kind plus a human-readable message.
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// writeJSON writes data as a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, data interface{}, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("encoding response", "error", err)
	}
}

// writeError maps an error to its HTTP status and writes the envelope.
// Errors matching no known kind are reported as internal, with the
// detail logged rather than exposed.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInvalid):
		writeJSON(w, errorResponse{Error: "validation_error", Message: err.Error()}, http.StatusBadRequest)
	case errors.Is(err, apperrors.ErrNotFound):
		writeJSON(w, errorResponse{Error: "not_found", Message: err.Error()}, http.StatusNotFound)
	case errors.Is(err, apperrors.ErrBadGateway):
		writeJSON(w, errorResponse{Error: "bad_gateway", Message: err.Error()}, http.StatusBadGateway)
	default:
		slog.Error("internal error", "error", err)
		writeJSON(w, errorResponse{Error: "internal_error", Message: "internal error"}, http.StatusInternalServerError)
	}
}
