// Package httputil provides JSON response helpers for the API layer.
package httputil

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// APIError is the wire shape of every error response.
type APIError struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// WriteJSON encodes v as the response body with the given status.
// Encoding failures are logged, not surfaced: headers are already gone.
func WriteJSON(w http.ResponseWriter, logger *slog.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

// WriteError writes a structured error response.
func WriteError(w http.ResponseWriter, logger *slog.Logger, status int, code, message string) {
	WriteJSON(w, logger, status, APIError{
		Error: message,
		Code:  code,
	})
}

// DecodeJSON parses the request body into v, rejecting unknown fields.
func DecodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
