package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// errorResponse is the fixed error-body shape for /api/tweets and /api/states
// failures. The dashboard only reads the "error" field.
type errorResponse struct {
	Error string `json:"error"`
}

// serverErrorBody wraps a data-access failure in the error shape the frontend
// expects. The raw error text is included; these endpoints are unauthenticated
// reads over public data, so there is nothing sensitive to hide.
func serverErrorBody(err error) errorResponse {
	return errorResponse{Error: "Server error: " + err.Error()}
}

// writeJSON serializes v as the response body with the given status code.
// An encode failure after the header is written can only be logged.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}
