package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/nomis52/activities/registry"
)

// MessageResponse is returned on successful signup or unregister.
type MessageResponse struct {
	Message string `json:"message"`
}

// DetailResponse is returned when a request fails.
type DetailResponse struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// writeRegistryError maps a registry error to its status code and detail body,
// recording the failure with the event recorder.
func writeRegistryError(w http.ResponseWriter, err error, events EventRecorder) {
	switch {
	case errors.Is(err, registry.ErrActivityNotFound):
		events.IncRegistryError("not_found")
		writeJSON(w, http.StatusNotFound, DetailResponse{Detail: "Activity not found"})
	case errors.Is(err, registry.ErrAlreadySignedUp):
		events.IncRegistryError("already_signed_up")
		writeJSON(w, http.StatusBadRequest, DetailResponse{Detail: "Student already signed up"})
	case errors.Is(err, registry.ErrNotSignedUp):
		events.IncRegistryError("not_signed_up")
		writeJSON(w, http.StatusBadRequest, DetailResponse{Detail: "Student not signed up for this activity"})
	default:
		slog.Error("unexpected registry error", "error", err)
		writeJSON(w, http.StatusInternalServerError, DetailResponse{Detail: "Internal error"})
	}
}
