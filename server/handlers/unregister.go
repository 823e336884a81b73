package handlers

import (
	"net/http"
)

// UnregisterHandler handles requests to remove a student from an activity.
type UnregisterHandler struct {
	registrar Registrar
	events    EventRecorder
}

// NewUnregisterHandler creates a new UnregisterHandler.
func NewUnregisterHandler(registrar Registrar, events EventRecorder) *UnregisterHandler {
	return &UnregisterHandler{
		registrar: registrar,
		events:    events,
	}
}

// ServeHTTP implements http.Handler.
func (h *UnregisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	activity := r.PathValue("activity")
	email := r.URL.Query().Get("email")
	if email == "" {
		writeJSON(w, http.StatusBadRequest, DetailResponse{Detail: "Email is required"})
		return
	}

	msg, err := h.registrar.Unregister(activity, email)
	if err != nil {
		writeRegistryError(w, err, h.events)
		return
	}

	h.events.IncUnregister()
	writeJSON(w, http.StatusOK, MessageResponse{Message: msg})
}
