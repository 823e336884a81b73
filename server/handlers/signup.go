package handlers

import (
	"net/http"
)

// SignupHandler handles requests to sign a student up for an activity.
type SignupHandler struct {
	registrar Registrar
	events    EventRecorder
}

// NewSignupHandler creates a new SignupHandler.
func NewSignupHandler(registrar Registrar, events EventRecorder) *SignupHandler {
	return &SignupHandler{
		registrar: registrar,
		events:    events,
	}
}

// ServeHTTP implements http.Handler.
func (h *SignupHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	activity := r.PathValue("activity")
	email := r.URL.Query().Get("email")
	if email == "" {
		writeJSON(w, http.StatusBadRequest, DetailResponse{Detail: "Email is required"})
		return
	}

	msg, err := h.registrar.Signup(activity, email)
	if err != nil {
		writeRegistryError(w, err, h.events)
		return
	}

	h.events.IncSignup()
	writeJSON(w, http.StatusOK, MessageResponse{Message: msg})
}
