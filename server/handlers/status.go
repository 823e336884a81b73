package handlers

import (
	"net/http"

	"github.com/nomis52/activities/server/types"
)

// StatusResponse is the JSON response for GET /api/status.
type StatusResponse struct {
	Server       types.ServerProperties `json:"server"`
	Activities   int                    `json:"activities"`
	Participants int                    `json:"participants"`
}

// StatusHandler handles requests for the server status endpoint.
type StatusHandler struct {
	props  PropertiesProvider
	roster RosterCounter
}

// NewStatusHandler creates a new StatusHandler.
func NewStatusHandler(props PropertiesProvider, roster RosterCounter) *StatusHandler {
	return &StatusHandler{
		props:  props,
		roster: roster,
	}
}

// ServeHTTP implements http.Handler.
func (h *StatusHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, StatusResponse{
		Server:       h.props.Properties(),
		Activities:   h.roster.Len(),
		Participants: h.roster.ParticipantCount(),
	})
}
