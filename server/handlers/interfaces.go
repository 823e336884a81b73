// Package handlers provides HTTP handlers for the activities server.
//
// Each handler is in its own file and implements http.Handler.
// Handlers use interfaces to access server dependencies, avoiding
// circular imports.
package handlers

import (
	"github.com/nomis52/activities/registry"
	"github.com/nomis52/activities/server/types"
)

// ActivityLister provides a snapshot of the full registry state.
type ActivityLister interface {
	List() map[string]registry.Activity
}

// Registrar mutates activity participant lists.
type Registrar interface {
	Signup(activity, email string) (string, error)
	Unregister(activity, email string) (string, error)
}

// EventRecorder counts registry operations for the metrics endpoint.
type EventRecorder interface {
	IncSignup()
	IncUnregister()
	IncRegistryError(kind string)
}

// PropertiesProvider provides metadata about the running server.
type PropertiesProvider interface {
	Properties() types.ServerProperties
}

// RosterCounter provides registry totals for the status endpoint.
type RosterCounter interface {
	Len() int
	ParticipantCount() int
}
