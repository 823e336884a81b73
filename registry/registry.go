// Package registry provides the in-memory store of extracurricular activities.
//
// The registry is seeded once at startup and owns all activity records for the
// lifetime of the process. Activities are never created or deleted at runtime;
// the only mutation is adding or removing a participant email via Signup and
// Unregister. All operations are safe for concurrent use.
//
// Example usage:
//
//	roster, err := registry.LoadDefault()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	reg := registry.New(roster)
//	msg, err := reg.Signup("Chess Club", "student@mergington.edu")
package registry

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
)

var (
	// ErrActivityNotFound is returned when the named activity does not exist.
	ErrActivityNotFound = errors.New("activity not found")

	// ErrAlreadySignedUp is returned when the email is already a participant.
	ErrAlreadySignedUp = errors.New("student already signed up")

	// ErrNotSignedUp is returned when unregistering an email that is not a participant.
	ErrNotSignedUp = errors.New("student not signed up for this activity")
)

// Activity is a single extracurricular offering.
//
// MaxParticipants is advisory. It is stored and reported but never checked
// during signup.
type Activity struct {
	Description     string   `json:"description" yaml:"description"`
	Schedule        string   `json:"schedule" yaml:"schedule"`
	MaxParticipants int      `json:"max_participants" yaml:"max_participants"`
	Participants    []string `json:"participants" yaml:"participants"`
}

// NamedActivity pairs an activity with its registry key, for ordered exports.
type NamedActivity struct {
	Name string
	Activity
}

// Registry is the process-wide store of activities, keyed by name.
type Registry struct {
	mu         sync.RWMutex
	activities map[string]*Activity
}

// New creates a Registry seeded with the given roster.
// The roster is copied; the caller's map is not retained.
func New(roster map[string]Activity) *Registry {
	activities := make(map[string]*Activity, len(roster))
	for name, act := range roster {
		a := act
		a.Participants = slices.Clone(act.Participants)
		if a.Participants == nil {
			a.Participants = []string{}
		}
		activities[name] = &a
	}
	return &Registry{activities: activities}
}

// List returns a deep copy of the full registry state.
// The returned map and participant slices are owned by the caller.
func (r *Registry) List() map[string]Activity {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]Activity, len(r.activities))
	for name, act := range r.activities {
		a := *act
		a.Participants = slices.Clone(act.Participants)
		result[name] = a
	}
	return result
}

// Signup adds email to the named activity's participant list.
// Returns a confirmation message on success, ErrActivityNotFound if the
// activity does not exist, or ErrAlreadySignedUp if the email is already
// registered. Participant order is preserved; new signups append.
func (r *Registry) Signup(name, email string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	act, ok := r.activities[name]
	if !ok {
		return "", ErrActivityNotFound
	}
	if slices.Contains(act.Participants, email) {
		return "", ErrAlreadySignedUp
	}

	act.Participants = append(act.Participants, email)
	return fmt.Sprintf("Signed up %s for %s", email, name), nil
}

// Unregister removes email from the named activity's participant list.
// Returns a confirmation message on success, ErrActivityNotFound if the
// activity does not exist, or ErrNotSignedUp if the email is not registered.
func (r *Registry) Unregister(name, email string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	act, ok := r.activities[name]
	if !ok {
		return "", ErrActivityNotFound
	}
	idx := slices.Index(act.Participants, email)
	if idx < 0 {
		return "", ErrNotSignedUp
	}

	act.Participants = slices.Delete(act.Participants, idx, idx+1)
	return fmt.Sprintf("Unregistered %s from %s", email, name), nil
}

// Len returns the number of activities in the registry.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.activities)
}

// ParticipantCount returns the total number of signups across all activities.
func (r *Registry) ParticipantCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := 0
	for _, act := range r.activities {
		total += len(act.Participants)
	}
	return total
}

// Snapshot returns all activities sorted by name, as deep copies.
// Used by the metrics snapshotter, which needs a stable iteration order.
func (r *Registry) Snapshot() []NamedActivity {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]NamedActivity, 0, len(r.activities))
	for name, act := range r.activities {
		a := *act
		a.Participants = slices.Clone(act.Participants)
		result = append(result, NamedActivity{Name: name, Activity: a})
	}
	slices.SortFunc(result, func(a, b NamedActivity) int {
		return strings.Compare(a.Name, b.Name)
	})
	return result
}
