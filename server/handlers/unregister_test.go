package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unregisterRequest(activity, email string) *http.Request {
	target := "/activities/" + url.PathEscape(activity) + "/unregister"
	if email != "" {
		target += "?email=" + url.QueryEscape(email)
	}
	req := httptest.NewRequest(http.MethodDelete, target, nil)
	req.SetPathValue("activity", activity)
	return req
}

func TestUnregisterHandler(t *testing.T) {
	reg := seededRegistry(t)
	events := newMockEvents()
	handler := NewUnregisterHandler(reg, events)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, unregisterRequest("Chess Club", "michael@mergington.edu"))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp MessageResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "Unregistered michael@mergington.edu from Chess Club", resp.Message)

	assert.Equal(t, []string{"daniel@mergington.edu"}, reg.List()["Chess Club"].Participants)
	assert.Equal(t, 1, events.unregisters)
}

func TestUnregisterHandler_UnknownActivity(t *testing.T) {
	reg := seededRegistry(t)
	events := newMockEvents()
	handler := NewUnregisterHandler(reg, events)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, unregisterRequest("Nonexistent Club", "student@mergington.edu"))

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp DetailResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "Activity not found", resp.Detail)
	assert.Equal(t, 1, events.registryErrors["not_found"])
}

func TestUnregisterHandler_NotSignedUp(t *testing.T) {
	reg := seededRegistry(t)
	events := newMockEvents()
	handler := NewUnregisterHandler(reg, events)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, unregisterRequest("Chess Club", "notsignedup@mergington.edu"))

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp DetailResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "Student not signed up for this activity", resp.Detail)

	// Existing members unaffected.
	assert.Len(t, reg.List()["Chess Club"].Participants, 2)
	assert.Equal(t, 1, events.registryErrors["not_signed_up"])
}

func TestUnregisterHandler_MissingEmail(t *testing.T) {
	reg := seededRegistry(t)
	events := newMockEvents()
	handler := NewUnregisterHandler(reg, events)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, unregisterRequest("Chess Club", ""))

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp DetailResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "Email is required", resp.Detail)
}

func TestSignupAfterUnregister(t *testing.T) {
	reg := seededRegistry(t)
	events := newMockEvents()
	signup := NewSignupHandler(reg, events)
	unregister := NewUnregisterHandler(reg, events)

	email := "michael@mergington.edu"

	w := httptest.NewRecorder()
	unregister.ServeHTTP(w, unregisterRequest("Chess Club", email))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	signup.ServeHTTP(w, signupRequest("Chess Club", email))
	require.Equal(t, http.StatusOK, w.Code)

	participants := reg.List()["Chess Club"].Participants
	count := 0
	for _, p := range participants {
		if p == email {
			count++
		}
	}
	assert.Equal(t, 1, count)
}
