package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nomis52/activities/buildinfo"
	"github.com/nomis52/activities/server/types"
)

type mockPropertiesProvider struct {
	props types.ServerProperties
}

func (m *mockPropertiesProvider) Properties() types.ServerProperties {
	return m.props
}

func TestStatusHandler(t *testing.T) {
	reg := seededRegistry(t)
	started := time.Now().Add(-time.Hour).UTC().Truncate(time.Second)
	provider := &mockPropertiesProvider{
		props: types.ServerProperties{
			Build:     buildinfo.Get(),
			StartedAt: started,
			Hostname:  "school-1",
		},
	}
	handler := NewStatusHandler(provider, reg)

	req := httptest.NewRequest(http.MethodGet, "/api/status", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp StatusResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "school-1", resp.Server.Hostname)
	assert.Equal(t, started, resp.Server.StartedAt)
	assert.Equal(t, 9, resp.Activities)
	assert.Equal(t, 18, resp.Participants)
}
