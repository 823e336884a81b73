package registry

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRoster() map[string]Activity {
	return map[string]Activity{
		"Chess Club": {
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		"Programming Class": {
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		"Art Studio": {
			Description:     "Explore painting, drawing, and mixed media techniques",
			Schedule:        "Mondays, 3:30 PM - 5:00 PM",
			MaxParticipants: 15,
			Participants:    []string{},
		},
	}
}

func TestNew(t *testing.T) {
	reg := New(testRoster())
	require.NotNil(t, reg)
	assert.Equal(t, 3, reg.Len())
	assert.Equal(t, 4, reg.ParticipantCount())
}

func TestNew_DoesNotAliasSeed(t *testing.T) {
	roster := testRoster()
	reg := New(roster)

	// Mutating the seed map after construction must not affect the registry.
	roster["Chess Club"].Participants[0] = "mutated@mergington.edu"

	activities := reg.List()
	assert.Equal(t, "michael@mergington.edu", activities["Chess Club"].Participants[0])
}

func TestSignup(t *testing.T) {
	reg := New(testRoster())

	msg, err := reg.Signup("Chess Club", "newstudent@mergington.edu")
	require.NoError(t, err)
	assert.Equal(t, "Signed up newstudent@mergington.edu for Chess Club", msg)

	participants := reg.List()["Chess Club"].Participants
	require.Len(t, participants, 3)
	// Existing members unchanged, new member appended.
	assert.Equal(t, []string{
		"michael@mergington.edu",
		"daniel@mergington.edu",
		"newstudent@mergington.edu",
	}, participants)
}

func TestSignup_UnknownActivity(t *testing.T) {
	reg := New(testRoster())
	before := reg.List()

	msg, err := reg.Signup("Nonexistent Club", "student@mergington.edu")
	assert.ErrorIs(t, err, ErrActivityNotFound)
	assert.Empty(t, msg)

	// State unchanged.
	assert.Equal(t, before, reg.List())
}

func TestSignup_Duplicate(t *testing.T) {
	reg := New(testRoster())

	_, err := reg.Signup("Chess Club", "test@mergington.edu")
	require.NoError(t, err)

	msg, err := reg.Signup("Chess Club", "test@mergington.edu")
	assert.ErrorIs(t, err, ErrAlreadySignedUp)
	assert.Empty(t, msg)

	// Participant count grows by at most one across both calls.
	assert.Len(t, reg.List()["Chess Club"].Participants, 3)
}

func TestUnregister(t *testing.T) {
	reg := New(testRoster())

	msg, err := reg.Unregister("Chess Club", "michael@mergington.edu")
	require.NoError(t, err)
	assert.Equal(t, "Unregistered michael@mergington.edu from Chess Club", msg)

	assert.Equal(t, []string{"daniel@mergington.edu"}, reg.List()["Chess Club"].Participants)
}

func TestUnregister_UnknownActivity(t *testing.T) {
	reg := New(testRoster())

	_, err := reg.Unregister("Nonexistent Club", "student@mergington.edu")
	assert.ErrorIs(t, err, ErrActivityNotFound)
}

func TestUnregister_NotSignedUp(t *testing.T) {
	reg := New(testRoster())
	before := reg.List()

	_, err := reg.Unregister("Chess Club", "notsignedup@mergington.edu")
	assert.ErrorIs(t, err, ErrNotSignedUp)
	assert.Equal(t, before, reg.List())
}

func TestSignupUnregisterRoundTrip(t *testing.T) {
	reg := New(testRoster())
	email := "roundtrip@mergington.edu"

	_, err := reg.Signup("Chess Club", email)
	require.NoError(t, err)
	afterFirst := reg.List()["Chess Club"].Participants

	_, err = reg.Unregister("Chess Club", email)
	require.NoError(t, err)
	assert.NotContains(t, reg.List()["Chess Club"].Participants, email)

	_, err = reg.Signup("Chess Club", email)
	require.NoError(t, err)

	// Final state matches the state after the first signup: present exactly once.
	final := reg.List()["Chess Club"].Participants
	assert.Equal(t, afterFirst, final)
	count := 0
	for _, p := range final {
		if p == email {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestMultipleActivitiesIndependent(t *testing.T) {
	reg := New(testRoster())
	email := "multitasker@mergington.edu"

	for _, activity := range []string{"Chess Club", "Programming Class", "Art Studio"} {
		_, err := reg.Signup(activity, email)
		require.NoError(t, err)
	}

	activities := reg.List()
	assert.Contains(t, activities["Chess Club"].Participants, email)
	assert.Contains(t, activities["Programming Class"].Participants, email)
	assert.Contains(t, activities["Art Studio"].Participants, email)

	// Unregistering from one activity never touches the others.
	_, err := reg.Unregister("Chess Club", email)
	require.NoError(t, err)

	activities = reg.List()
	assert.NotContains(t, activities["Chess Club"].Participants, email)
	assert.Contains(t, activities["Programming Class"].Participants, email)
	assert.Contains(t, activities["Art Studio"].Participants, email)
}

func TestList_ReturnsCopy(t *testing.T) {
	reg := New(testRoster())

	first := reg.List()
	first["Chess Club"].Participants[0] = "modified"
	delete(first, "Programming Class")

	second := reg.List()
	assert.Equal(t, "michael@mergington.edu", second["Chess Club"].Participants[0],
		"mutating a returned snapshot should not affect the registry")
	assert.Len(t, second, 3)
}

func TestSignup_NoCapacityEnforcement(t *testing.T) {
	reg := New(map[string]Activity{
		"Tiny Club": {
			Description:     "A very small club",
			Schedule:        "Never",
			MaxParticipants: 1,
			Participants:    []string{},
		},
	})

	// max_participants is advisory only; signups past it still succeed.
	for i := 0; i < 3; i++ {
		_, err := reg.Signup("Tiny Club", fmt.Sprintf("student%d@mergington.edu", i))
		require.NoError(t, err)
	}
	assert.Len(t, reg.List()["Tiny Club"].Participants, 3)
}

func TestSignup_Concurrent(t *testing.T) {
	reg := New(testRoster())

	var wg sync.WaitGroup
	numGoroutines := 20

	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			_, err := reg.Signup("Art Studio", fmt.Sprintf("student%d@mergington.edu", id))
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	participants := reg.List()["Art Studio"].Participants
	assert.Len(t, participants, numGoroutines)

	seen := make(map[string]bool, len(participants))
	for _, p := range participants {
		assert.False(t, seen[p], "duplicate participant %s", p)
		seen[p] = true
	}
}

func TestSnapshot(t *testing.T) {
	reg := New(testRoster())

	snap := reg.Snapshot()
	require.Len(t, snap, 3)

	// Sorted by name.
	assert.Equal(t, "Art Studio", snap[0].Name)
	assert.Equal(t, "Chess Club", snap[1].Name)
	assert.Equal(t, "Programming Class", snap[2].Name)

	assert.Equal(t, 12, snap[1].MaxParticipants)
	assert.Len(t, snap[1].Participants, 2)
}
