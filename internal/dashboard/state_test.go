package dashboard

import (
	"testing"

	"court_booking/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewStateCommit(t *testing.T) {
	state := NewViewState()
	assert.False(t, state.Loaded())

	users := []model.User{{ID: "u1"}}
	bookings := []model.Booking{{ID: "b1"}}
	state.Commit(users, bookings)

	assert.True(t, state.Loaded())
	assert.Equal(t, users, state.Users)
	assert.Equal(t, bookings, state.Bookings)
}

func TestViewStateRemoveUser(t *testing.T) {
	state := NewViewState()
	state.Commit([]model.User{
		{ID: "u1", Name: "Alice"},
		{ID: "u2", Name: "Bob"},
		{ID: "u3", Name: "Carol"},
	}, []model.Booking{
		{ID: "b1", UserName: "Bob"},
	})

	state.RemoveUser("u2")

	require.Len(t, state.Users, 2)
	assert.Equal(t, "u1", state.Users[0].ID)
	assert.Equal(t, "u3", state.Users[1].ID)
	assert.Equal(t, "Alice", state.Users[0].Name)
	assert.Equal(t, "Carol", state.Users[1].Name)

	// Bookings keep the now-stale denormalized name until the next reload.
	require.Len(t, state.Bookings, 1)
	assert.Equal(t, "Bob", state.Bookings[0].UserName)
}

func TestViewStateRemoveUser_UnknownID(t *testing.T) {
	state := NewViewState()
	state.Commit([]model.User{{ID: "u1"}, {ID: "u2"}}, nil)

	state.RemoveUser("missing")

	assert.Len(t, state.Users, 2)
}
