package dashboard

import (
	"path/filepath"
	"testing"

	"court_booking/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	return NewFileStore(filepath.Join(t.TempDir(), "credentials.json"))
}

func TestSessionRoundtrip(t *testing.T) {
	store := newTestStore(t)

	sess := &Session{
		Token: "tok123",
		Claim: Claim{ID: "a1", Name: "Root", Email: "root@example.com", Role: model.RoleAdmin},
	}
	require.NoError(t, SaveSession(store, sess))

	loaded, err := LoadSession(store)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, sess.Token, loaded.Token)
	assert.Equal(t, sess.Claim, loaded.Claim)
	assert.True(t, loaded.IsAdmin())
}

func TestLoadSession_Missing(t *testing.T) {
	store := newTestStore(t)

	sess, err := LoadSession(store)
	require.NoError(t, err)
	assert.Nil(t, sess)
}

func TestLoadSession_UndecodableClaim(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Set(credTokenKey, "tok123"))
	require.NoError(t, store.Set(credUserKey, "not-json{"))

	sess, err := LoadSession(store)
	require.NoError(t, err)
	assert.Nil(t, sess, "a corrupt claim is treated as no session")
}

func TestClearSession(t *testing.T) {
	store := newTestStore(t)
	sess := &Session{Token: "tok123", Claim: Claim{ID: "a1", Role: model.RoleAdmin}}
	require.NoError(t, SaveSession(store, sess))

	require.NoError(t, ClearSession(store))

	loaded, err := LoadSession(store)
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestSessionIsAdmin(t *testing.T) {
	var nilSess *Session
	assert.False(t, nilSess.IsAdmin())

	assert.False(t, (&Session{Token: "t", Claim: Claim{Role: model.RoleUser}}).IsAdmin())
	assert.False(t, (&Session{Token: "", Claim: Claim{Role: model.RoleAdmin}}).IsAdmin())
	assert.True(t, (&Session{Token: "t", Claim: Claim{Role: model.RoleAdmin}}).IsAdmin())
}
