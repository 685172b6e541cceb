package hrclient

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileCredentialStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileCredentialStore(dir)
	require.NoError(t, err)

	// Empty store loads as signed out, not as an error.
	token, err := store.LoadToken()
	require.NoError(t, err)
	assert.Empty(t, token)
	user, err := store.LoadUser()
	require.NoError(t, err)
	assert.Nil(t, user)

	require.NoError(t, store.StoreToken("tok1"))
	require.NoError(t, store.StoreUser(&User{ID: 1, Name: "Memona", Email: "memona@hrmis.com", Role: "Admin"}))

	token, err = store.LoadToken()
	require.NoError(t, err)
	assert.Equal(t, "tok1", token)

	user, err = store.LoadUser()
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "memona@hrmis.com", user.Email)

	info, err := os.Stat(filepath.Join(dir, "token"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	require.NoError(t, store.Clear())
	token, err = store.LoadToken()
	require.NoError(t, err)
	assert.Empty(t, token)

	// Clearing twice is fine.
	require.NoError(t, store.Clear())
}

func TestFileCredentialStoreCorruptUserSnapshot(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileCredentialStore(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "user.json"), []byte("{not json"), 0o600))

	user, err := store.LoadUser()
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestSessionStoreSurvivesRestart(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileCredentialStore(dir)
	require.NoError(t, err)

	first := NewSessionStore(store)
	require.NoError(t, first.SetSession("tok1", &User{ID: 1, Name: "Memona", Email: "memona@hrmis.com", Role: "Admin"}))

	// A new session over the same directory picks up where the old one
	// stopped, as a fresh process would.
	second := NewSessionStore(store)
	assert.Equal(t, "tok1", second.Token())
	require.NotNil(t, second.User())
	assert.Equal(t, "Memona", second.User().Name)

	require.NoError(t, second.Clear())
	third := NewSessionStore(store)
	assert.Empty(t, third.Token())
	assert.Nil(t, third.User())
}

func TestSessionStoreUserCopyIsIsolated(t *testing.T) {
	session := NewSessionStore(NewMemoryCredentialStore())
	require.NoError(t, session.SetSession("tok1", &User{ID: 1, Name: "Memona"}))

	u := session.User()
	u.Name = "changed"

	assert.Equal(t, "Memona", session.User().Name)
}
