package hrclient

import "sync"

// SessionStore is the in-memory authority for the current session. Reads hit
// memory only; writes are mirrored to the credential store so a new process
// can pick up where this one left off.
type SessionStore struct {
	mu    sync.RWMutex
	token string
	user  *User
	store CredentialStore
}

// NewSessionStore hydrates the session from whatever the credential store
// holds. A load failure leaves the session empty rather than failing the
// construction; the caller simply starts signed out.
func NewSessionStore(store CredentialStore) *SessionStore {
	s := &SessionStore{store: store}
	if store != nil {
		if token, err := store.LoadToken(); err == nil {
			s.token = token
		}
		if user, err := store.LoadUser(); err == nil {
			s.user = user
		}
	}
	return s
}

// Token returns the current access token, "" when signed out
func (s *SessionStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns a copy of the current user snapshot, nil when signed out
func (s *SessionStore) User() *User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// SetToken replaces the access token and persists it
func (s *SessionStore) SetToken(token string) error {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
	if s.store == nil {
		return nil
	}
	return s.store.StoreToken(token)
}

// SetUser replaces the user snapshot and persists it
func (s *SessionStore) SetUser(user *User) error {
	s.mu.Lock()
	if user == nil {
		s.user = nil
	} else {
		u := *user
		s.user = &u
	}
	s.mu.Unlock()
	if s.store == nil {
		return nil
	}
	return s.store.StoreUser(user)
}

// SetSession atomically installs a token and user pair
func (s *SessionStore) SetSession(token string, user *User) error {
	s.mu.Lock()
	s.token = token
	if user == nil {
		s.user = nil
	} else {
		u := *user
		s.user = &u
	}
	s.mu.Unlock()

	if s.store == nil {
		return nil
	}
	if err := s.store.StoreToken(token); err != nil {
		return err
	}
	return s.store.StoreUser(user)
}

// Clear drops the session from memory and the credential store. The in-memory
// state is cleared even when the store fails.
func (s *SessionStore) Clear() error {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()
	if s.store == nil {
		return nil
	}
	return s.store.Clear()
}
