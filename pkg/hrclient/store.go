package hrclient

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
)

// CredentialStore persists the access token and user snapshot across process
// restarts. Implementations must tolerate loading before anything was stored.
type CredentialStore interface {
	LoadToken() (string, error)
	StoreToken(token string) error
	LoadUser() (*User, error)
	StoreUser(user *User) error
	// Clear removes both credentials. Clearing an empty store is not an error.
	Clear() error
}

const (
	tokenFileName = "token"
	userFileName  = "user.json"
)

// FileCredentialStore keeps credentials in two files under a directory,
// mirroring how the browser frontend keeps them in localStorage.
type FileCredentialStore struct {
	dir string
}

// NewFileCredentialStore creates the directory if needed
func NewFileCredentialStore(dir string) (*FileCredentialStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	return &FileCredentialStore{dir: dir}, nil
}

func (s *FileCredentialStore) LoadToken() (string, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, tokenFileName))
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (s *FileCredentialStore) StoreToken(token string) error {
	return os.WriteFile(filepath.Join(s.dir, tokenFileName), []byte(token), 0o600)
}

func (s *FileCredentialStore) LoadUser() (*User, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, userFileName))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	user := &User{}
	if err := json.Unmarshal(data, user); err != nil {
		// A corrupt snapshot is treated as absent rather than fatal
		return nil, nil
	}
	return user, nil
}

func (s *FileCredentialStore) StoreUser(user *User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, userFileName), data, 0o600)
}

func (s *FileCredentialStore) Clear() error {
	for _, name := range []string{tokenFileName, userFileName} {
		if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
	}
	return nil
}

// MemoryCredentialStore keeps credentials in memory only. It is the default
// store for clients that never asked for persistence.
type MemoryCredentialStore struct {
	mu    sync.Mutex
	token string
	user  *User
}

func NewMemoryCredentialStore() *MemoryCredentialStore {
	return &MemoryCredentialStore{}
}

func (s *MemoryCredentialStore) LoadToken() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, nil
}

func (s *MemoryCredentialStore) StoreToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *MemoryCredentialStore) LoadUser() (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil, nil
	}
	u := *s.user
	return &u, nil
}

func (s *MemoryCredentialStore) StoreUser(user *User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user == nil {
		s.user = nil
		return nil
	}
	u := *user
	s.user = &u
	return nil
}

func (s *MemoryCredentialStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.user = nil
	return nil
}
