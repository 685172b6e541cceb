package repository

import (
	"context"
	"sync"
	"time"

	"github.com/Moon-89/HRMIS/internal/domain"
)

// memorySessionRepository is an in-memory SessionRepository
type memorySessionRepository struct {
	mu       sync.Mutex
	sessions map[string]*domain.Session
}

// NewMemorySessionRepository creates an empty in-memory session store
func NewMemorySessionRepository() SessionRepository {
	return &memorySessionRepository{sessions: make(map[string]*domain.Session)}
}

var _ SessionRepository = (*memorySessionRepository)(nil)

func (r *memorySessionRepository) Create(ctx context.Context, session *domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *session
	r.sessions[session.ID] = &cp
	return nil
}

func (r *memorySessionRepository) GetByUserID(ctx context.Context, userID int64) ([]*domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	var out []*domain.Session
	for _, s := range r.sessions {
		if s.UserID != userID {
			continue
		}
		if now.After(s.ExpiresAt) {
			continue
		}
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memorySessionRepository) DeleteByUserID(ctx context.Context, userID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, s := range r.sessions {
		if s.UserID == userID {
			delete(r.sessions, id)
		}
	}
	return nil
}

func (r *memorySessionRepository) DeleteExpired(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	for id, s := range r.sessions {
		if now.After(s.ExpiresAt) {
			delete(r.sessions, id)
		}
	}
	return nil
}
