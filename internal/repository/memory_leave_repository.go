package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Moon-89/HRMIS/internal/domain"
)

// memoryLeaveRepository is an in-memory LeaveRepository
type memoryLeaveRepository struct {
	mu      sync.Mutex
	leaves  map[int64]*domain.Leave
	counter int64
}

// NewMemoryLeaveRepository creates an empty in-memory leave store
func NewMemoryLeaveRepository() LeaveRepository {
	return &memoryLeaveRepository{leaves: make(map[int64]*domain.Leave)}
}

var _ LeaveRepository = (*memoryLeaveRepository)(nil)

func (r *memoryLeaveRepository) Create(ctx context.Context, leave *domain.Leave) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.counter++
	leave.ID = r.counter
	now := time.Now().UTC()
	if leave.CreatedAt.IsZero() {
		leave.CreatedAt = now
	}
	leave.UpdatedAt = leave.CreatedAt

	cp := *leave
	r.leaves[leave.ID] = &cp
	return nil
}

func (r *memoryLeaveRepository) GetByID(ctx context.Context, id int64) (*domain.Leave, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if l, ok := r.leaves[id]; ok {
		cp := *l
		return &cp, nil
	}
	return nil, nil
}

func (r *memoryLeaveRepository) List(ctx context.Context, filter LeaveFilter) ([]*domain.Leave, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*domain.Leave
	for _, l := range r.leaves {
		if filter.Status != "" && l.Status != filter.Status {
			continue
		}
		if filter.UserID != 0 && l.UserID != filter.UserID {
			continue
		}
		cp := *l
		out = append(out, &cp)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memoryLeaveRepository) Update(ctx context.Context, leave *domain.Leave) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.leaves[leave.ID]; !ok {
		return nil
	}
	leave.UpdatedAt = time.Now().UTC()
	cp := *leave
	r.leaves[leave.ID] = &cp
	return nil
}

func (r *memoryLeaveRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.leaves, id)
	return nil
}
