package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Moon-89/HRMIS/internal/domain"
)

// memoryTaskRepository is an in-memory TaskRepository
type memoryTaskRepository struct {
	mu      sync.Mutex
	tasks   map[int64]*domain.Task
	counter int64
}

// NewMemoryTaskRepository creates an empty in-memory task store
func NewMemoryTaskRepository() TaskRepository {
	return &memoryTaskRepository{tasks: make(map[int64]*domain.Task)}
}

var _ TaskRepository = (*memoryTaskRepository)(nil)

func (r *memoryTaskRepository) Create(ctx context.Context, task *domain.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.counter++
	task.ID = r.counter
	if task.CreatedAt.IsZero() {
		task.CreatedAt = time.Now().UTC()
	}
	if task.UpdatedAt.IsZero() {
		task.UpdatedAt = task.CreatedAt
	}

	cp := *task
	r.tasks[task.ID] = &cp
	return nil
}

func (r *memoryTaskRepository) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if t, ok := r.tasks[id]; ok {
		cp := *t
		return &cp, nil
	}
	return nil, nil
}

func (r *memoryTaskRepository) List(ctx context.Context, filter TaskFilter) ([]*domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*domain.Task
	for _, t := range r.tasks {
		if filter.Status != "" && t.Status != filter.Status {
			continue
		}
		if filter.Assignee != 0 && (t.Assignee == nil || *t.Assignee != filter.Assignee) {
			continue
		}
		cp := *t
		out = append(out, &cp)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memoryTaskRepository) Update(ctx context.Context, task *domain.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[task.ID]; !ok {
		return nil
	}
	task.UpdatedAt = time.Now().UTC()
	cp := *task
	r.tasks[task.ID] = &cp
	return nil
}

func (r *memoryTaskRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tasks, id)
	return nil
}
