package repository

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Moon-89/HRMIS/internal/domain"
)

// ErrDuplicateEmail indicates a user with the same email already exists
var ErrDuplicateEmail = errors.New("user with this email already exists")

// memoryUserRepository is an in-memory UserRepository
type memoryUserRepository struct {
	mu      sync.Mutex
	users   map[int64]*domain.User
	counter int64
}

// NewMemoryUserRepository creates an empty in-memory user store
func NewMemoryUserRepository() UserRepository {
	return &memoryUserRepository{users: make(map[int64]*domain.User)}
}

var _ UserRepository = (*memoryUserRepository)(nil)

func (r *memoryUserRepository) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	email := domain.NormalizeEmail(user.Email)
	for _, u := range r.users {
		if domain.NormalizeEmail(u.Email) == email {
			return ErrDuplicateEmail
		}
	}

	r.counter++
	user.ID = r.counter
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	user.UpdatedAt = user.CreatedAt

	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *memoryUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (r *memoryUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	email = domain.NormalizeEmail(email)
	for _, u := range r.users {
		if domain.NormalizeEmail(u.Email) == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memoryUserRepository) List(ctx context.Context, filter UserFilter) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*domain.User
	q := strings.ToLower(filter.Query)
	for _, u := range r.users {
		if q != "" &&
			!strings.Contains(strings.ToLower(u.Name), q) &&
			!strings.Contains(strings.ToLower(u.Email), q) {
			continue
		}
		if filter.Role != "" && u.Role != filter.Role {
			continue
		}
		cp := *u
		out = append(out, &cp)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memoryUserRepository) Update(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.ID]; !ok {
		return nil
	}
	user.UpdatedAt = time.Now().UTC()
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *memoryUserRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
	return nil
}

func (r *memoryUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	u, err := r.GetByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return u != nil, nil
}
