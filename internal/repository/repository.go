// Package repository defines the data-access ports and their in-memory
// implementations. The store is deliberately process-local: it seeds on boot
// and resets on restart.
package repository

import (
	"context"

	"github.com/Moon-89/HRMIS/internal/domain"
)

// UserFilter narrows ListUsers results
type UserFilter struct {
	// Query matches case-insensitively against name or email
	Query string
	// Role matches exactly when non-empty
	Role domain.Role
}

// LeaveFilter narrows ListLeaves results
type LeaveFilter struct {
	Status domain.LeaveStatus
	UserID int64 // 0 means any user
}

// TaskFilter narrows ListTasks results
type TaskFilter struct {
	Status   domain.TaskStatus
	Assignee int64 // 0 means any assignee
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, filter UserFilter) ([]*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id int64) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// LeaveRepository defines the interface for leave-request data access
type LeaveRepository interface {
	Create(ctx context.Context, leave *domain.Leave) error
	GetByID(ctx context.Context, id int64) (*domain.Leave, error)
	List(ctx context.Context, filter LeaveFilter) ([]*domain.Leave, error)
	Update(ctx context.Context, leave *domain.Leave) error
	Delete(ctx context.Context, id int64) error
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	GetByID(ctx context.Context, id int64) (*domain.Task, error)
	List(ctx context.Context, filter TaskFilter) ([]*domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, id int64) error
}

// SessionRepository defines the interface for session data access
type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error
	GetByUserID(ctx context.Context, userID int64) ([]*domain.Session, error)
	DeleteByUserID(ctx context.Context, userID int64) error
	DeleteExpired(ctx context.Context) error
}
