package hrclient

import "time"

// User is an account as the server reports it
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// LeaveUser is the owner summary embedded in leave listings
type LeaveUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Leave is a leave request
type Leave struct {
	ID        int64      `json:"id"`
	UserID    int64      `json:"userId"`
	StartDate string     `json:"startDate"`
	EndDate   string     `json:"endDate"`
	Reason    string     `json:"reason"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	User      *LeaveUser `json:"user,omitempty"`
}

// Task is a work item
type Task struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
	Assignee    *int64    `json:"assignee"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// authResponse is the body of login, register, and refresh responses
type authResponse struct {
	AccessToken string `json:"accessToken"`
	User        User   `json:"user"`
}

// CreateUserRequest creates a directory account
type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Role     string `json:"role,omitempty"`
}

// UpdateUserRequest is a partial user update; nil fields are untouched
type UpdateUserRequest struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
	Role     *string `json:"role,omitempty"`
}

// CreateLeaveRequest files a leave request. UserID 0 means the caller.
type CreateLeaveRequest struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Reason    string `json:"reason"`
	UserID    int64  `json:"userId,omitempty"`
}

// UpdateLeaveRequest is a partial leave update. UserID identifies the caller
// for the server's ownership check.
type UpdateLeaveRequest struct {
	UserID    int64   `json:"userId"`
	StartDate *string `json:"startDate,omitempty"`
	EndDate   *string `json:"endDate,omitempty"`
	Reason    *string `json:"reason,omitempty"`
	Status    *string `json:"status,omitempty"`
}

// CreateTaskRequest creates a task. Priority defaults to Medium and status
// to Todo server-side.
type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Priority    string `json:"priority,omitempty"`
	Status      string `json:"status,omitempty"`
	Assignee    *int64 `json:"assignee,omitempty"`
}

// UpdateTaskRequest is a partial task update; nil fields are untouched
type UpdateTaskRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Priority    *string `json:"priority,omitempty"`
	Status      *string `json:"status,omitempty"`
	Assignee    *int64  `json:"assignee,omitempty"`
}

// UserFilter narrows ListUsers
type UserFilter struct {
	Query string
	Role  string
}

// LeaveFilter narrows ListLeaves
type LeaveFilter struct {
	Status string
	UserID int64
}

// TaskFilter narrows ListTasks
type TaskFilter struct {
	Status   string
	Assignee int64
}
