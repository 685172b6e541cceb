package hrclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// Profile fetches the authenticated caller's own record
func (c *Client) Profile(ctx context.Context) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/users/profile", nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ListUsers returns directory accounts matching the filter
func (c *Client) ListUsers(ctx context.Context, filter UserFilter) ([]User, error) {
	query := url.Values{}
	if filter.Query != "" {
		query.Set("q", filter.Query)
	}
	if filter.Role != "" {
		query.Set("role", filter.Role)
	}

	var users []User
	if err := c.do(ctx, http.MethodGet, "/users", query, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// CreateUser adds a directory account
func (c *Client) CreateUser(ctx context.Context, req CreateUserRequest) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodPost, "/users", nil, req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUser fetches one account by ID
func (c *Client) GetUser(ctx context.Context, id int64) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/users/"+strconv.FormatInt(id, 10), nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail fetches one account by email
func (c *Client) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/users/email/"+url.PathEscape(email), nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser applies a partial update to an account
func (c *Client) UpdateUser(ctx context.Context, id int64, req UpdateUserRequest) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodPut, "/users/"+strconv.FormatInt(id, 10), nil, req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes an account
func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/users/"+strconv.FormatInt(id, 10), nil, nil, nil)
}

// ListLeaves returns leave requests matching the filter, owners embedded
func (c *Client) ListLeaves(ctx context.Context, filter LeaveFilter) ([]Leave, error) {
	query := url.Values{}
	if filter.Status != "" {
		query.Set("status", filter.Status)
	}
	if filter.UserID != 0 {
		query.Set("userId", strconv.FormatInt(filter.UserID, 10))
	}

	var leaves []Leave
	if err := c.do(ctx, http.MethodGet, "/leaves", query, nil, &leaves); err != nil {
		return nil, err
	}
	return leaves, nil
}

// CreateLeave files a leave request
func (c *Client) CreateLeave(ctx context.Context, req CreateLeaveRequest) (*Leave, error) {
	var leave Leave
	if err := c.do(ctx, http.MethodPost, "/leaves", nil, req, &leave); err != nil {
		return nil, err
	}
	return &leave, nil
}

// GetLeave fetches one leave request
func (c *Client) GetLeave(ctx context.Context, id int64) (*Leave, error) {
	var leave Leave
	if err := c.do(ctx, http.MethodGet, "/leaves/"+strconv.FormatInt(id, 10), nil, nil, &leave); err != nil {
		return nil, err
	}
	return &leave, nil
}

// UpdateLeave edits a leave request. The server rejects edits by anyone but
// the owner.
func (c *Client) UpdateLeave(ctx context.Context, id int64, req UpdateLeaveRequest) (*Leave, error) {
	var leave Leave
	if err := c.do(ctx, http.MethodPut, "/leaves/"+strconv.FormatInt(id, 10), nil, req, &leave); err != nil {
		return nil, err
	}
	return &leave, nil
}

// DeleteLeave removes a leave request
func (c *Client) DeleteLeave(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/leaves/"+strconv.FormatInt(id, 10), nil, nil, nil)
}

// ListUserLeaves returns one user's leaves, optionally narrowed to a status
func (c *Client) ListUserLeaves(ctx context.Context, userID int64, status string) ([]Leave, error) {
	path := "/leaves/user/" + strconv.FormatInt(userID, 10)
	if status != "" {
		path += "/" + url.PathEscape(status)
	}

	var leaves []Leave
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &leaves); err != nil {
		return nil, err
	}
	return leaves, nil
}

// ListTasks returns tasks matching the filter
func (c *Client) ListTasks(ctx context.Context, filter TaskFilter) ([]Task, error) {
	query := url.Values{}
	if filter.Status != "" {
		query.Set("status", filter.Status)
	}
	if filter.Assignee != 0 {
		query.Set("assignee", strconv.FormatInt(filter.Assignee, 10))
	}

	var tasks []Task
	if err := c.do(ctx, http.MethodGet, "/tasks", query, nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// CreateTask adds a task
func (c *Client) CreateTask(ctx context.Context, req CreateTaskRequest) (*Task, error) {
	var task Task
	if err := c.do(ctx, http.MethodPost, "/tasks", nil, req, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// GetTask fetches one task
func (c *Client) GetTask(ctx context.Context, id int64) (*Task, error) {
	var task Task
	if err := c.do(ctx, http.MethodGet, "/tasks/"+strconv.FormatInt(id, 10), nil, nil, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// UpdateTask applies a partial update to a task
func (c *Client) UpdateTask(ctx context.Context, id int64, req UpdateTaskRequest) (*Task, error) {
	var task Task
	if err := c.do(ctx, http.MethodPut, "/tasks/"+strconv.FormatInt(id, 10), nil, req, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// DeleteTask removes a task
func (c *Client) DeleteTask(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/tasks/"+strconv.FormatInt(id, 10), nil, nil, nil)
}
