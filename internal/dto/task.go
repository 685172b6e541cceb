package dto

// CreateTaskRequest represents a new task
type CreateTaskRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
	Assignee    *int64 `json:"assignee"`
}

// UpdateTaskRequest carries a partial task update; nil fields are untouched
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Priority    *string `json:"priority"`
	Status      *string `json:"status"`
	Assignee    *int64  `json:"assignee"`
}
