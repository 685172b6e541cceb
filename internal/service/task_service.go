package service

import (
	"context"
	"errors"

	"github.com/Moon-89/HRMIS/internal/domain"
	"github.com/Moon-89/HRMIS/internal/dto"
	"github.com/Moon-89/HRMIS/internal/repository"
)

var ErrTaskNotFound = errors.New("task not found")

// TaskService defines the interface for task operations
type TaskService interface {
	List(ctx context.Context, filter repository.TaskFilter) ([]domain.Task, error)
	Create(ctx context.Context, req *dto.CreateTaskRequest) (*domain.Task, error)
	Get(ctx context.Context, id int64) (*domain.Task, error)
	Update(ctx context.Context, id int64, req *dto.UpdateTaskRequest) (*domain.Task, error)
	Delete(ctx context.Context, id int64) error
}

type taskService struct {
	tasks repository.TaskRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(tasks repository.TaskRepository) TaskService {
	return &taskService{tasks: tasks}
}

func (s *taskService) List(ctx context.Context, filter repository.TaskFilter) ([]domain.Task, error) {
	tasks, err := s.tasks.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, *t)
	}
	return out, nil
}

func (s *taskService) Create(ctx context.Context, req *dto.CreateTaskRequest) (*domain.Task, error) {
	task := &domain.Task{
		Title:       req.Title,
		Description: req.Description,
		Priority:    domain.TaskPriority(req.Priority),
		Status:      domain.TaskStatus(req.Status),
		Assignee:    req.Assignee,
	}
	if task.Priority == "" {
		task.Priority = domain.TaskPriorityMedium
	}
	if task.Status == "" {
		task.Status = domain.TaskStatusTodo
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) Get(ctx context.Context, id int64) (*domain.Task, error) {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}
	return task, nil
}

func (s *taskService) Update(ctx context.Context, id int64, req *dto.UpdateTaskRequest) (*domain.Task, error) {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Priority != nil {
		task.Priority = domain.TaskPriority(*req.Priority)
	}
	if req.Status != nil {
		task.Status = domain.TaskStatus(*req.Status)
	}
	if req.Assignee != nil {
		task.Assignee = req.Assignee
	}

	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) Delete(ctx context.Context, id int64) error {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if task == nil {
		return ErrTaskNotFound
	}
	return s.tasks.Delete(ctx, id)
}
