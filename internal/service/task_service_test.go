package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Moon-89/HRMIS/internal/domain"
	"github.com/Moon-89/HRMIS/internal/dto"
	"github.com/Moon-89/HRMIS/internal/repository"
)

func TestTaskService_Create(t *testing.T) {
	svc := NewTaskService(repository.NewMemoryTaskRepository())

	t.Run("defaults priority and status", func(t *testing.T) {
		task, err := svc.Create(context.Background(), &dto.CreateTaskRequest{Title: "Ship it"})
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if task.Priority != domain.TaskPriorityMedium {
			t.Errorf("Create() Priority = %v, want %v", task.Priority, domain.TaskPriorityMedium)
		}
		if task.Status != domain.TaskStatusTodo {
			t.Errorf("Create() Status = %v, want %v", task.Status, domain.TaskStatusTodo)
		}
	})

	t.Run("explicit values kept", func(t *testing.T) {
		assignee := int64(7)
		task, err := svc.Create(context.Background(), &dto.CreateTaskRequest{
			Title:    "Urgent",
			Priority: "High",
			Status:   "InProgress",
			Assignee: &assignee,
		})
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if task.Priority != domain.TaskPriorityHigh || task.Status != domain.TaskStatusInProgress {
			t.Errorf("Create() = %v/%v, want High/InProgress", task.Priority, task.Status)
		}
		if task.Assignee == nil || *task.Assignee != 7 {
			t.Errorf("Create() Assignee = %v, want 7", task.Assignee)
		}
	})
}

func TestTaskService_UpdateAndFilter(t *testing.T) {
	svc := NewTaskService(repository.NewMemoryTaskRepository())

	a := int64(1)
	b := int64(2)
	t1, err := svc.Create(context.Background(), &dto.CreateTaskRequest{Title: "One", Assignee: &a})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := svc.Create(context.Background(), &dto.CreateTaskRequest{Title: "Two", Assignee: &b}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	done := "Done"
	updated, err := svc.Update(context.Background(), t1.ID, &dto.UpdateTaskRequest{Status: &done})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Status != domain.TaskStatusDone {
		t.Errorf("Update() Status = %v, want Done", updated.Status)
	}

	out, err := svc.List(context.Background(), repository.TaskFilter{Status: domain.TaskStatusDone})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(out) != 1 || out[0].Title != "One" {
		t.Errorf("List(Done) = %+v, want the single finished task", out)
	}

	out, err = svc.List(context.Background(), repository.TaskFilter{Assignee: b})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(out) != 1 || out[0].Title != "Two" {
		t.Errorf("List(assignee=2) = %+v, want the single task for user 2", out)
	}

	if _, err := svc.Update(context.Background(), 9999, &dto.UpdateTaskRequest{Status: &done}); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("Update() error = %v, want %v", err, ErrTaskNotFound)
	}
}

func TestTaskService_Delete(t *testing.T) {
	svc := NewTaskService(repository.NewMemoryTaskRepository())

	task, err := svc.Create(context.Background(), &dto.CreateTaskRequest{Title: "Gone soon"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := svc.Delete(context.Background(), task.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := svc.Get(context.Background(), task.ID); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("Get() after delete error = %v, want %v", err, ErrTaskNotFound)
	}
}
