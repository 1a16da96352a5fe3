package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/emreglvibecoder/darth-vader-api/internal/models"
	"github.com/emreglvibecoder/darth-vader-api/internal/repository"
)

var (
	ErrOwnerRequired = errors.New("task owner is required")
)

// TaskService handles task business logic
type TaskService struct {
	taskRepo repository.TaskRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
	}
}

// CreateTaskInput represents input for creating a task
type CreateTaskInput struct {
	Title     string
	Completed bool
	OwnerID   uint64
}

// CreateTask stores a task owned by input.OwnerID. The title is free text
// and may be empty.
func (s *TaskService) CreateTask(ctx context.Context, input CreateTaskInput) (*models.Task, error) {
	if input.OwnerID == 0 {
		return nil, ErrOwnerRequired
	}

	task := &models.Task{
		Title:     input.Title,
		Completed: input.Completed,
		OwnerID:   input.OwnerID,
	}
	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return task, nil
}

// ListTasks returns every task owned by ownerID
func (s *TaskService) ListTasks(ctx context.Context, ownerID uint64) ([]models.Task, error) {
	tasks, err := s.taskRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}
