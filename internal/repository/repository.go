package repository

import (
	"context"

	"github.com/emreglvibecoder/darth-vader-api/internal/models"
)

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(ctx context.Context, task *models.Task) error

	// ListByOwner lists the tasks owned by a user in insertion order
	ListByOwner(ctx context.Context, ownerID uint64) ([]models.Task, error)
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create inserts a user; a taken username yields ErrDuplicateUsername
	Create(ctx context.Context, user *models.User) error

	// FindByUsername finds a user by username
	FindByUsername(ctx context.Context, username string) (*models.User, error)
}
