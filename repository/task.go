package repository

import (
	"context"

	"github.com/fastygo/taskboard/domain"
)

// NewTask carries the fields accepted when creating a task.
// Title and UserID are required; a zero UserID counts as missing.
type NewTask struct {
	Title       string `validate:"required"`
	Description *string
	UserID      int64 `validate:"required"`
}

type TaskRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Task, error)
	ListByUserID(ctx context.Context, userID int64) ([]domain.Task, error)
	Create(ctx context.Context, task NewTask) (*domain.Task, error)
	UpdateStatus(ctx context.Context, id int64, completed bool) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
