package repository

import (
	"context"

	"github.com/fastygo/taskboard/domain"
)

// UserRepository persists users. GetByID reports absence with
// domain.ErrUserNotFound; Delete reports whether a row was removed and
// relies on the storage layer to cascade to the user's tasks.
type UserRepository interface {
	Create(ctx context.Context, name, email string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
