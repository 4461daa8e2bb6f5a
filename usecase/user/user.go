package user

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/fastygo/taskboard/domain"
	"github.com/fastygo/taskboard/pkg/logger"
	"github.com/fastygo/taskboard/repository"
)

var errNameEmailRequired = domain.Invalid("Name and email are required")

type newUser struct {
	Name  string `validate:"required"`
	Email string `validate:"required"`
}

type UseCase struct {
	users    repository.UserRepository
	validate *validator.Validate
	logger   *zap.Logger
}

func New(users repository.UserRepository, log *zap.Logger) *UseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &UseCase{
		users:    users,
		validate: validator.New(),
		logger:   log,
	}
}

// CreateUser validates required fields before touching storage. A taken
// email surfaces as domain.ErrDuplicateEmail.
func (uc *UseCase) CreateUser(ctx context.Context, name, email string) (*domain.User, error) {
	if err := uc.validate.Struct(newUser{Name: name, Email: email}); err != nil {
		return nil, errNameEmailRequired.WithCause(err)
	}

	created, err := uc.users.Create(ctx, name, email)
	if err != nil {
		return nil, err
	}

	logger.WithRequestID(ctx, uc.logger).Info("user created", zap.Int64("user_id", created.ID))
	return created, nil
}

func (uc *UseCase) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	return uc.users.GetByID(ctx, id)
}

func (uc *UseCase) ListUsers(ctx context.Context) ([]domain.User, error) {
	return uc.users.List(ctx)
}

// DeleteUser removes the user together with all of their tasks.
func (uc *UseCase) DeleteUser(ctx context.Context, id int64) error {
	deleted, err := uc.users.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrUserNotFound
	}

	logger.WithRequestID(ctx, uc.logger).Info("user deleted", zap.Int64("user_id", id))
	return nil
}
