package task

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/fastygo/taskboard/domain"
	"github.com/fastygo/taskboard/pkg/logger"
	"github.com/fastygo/taskboard/repository"
)

var errTitleUserRequired = domain.Invalid("Title and user_id are required")

type UseCase struct {
	tasks    repository.TaskRepository
	validate *validator.Validate
	logger   *zap.Logger
}

func New(tasks repository.TaskRepository, log *zap.Logger) *UseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &UseCase{
		tasks:    tasks,
		validate: validator.New(),
		logger:   log,
	}
}

func (uc *UseCase) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	return uc.tasks.GetByID(ctx, id)
}

// ListTasksByUser does not check that the user exists; an unknown user
// simply owns no tasks.
func (uc *UseCase) ListTasksByUser(ctx context.Context, userID int64) ([]domain.Task, error) {
	return uc.tasks.ListByUserID(ctx, userID)
}

// CreateTask stores a new, not yet completed task. A user_id without a
// matching user surfaces as domain.ErrReferencedUserMissing.
func (uc *UseCase) CreateTask(ctx context.Context, task repository.NewTask) (*domain.Task, error) {
	if err := uc.validate.Struct(task); err != nil {
		return nil, errTitleUserRequired.WithCause(err)
	}

	created, err := uc.tasks.Create(ctx, task)
	if err != nil {
		return nil, err
	}

	logger.WithRequestID(ctx, uc.logger).Info("task created",
		zap.Int64("task_id", created.ID),
		zap.Int64("user_id", created.UserID))
	return created, nil
}

func (uc *UseCase) UpdateTaskStatus(ctx context.Context, id int64, completed bool) error {
	updated, err := uc.tasks.UpdateStatus(ctx, id, completed)
	if err != nil {
		return err
	}
	if !updated {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (uc *UseCase) DeleteTask(ctx context.Context, id int64) error {
	deleted, err := uc.tasks.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrTaskNotFound
	}
	return nil
}
