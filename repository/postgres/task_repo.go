package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fastygo/taskboard/domain"
	"github.com/fastygo/taskboard/internal/storage"
	"github.com/fastygo/taskboard/repository"
)

type taskRepository struct {
	pool *pgxpool.Pool
}

// NewTaskRepository returns a Postgres-backed implementation of TaskRepository.
func NewTaskRepository(pool *pgxpool.Pool) repository.TaskRepository {
	return &taskRepository{pool: pool}
}

func (r *taskRepository) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	const query = `
	SELECT id, title, description, is_completed, user_id
	FROM tasks
	WHERE id = $1
	`
	return scanTask(r.pool.QueryRow(ctx, query, id))
}

func (r *taskRepository) ListByUserID(ctx context.Context, userID int64) ([]domain.Task, error) {
	const query = `
	SELECT id, title, description, is_completed, user_id
	FROM tasks
	WHERE user_id = $1
	ORDER BY id
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]domain.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *task)
	}
	return tasks, rows.Err()
}

func (r *taskRepository) Create(ctx context.Context, task repository.NewTask) (*domain.Task, error) {
	const query = `
	INSERT INTO tasks (title, description, is_completed, user_id)
	VALUES ($1, $2, FALSE, $3)
	RETURNING id, title, description, is_completed, user_id
	`
	created, err := scanTask(r.pool.QueryRow(ctx, query, task.Title, task.Description, task.UserID))
	if err != nil {
		err = translate(err)
		if storage.ViolationOf(err) == storage.ViolationForeignKey {
			return nil, domain.ErrReferencedUserMissing.WithCause(err)
		}
		return nil, err
	}
	return created, nil
}

func (r *taskRepository) UpdateStatus(ctx context.Context, id int64, completed bool) (bool, error) {
	const query = `UPDATE tasks SET is_completed = $1 WHERE id = $2`
	tag, err := r.pool.Exec(ctx, query, completed, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *taskRepository) Delete(ctx context.Context, id int64) (bool, error) {
	const query = `DELETE FROM tasks WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func scanTask(row pgx.Row) (*domain.Task, error) {
	var task domain.Task
	if err := row.Scan(
		&task.ID,
		&task.Title,
		&task.Description,
		&task.IsCompleted,
		&task.UserID,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}
