package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/fastygo/taskboard/domain"
	"github.com/fastygo/taskboard/internal/storage"
	"github.com/fastygo/taskboard/repository"
)

type taskRepository struct {
	db *sql.DB
}

// NewTaskRepository creates a SQLite-backed task repository.
func NewTaskRepository(db *sql.DB) repository.TaskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	const q = `SELECT id, title, description, is_completed, user_id FROM tasks WHERE id = ?`

	return scanTask(r.db.QueryRowContext(ctx, q, id))
}

func (r *taskRepository) ListByUserID(ctx context.Context, userID int64) ([]domain.Task, error) {
	const q = `SELECT id, title, description, is_completed, user_id FROM tasks WHERE user_id = ? ORDER BY id`

	rows, err := r.db.QueryContext(ctx, q, userID)
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
	const q = `INSERT INTO tasks (title, description, is_completed, user_id)
	           VALUES (?, ?, 0, ?)
	           RETURNING id, title, description, is_completed, user_id`

	var description any
	if task.Description != nil {
		description = *task.Description
	}

	created, err := scanTask(r.db.QueryRowContext(ctx, q, task.Title, description, task.UserID))
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
	const q = `UPDATE tasks SET is_completed = ? WHERE id = ?`

	return affected(r.db.ExecContext(ctx, q, completed, id))
}

func (r *taskRepository) Delete(ctx context.Context, id int64) (bool, error) {
	const q = `DELETE FROM tasks WHERE id = ?`

	return affected(r.db.ExecContext(ctx, q, id))
}

func affected(res sql.Result, err error) (bool, error) {
	if err != nil {
		return false, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return n > 0, nil
}

func scanTask(row scanner) (*domain.Task, error) {
	var (
		task        domain.Task
		description sql.NullString
	)
	if err := row.Scan(&task.ID, &task.Title, &description, &task.IsCompleted, &task.UserID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, err
	}

	if description.Valid {
		task.Description = &description.String
	}

	return &task, nil
}
