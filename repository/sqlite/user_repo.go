package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/fastygo/taskboard/domain"
	"github.com/fastygo/taskboard/internal/storage"
	"github.com/fastygo/taskboard/repository"
)

type userRepository struct {
	db *sql.DB
}

// NewUserRepository creates a SQLite-backed user repository. The handle must
// be opened with foreign key enforcement enabled for deletes to cascade.
func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, name, email string) (*domain.User, error) {
	const q = `INSERT INTO users (name, email) VALUES (?, ?) RETURNING id, name, email`

	user, err := scanUser(r.db.QueryRowContext(ctx, q, name, email))
	if err != nil {
		err = translate(err)
		if storage.ViolationOf(err) == storage.ViolationUnique {
			return nil, domain.ErrDuplicateEmail.WithCause(err)
		}
		return nil, err
	}

	return user, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	const q = `SELECT id, name, email FROM users WHERE id = ?`

	return scanUser(r.db.QueryRowContext(ctx, q, id))
}

func (r *userRepository) List(ctx context.Context) ([]domain.User, error) {
	const q = `SELECT id, name, email FROM users ORDER BY id`

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]domain.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}

	return users, rows.Err()
}

func (r *userRepository) Delete(ctx context.Context, id int64) (bool, error) {
	const q = `DELETE FROM users WHERE id = ?`

	return affected(r.db.ExecContext(ctx, q, id))
}

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(row scanner) (*domain.User, error) {
	var user domain.User
	if err := row.Scan(&user.ID, &user.Name, &user.Email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}
