package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastygo/taskboard/internal/storage"
	"github.com/fastygo/taskboard/internal/testsupport"
	"github.com/fastygo/taskboard/repository"
	"github.com/fastygo/taskboard/repository/repositorytest"
)

func TestRepositoryContract(t *testing.T) {
	repositorytest.Run(t, func(t *testing.T) (repository.UserRepository, repository.TaskRepository) {
		db := testsupport.NewSQLite(t)
		return NewUserRepository(db), NewTaskRepository(db)
	})
}

func TestClassifyEngineErrors(t *testing.T) {
	db := testsupport.NewSQLite(t)
	ctx := context.Background()

	_, err := db.ExecContext(ctx, `INSERT INTO users (name, email) VALUES ('a', 'same@x.com')`)
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, `INSERT INTO users (name, email) VALUES ('b', 'same@x.com')`)
	require.Error(t, err)
	assert.Equal(t, storage.ViolationUnique, Classifier.Classify(err))

	_, err = db.ExecContext(ctx, `INSERT INTO tasks (title, user_id) VALUES ('t', 777)`)
	require.Error(t, err)
	assert.Equal(t, storage.ViolationForeignKey, Classifier.Classify(err))

	_, err = db.ExecContext(ctx, `INSERT INTO users (name, email) VALUES (NULL, 'n@x.com')`)
	require.Error(t, err)
	assert.Equal(t, storage.ViolationNotNull, Classifier.Classify(err))

	_, err = db.ExecContext(ctx, `SELECT * FROM missing_table`)
	require.Error(t, err)
	assert.Equal(t, storage.ViolationNone, Classifier.Classify(err))
}

func TestTranslatePassesThroughPlainErrors(t *testing.T) {
	plain := errors.New("disk I/O error")

	err := translate(plain)

	assert.Same(t, plain, err)
	assert.Equal(t, storage.ViolationNone, storage.ViolationOf(err))
}
