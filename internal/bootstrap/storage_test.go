package bootstrap

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastygo/taskboard/domain"
	"github.com/fastygo/taskboard/internal/config"
	"github.com/fastygo/taskboard/repository"
)

func TestOpenStorageSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "app.db")
	cfg := config.DatabaseConfig{Driver: config.DriverSQLite, SQLitePath: path}
	ctx := context.Background()

	store, err := OpenStorage(ctx, cfg, nil)
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Pinger.Ping(ctx))

	user, err := store.Users.Create(ctx, "Alice", "a@x.com")
	require.NoError(t, err)
	_, err = store.Tasks.Create(ctx, repository.NewTask{Title: "Buy milk", UserID: user.ID})
	require.NoError(t, err)

	_, err = store.Tasks.Create(ctx, repository.NewTask{Title: "orphan", UserID: user.ID + 100})
	assert.ErrorIs(t, err, domain.ErrReferencedUserMissing)
}

func TestOpenStorageReopensExistingDatabase(t *testing.T) {
	cfg := config.DatabaseConfig{Driver: config.DriverSQLite, SQLitePath: filepath.Join(t.TempDir(), "app.db")}
	ctx := context.Background()

	first, err := OpenStorage(ctx, cfg, nil)
	require.NoError(t, err)
	_, err = first.Users.Create(ctx, "Alice", "a@x.com")
	require.NoError(t, err)
	first.Close()

	second, err := OpenStorage(ctx, cfg, nil)
	require.NoError(t, err)
	defer second.Close()

	users, err := second.Users.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestOpenStorageUnsupportedDriver(t *testing.T) {
	_, err := OpenStorage(context.Background(), config.DatabaseConfig{Driver: "mysql"}, nil)
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestNilStorageClose(t *testing.T) {
	var s *Storage
	assert.NotPanics(t, s.Close)
}
