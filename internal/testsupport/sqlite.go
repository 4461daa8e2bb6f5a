// Package testsupport provisions real databases for package tests.
package testsupport

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fastygo/taskboard/internal/infrastructure/schema"
	sqliteInfra "github.com/fastygo/taskboard/internal/infrastructure/sqlite"
)

// SQLitePath returns a fresh database file location inside t's temp dir.
func SQLitePath(t testing.TB) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "taskboard.db")
}

// NewSQLite returns a migrated SQLite handle with foreign keys enforced.
// The handle is closed when the test ends.
func NewSQLite(t testing.TB) *sql.DB {
	t.Helper()

	path := SQLitePath(t)
	db, err := sqliteInfra.Open(context.Background(), path, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, schema.Ensure(schema.DialectSQLite, sqliteInfra.DSN(path), nil))

	return db
}
