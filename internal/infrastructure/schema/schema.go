// Package schema creates the users and tasks tables. Ensure is idempotent
// and runs once at startup, before the HTTP server accepts requests.
package schema

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
	"go.uber.org/zap"
)

//go:embed migrations
var migrations embed.FS

const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite"
)

// Ensure applies pending schema changes for the given dialect. A database
// already at the latest version is left untouched.
func Ensure(dialect, dsn string, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	db, err := sql.Open(dialect, dsn)
	if err != nil {
		return fmt.Errorf("open %s: %w", dialect, err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("ping %s: %w", dialect, err)
	}

	driver, err := newDriver(dialect, db)
	if err != nil {
		return err
	}

	src, err := iofs.New(migrations, "migrations/"+dialect)
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, dialect, driver)
	if err != nil {
		return fmt.Errorf("init migrator: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Info("database schema up to date", zap.String("dialect", dialect))
			return nil
		}
		return fmt.Errorf("apply schema: %w", err)
	}

	version, _, _ := m.Version()
	logger.Info("database schema applied", zap.String("dialect", dialect), zap.Uint("version", version))
	return nil
}

func newDriver(dialect string, db *sql.DB) (database.Driver, error) {
	switch dialect {
	case DialectPostgres:
		return migratepg.WithInstance(db, &migratepg.Config{})
	case DialectSQLite:
		return migratesqlite.WithInstance(db, &migratesqlite.Config{})
	default:
		return nil, fmt.Errorf("unsupported dialect %q", dialect)
	}
}
