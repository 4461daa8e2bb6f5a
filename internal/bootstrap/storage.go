// Package bootstrap assembles the storage backend selected by configuration.
package bootstrap

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/fastygo/taskboard/internal/config"
	"github.com/fastygo/taskboard/internal/infrastructure/monitor"
	pgInfra "github.com/fastygo/taskboard/internal/infrastructure/postgres"
	"github.com/fastygo/taskboard/internal/infrastructure/schema"
	sqliteInfra "github.com/fastygo/taskboard/internal/infrastructure/sqlite"
	"github.com/fastygo/taskboard/repository"
	pgRepo "github.com/fastygo/taskboard/repository/postgres"
	sqliteRepo "github.com/fastygo/taskboard/repository/sqlite"
)

// Storage bundles the repositories with the pool that backs them.
type Storage struct {
	Users  repository.UserRepository
	Tasks  repository.TaskRepository
	Pinger monitor.Pinger

	close func()
}

// Close releases the underlying pool.
func (s *Storage) Close() {
	if s != nil && s.close != nil {
		s.close()
	}
}

// OpenStorage opens the pool and ensures the schema exists. Schema setup
// happens here, once, before any request can reach a repository.
func OpenStorage(ctx context.Context, cfg config.DatabaseConfig, logger *zap.Logger) (*Storage, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	switch cfg.Driver {
	case config.DriverPostgres:
		if err := schema.Ensure(schema.DialectPostgres, cfg.PostgresURL(), logger); err != nil {
			return nil, fmt.Errorf("ensure postgres schema: %w", err)
		}
		pool, err := pgInfra.NewPool(ctx, cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		return &Storage{
			Users:  pgRepo.NewUserRepository(pool),
			Tasks:  pgRepo.NewTaskRepository(pool),
			Pinger: pool,
			close: func() {
				pool.Close()
				logger.Info("postgres pool closed")
			},
		}, nil

	case config.DriverSQLite:
		// Open first so the database directory exists before migrating.
		db, err := sqliteInfra.Open(ctx, cfg.SQLitePath, logger)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		if err := schema.Ensure(schema.DialectSQLite, sqliteInfra.DSN(cfg.SQLitePath), logger); err != nil {
			db.Close()
			return nil, fmt.Errorf("ensure sqlite schema: %w", err)
		}
		return &Storage{
			Users:  sqliteRepo.NewUserRepository(db),
			Tasks:  sqliteRepo.NewTaskRepository(db),
			Pinger: sqlPinger(db),
			close: func() {
				if err := db.Close(); err != nil {
					logger.Warn("sqlite close failed", zap.Error(err))
					return
				}
				logger.Info("sqlite database closed")
			},
		}, nil

	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func sqlPinger(db *sql.DB) monitor.Pinger {
	return monitor.PingerFunc(db.PingContext)
}
