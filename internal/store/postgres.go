package store

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	"log/slog"

	"github.com/jekabolt/grbpwr-newsletter/internal/dependency"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	migrate "github.com/rubenv/sql-migrate"
)

const dialect = "postgres"

// PostgresStore implements methods to access the Postgres database
type PostgresStore struct {
	// pool is used for executing queries
	pool *sqlx.DB
}

// New builds a bounded connection pool and, when configured, applies migrations.
// Connections are established lazily; an unparsable connection string fails immediately.
func New(ctx context.Context, cfg Config) (*PostgresStore, error) {
	connector, err := pq.NewConnector(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("couldn't parse connection string: %w", err)
	}
	d := sqlx.NewDb(sql.OpenDB(connector), dialect)

	if cfg.MaxOpenConnections > 0 {
		d.SetMaxOpenConns(cfg.MaxOpenConnections)
	}
	if cfg.MaxIdleConnections > 0 {
		d.SetMaxIdleConns(cfg.MaxIdleConnections)
	}
	d.SetConnMaxLifetime(5 * time.Minute)
	d.SetConnMaxIdleTime(time.Minute)

	if cfg.Automigrate {
		slog.Default().InfoContext(ctx, "applying migrations")
		migrateCtx, migrateCancel := context.WithTimeout(ctx, time.Minute)
		defer migrateCancel()
		if err := MigrateWithContext(migrateCtx, d.DB); err != nil {
			d.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
	}

	return &PostgresStore{pool: d}, nil
}

//go:embed sql
var fs embed.FS

func migrationSource() migrate.MigrationSource {
	return &migrate.EmbedFileSystemMigrationSource{
		FileSystem: fs,
		Root:       "sql",
	}
}

// MigrateWithContext applies every pending migration, giving up when ctx is done.
func MigrateWithContext(ctx context.Context, db *sql.DB) error {
	n, err := runMigrations(ctx, db, migrate.Up, 0)
	if err != nil {
		return fmt.Errorf("db migrations have failed: %w", err)
	}
	slog.Default().InfoContext(ctx, "applied migrations",
		slog.Int("count", n),
	)
	return nil
}

// MigrateDown rolls back the last steps migrations.
func MigrateDown(ctx context.Context, db *sql.DB, steps int) error {
	if steps < 1 {
		return errors.New("steps must be positive")
	}
	n, err := runMigrations(ctx, db, migrate.Down, steps)
	if err != nil {
		return fmt.Errorf("db rollback has failed: %w", err)
	}
	slog.Default().InfoContext(ctx, "rolled back migrations",
		slog.Int("count", n),
	)
	return nil
}

var execMigrations = migrate.ExecMax

// runMigrations gives up waiting when ctx is done. sql-migrate has no context
// aware Exec in this version, so the abandoned call keeps running until its
// current statement returns; callers close the pool, which fails it.
func runMigrations(ctx context.Context, db *sql.DB, dir migrate.MigrationDirection, max int) (int, error) {
	type result struct {
		n   int
		err error
	}
	done := make(chan result, 1)
	go func() {
		n, err := execMigrations(db, dialect, migrationSource(), dir, max)
		done <- result{n: n, err: err}
	}()

	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("migration timeout: %w", ctx.Err())
	case res := <-done:
		return res.n, res.err
	}
}

func (ms *PostgresStore) DB() dependency.DB {
	return ms.pool
}

// Pool exposes the underlying pool for callers that need database/sql directly.
func (ms *PostgresStore) Pool() *sqlx.DB {
	return ms.pool
}

func (ms *PostgresStore) Close() {
	if err := ms.pool.Close(); err != nil {
		slog.Default().Error("can't close database pool", slog.String("err", err.Error()))
	}
}

// Ping checks database connectivity by executing a simple query
func (ms *PostgresStore) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var result int
	err := ms.pool.QueryRowxContext(ctx, "SELECT 1").Scan(&result)
	if err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}
