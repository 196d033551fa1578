package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// CreateDatabase creates the empty database cfg.DatabaseName through the
// server's administrative database.
func CreateDatabase(ctx context.Context, cfg Config) error {
	return execAdmin(ctx, cfg, fmt.Sprintf(`CREATE DATABASE %s`, pq.QuoteIdentifier(cfg.DatabaseName)))
}

// DropDatabase drops cfg.DatabaseName, terminating any sessions still attached to it.
func DropDatabase(ctx context.Context, cfg Config) error {
	return execAdmin(ctx, cfg, fmt.Sprintf(`DROP DATABASE IF EXISTS %s WITH (FORCE)`, pq.QuoteIdentifier(cfg.DatabaseName)))
}

func execAdmin(ctx context.Context, cfg Config, stmt string) error {
	conn, err := sqlx.ConnectContext(ctx, dialect, cfg.ConnectionStringWithoutDB())
	if err != nil {
		return fmt.Errorf("failed to connect to postgres: %w", err)
	}
	defer conn.Close()

	if _, err := conn.ExecContext(ctx, stmt); err != nil {
		return fmt.Errorf("failed to execute %q: %w", stmt, err)
	}
	return nil
}
