//go:build integration

package containers

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/jekabolt/grbpwr-newsletter/config"
	"github.com/jekabolt/grbpwr-newsletter/internal/store"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	postgresImage    = "postgres:16-alpine"
	postgresUser     = "postgres"
	postgresPassword = "password"

	// ExternalEnv switches the harness to the database described by the
	// regular config file and env vars instead of a container.
	ExternalEnv = "TEST_DATABASE_EXTERNAL"
)

var (
	pgMu    sync.Mutex
	pgCfg   *store.Config
	pgStart = provision
)

// Postgres returns the connection settings of a server shared by every test
// in the process. The container is started on first use and left to Ryuk
// for cleanup. A failed start is not cached, the next caller tries again.
// The returned DatabaseName must be replaced by the caller.
func Postgres(ctx context.Context) (store.Config, error) {
	pgMu.Lock()
	defer pgMu.Unlock()
	if pgCfg != nil {
		return *pgCfg, nil
	}
	c, err := pgStart(ctx)
	if err != nil {
		return store.Config{}, err
	}
	pgCfg = &c
	return c, nil
}

func provision(ctx context.Context) (store.Config, error) {
	if os.Getenv(ExternalEnv) != "" {
		return external()
	}
	return startPostgres(ctx)
}

func external() (store.Config, error) {
	c, err := config.LoadConfig(os.Getenv("TEST_CONFIG"))
	if err != nil {
		return store.Config{}, err
	}
	return c.DB, nil
}

func startPostgres(ctx context.Context) (store.Config, error) {
	container, err := tcpostgres.Run(ctx, postgresImage,
		tcpostgres.WithUsername(postgresUser),
		tcpostgres.WithPassword(postgresPassword),
		tcpostgres.WithDatabase("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		return store.Config{}, fmt.Errorf("failed to start postgres container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return store.Config{}, fmt.Errorf("failed to get postgres host: %w", err)
	}
	mapped, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		_ = container.Terminate(ctx)
		return store.Config{}, fmt.Errorf("failed to get postgres port: %w", err)
	}
	port, err := strconv.Atoi(mapped.Port())
	if err != nil {
		_ = container.Terminate(ctx)
		return store.Config{}, fmt.Errorf("bad postgres port %q: %w", mapped.Port(), err)
	}

	return store.Config{
		Host:               host,
		Port:               port,
		Username:           postgresUser,
		Password:           postgresPassword,
		DatabaseName:       "postgres",
		MaxOpenConnections: 5,
		MaxIdleConnections: 2,
	}, nil
}
