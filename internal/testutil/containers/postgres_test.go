//go:build integration

package containers

import (
	"context"
	"errors"
	"testing"

	"github.com/jekabolt/grbpwr-newsletter/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgres_RetriesAfterFailedStart(t *testing.T) {
	pgMu.Lock()
	savedCfg, savedStart := pgCfg, pgStart
	pgCfg = nil
	pgMu.Unlock()
	t.Cleanup(func() {
		pgMu.Lock()
		pgCfg, pgStart = savedCfg, savedStart
		pgMu.Unlock()
	})

	calls := 0
	pgStart = func(context.Context) (store.Config, error) {
		calls++
		if calls == 1 {
			return store.Config{}, errors.New("docker daemon not ready")
		}
		return store.Config{Host: "db", Port: 5432}, nil
	}

	_, err := Postgres(context.Background())
	require.Error(t, err)

	c, err := Postgres(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "db", c.Host)

	c, err = Postgres(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5432, c.Port)
	assert.Equal(t, 2, calls)
}
