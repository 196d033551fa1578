//go:build integration

package testapp

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jekabolt/grbpwr-newsletter/app"
	"github.com/jekabolt/grbpwr-newsletter/config"
	httpapi "github.com/jekabolt/grbpwr-newsletter/internal/api/http"
	gerr "github.com/jekabolt/grbpwr-newsletter/internal/errors"
	"github.com/jekabolt/grbpwr-newsletter/internal/mail"
	"github.com/jekabolt/grbpwr-newsletter/internal/store"
	"github.com/jekabolt/grbpwr-newsletter/internal/testutil/containers"
	"github.com/jekabolt/grbpwr-newsletter/log"
	"github.com/stretchr/testify/require"
)

// TestApp is a running application bound to its own freshly migrated database.
type TestApp struct {
	Address      string
	DatabaseName string
	Store        *store.PostgresStore
	Client       *http.Client
}

// SpawnApp is Spawn for tests that can't continue without an app.
func SpawnApp(t *testing.T) *TestApp {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	ta, err := Spawn(ctx, t)
	require.NoError(t, err)
	return ta
}

// Spawn creates a uniquely named database, migrates it and starts an app on
// an ephemeral port. Everything is torn down in t.Cleanup.
func Spawn(ctx context.Context, t testing.TB) (*TestApp, error) {
	t.Helper()
	initLogging()

	base, err := containers.Postgres(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", gerr.ErrHarness, err)
	}

	dbCfg := base
	dbCfg.DatabaseName = "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	dbCfg.Automigrate = true
	if err := store.CreateDatabase(ctx, dbCfg); err != nil {
		return nil, fmt.Errorf("%w: create database: %w", gerr.ErrHarness, err)
	}
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := store.DropDatabase(ctx, dbCfg); err != nil {
			t.Logf("drop database %s: %v", dbCfg.DatabaseName, err)
		}
	})

	st, err := store.New(ctx, dbCfg)
	if err != nil {
		return nil, fmt.Errorf("%w: migrate database: %w", gerr.ErrHarness, err)
	}
	t.Cleanup(st.Close)
	if err := st.Ping(ctx); err != nil {
		return nil, fmt.Errorf("%w: ping database: %w", gerr.ErrHarness, err)
	}

	cfg := &config.Config{
		DB: dbCfg,
		HTTP: httpapi.Config{
			Address:         "127.0.0.1",
			Port:            "0",
			ShutdownTimeout: 5 * time.Second,
		},
		Mailer: mail.Config{SendWelcome: false},
	}
	// the migrated schema is already in place
	cfg.DB.Automigrate = false

	a, err := app.Build(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", gerr.ErrHarness, err)
	}
	if err := a.Start(ctx); err != nil {
		a.Stop(ctx)
		return nil, fmt.Errorf("%w: %w", gerr.ErrHarness, err)
	}
	t.Cleanup(func() {
		a.Stop(context.Background())
		<-a.Done()
	})

	return &TestApp{
		Address:      a.Addr(),
		DatabaseName: dbCfg.DatabaseName,
		Store:        st,
		Client:       &http.Client{Timeout: 10 * time.Second},
	}, nil
}

// PostSubscriptions submits body as a urlencoded form.
func (ta *TestApp) PostSubscriptions(ctx context.Context, body string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, ta.Address+"/subscriptions", strings.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return ta.Client.Do(req)
}

// Subscribe is PostSubscriptions with an encoded name and email.
func (ta *TestApp) Subscribe(ctx context.Context, name, email string) (*http.Response, error) {
	return ta.PostSubscriptions(ctx, url.Values{"name": {name}, "email": {email}}.Encode())
}

// initLogging sends logs to stdout when TEST_LOG is set and drops them otherwise.
func initLogging() {
	var w io.Writer = io.Discard
	if os.Getenv("TEST_LOG") != "" {
		w = os.Stdout
	}
	log.Init(log.Config{}, w)
}
