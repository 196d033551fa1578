package app

import (
	"context"
	"fmt"
	"net/http"

	"log/slog"

	"github.com/jekabolt/grbpwr-newsletter/config"
	httpapi "github.com/jekabolt/grbpwr-newsletter/internal/api/http"
	"github.com/jekabolt/grbpwr-newsletter/internal/apisrv/frontend"
	"github.com/jekabolt/grbpwr-newsletter/internal/dependency"
	gerr "github.com/jekabolt/grbpwr-newsletter/internal/errors"
	"github.com/jekabolt/grbpwr-newsletter/internal/mail"
	"github.com/jekabolt/grbpwr-newsletter/internal/metrics"
	"github.com/jekabolt/grbpwr-newsletter/internal/store"
)

// App is the main application
type App struct {
	hs      *httpapi.Server
	db      *store.PostgresStore
	c       *config.Config
	handler http.Handler
	done    chan struct{}
}

// Build validates c, opens the pool and binds the listener. The returned app
// is ready to Start and its Addr is known before any request is served.
func Build(ctx context.Context, c *config.Config) (*App, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%w: invalid config: %w", gerr.ErrStartup, err)
	}

	db, err := store.New(ctx, c.DB)
	if err != nil {
		return nil, fmt.Errorf("%w: couldn't open database: %w", gerr.ErrStartup, err)
	}

	var mailer dependency.Mailer
	if c.Mailer.SendWelcome {
		m, err := mail.New(&c.Mailer)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("%w: couldn't create mailer: %w", gerr.ErrStartup, err)
		}
		mailer = m
	}

	mt := metrics.New()
	frontendS := frontend.New(db, mailer, mt, c.Mailer.SendWelcome)

	hs := httpapi.New(&c.HTTP)
	if err := hs.Listen(); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %w", gerr.ErrStartup, err)
	}

	return &App{
		hs:      hs,
		db:      db,
		c:       c,
		handler: httpapi.NewRouter(&c.HTTP, frontendS, mt, slog.Default()),
		done:    make(chan struct{}),
	}, nil
}

// Addr returns the base URL the app listens on.
func (a *App) Addr() string {
	return a.hs.Addr()
}

// Port returns the bound port.
func (a *App) Port() int {
	return a.hs.Port()
}

// Store exposes the pool the app writes to.
func (a *App) Store() *store.PostgresStore {
	return a.db
}

// Start starts serving requests
func (a *App) Start(ctx context.Context) error {
	slog.Default().InfoContext(ctx, "starting newsletter", slog.String("addr", a.Addr()))
	if err := a.hs.Start(ctx, a.handler); err != nil {
		return fmt.Errorf("%w: cannot start http server: %w", gerr.ErrStartup, err)
	}
	go func() {
		<-a.hs.Done()
		close(a.done)
	}()
	return nil
}

// Stop drains the http server and closes the pool.
func (a *App) Stop(ctx context.Context) {
	if err := a.hs.Stop(ctx); err != nil {
		slog.Default().ErrorContext(ctx, "http server shutdown",
			slog.String("err", err.Error()),
		)
	}
	a.db.Close()
}

// Done returns a channel that is closed after the http server has exited
func (a *App) Done() <-chan struct{} {
	return a.done
}
