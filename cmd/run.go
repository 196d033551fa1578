package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"log/slog"

	"github.com/jekabolt/grbpwr-newsletter/app"
	"github.com/jekabolt/grbpwr-newsletter/config"
	"github.com/jekabolt/grbpwr-newsletter/internal/store"
	"github.com/jekabolt/grbpwr-newsletter/log"
	"github.com/spf13/cobra"
)

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("cannot load a config %v", err.Error())
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger := log.Init(cfg.Logger, os.Stdout)

	a, err := app.Build(ctx, cfg)
	if err != nil {
		return fmt.Errorf("cannot build the application: %w", err)
	}
	if err := a.Start(ctx); err != nil {
		return fmt.Errorf("cannot start the application: %w", err)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	select {
	case s := <-sigCh:
		logger.With("signal", s.String()).Warn("signal received, exiting")
		a.Stop(ctx)
		<-a.Done()
		logger.Info("application exited")
	case <-a.Done():
		logger.Error("application exited")
		a.Stop(ctx)
	}

	return nil
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("cannot load a config %v", err.Error())
	}
	if err := cfg.DB.Validate(); err != nil {
		return fmt.Errorf("invalid database config: %w", err)
	}
	logger := log.Init(cfg.Logger, os.Stdout)
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg.DB.Automigrate = false
	db, err := store.New(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer db.Close()

	if downSteps > 0 {
		if err := store.MigrateDown(ctx, db.Pool().DB, downSteps); err != nil {
			return err
		}
		logger.Info("migrations rolled back", slog.Int("steps", downSteps))
		return nil
	}
	if err := store.MigrateWithContext(ctx, db.Pool().DB); err != nil {
		return err
	}
	logger.Info("migrations applied")
	return nil
}
