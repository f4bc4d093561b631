package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"shopdelivery/cmd"
	httpadapter "shopdelivery/internal/adapters/in/http"
	"shopdelivery/internal/adapters/out/postgres"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand() *cobra.Command {
	var migrate bool

	command := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the background jobs",
		RunE: func(c *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(c.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, migrate)
		},
	}
	command.Flags().BoolVar(&migrate, "migrate", false, "update the schema before serving")

	return command
}

// serve runs the HTTP server and the job manager until ctx is cancelled, then gives
// in-flight requests shutdownTimeout to finish.
func serve(ctx context.Context, migrate bool) error {
	configs, err := cmd.LoadConfig(envFile)
	if err != nil {
		return err
	}
	logger := newLogger(configs.LogLevel)

	db, err := openDatabase(configs)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	if migrate {
		if err = postgres.Migrate(db.WithContext(ctx)); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	app, err := cmd.NewCompositionRoot(ctx, configs, db, logger)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := app.Close(); closeErr != nil {
			logger.Error("Failed to release adapters", "error", closeErr)
		}
	}()

	server := httpadapter.NewServer(app.HTTPHandlers(), app.Catalog(), configs.MessageLocale, logger)
	e, err := httpadapter.NewRouter(server, logger)
	if err != nil {
		return err
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.InfoContext(gctx, "HTTP server listening", "port", configs.HTTPPort)
		if startErr := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); !errors.Is(startErr, http.ErrServerClosed) {
			return startErr
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down HTTP server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
