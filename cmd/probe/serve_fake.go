package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"log-admin-probe/internal/app"
	"log-admin-probe/internal/shared/configs"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func newServeFakeCmd(opts *rootOptions, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "serve-fake",
		Short: "Serve an in-memory admin API with seeded logs",
		Long: `serve-fake serves GET /admin/logs, DELETE /admin/logs/batch and GET /admin/logs/export
from memory, so the check can be tried without the real admin API. Faults configured
under fake_server.faults make it misbehave on purpose.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := configs.LoadConfig(opts.configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			application, err := app.New(cfg, io.Discard, stderr)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}
			return serveUntilSignal(application, stderr)
		},
	}
}

func serveUntilSignal(application *app.App, stderr io.Writer) error {
	serveErr := make(chan error, 1)
	go func() {
		if err := application.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-quit:
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := application.Shutdown(ctx); err != nil {
		fmt.Fprintf(stderr, "Server forced to shutdown: %v\n", err)
	}
	return nil
}
