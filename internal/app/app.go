package app

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"log-admin-probe/internal/adminclient"
	"log-admin-probe/internal/artifacts"
	internalhttp "log-admin-probe/internal/http"
	"log-admin-probe/internal/probes"
	"log-admin-probe/internal/shared/configs"
	"log-admin-probe/internal/shared/filestorages"
	"log-admin-probe/internal/shared/loggers"
	"log-admin-probe/internal/shared/metrics"
	"log-admin-probe/internal/stores"
)

const appName = "log-admin-probe"

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger

	probe  probes.LogManagementProbe
	server *http.Server
}

// New creates and initializes a new App instance. Progress lines of a probe run go to stdout
// and structured logs go to stderr.
func New(config *configs.Config, stdout, stderr io.Writer) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level, stderr)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, appName).
		Logger()

	// Initialize export artifacts
	var exportStore artifacts.ExportStore = artifacts.NopExportStore{}
	if config.Artifacts.Dir != "" {
		fileStorage, err := filestorages.NewFileStorage(config.Artifacts.Dir)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize artifacts storage: %w", err)
		}
		exportStore = artifacts.NewExportStore(fileStorage)
	}

	// Initialize probe
	client := adminclient.New(config.Target.BaseURL,
		adminclient.WithTimeout(time.Duration(config.Target.Timeout)*time.Second),
		adminclient.WithUserAgent(config.Target.UserAgent),
	)
	probe := probes.NewLogManagementProbe(client, exportStore, stdout, probes.Options{
		BaseURL:              config.Target.BaseURL,
		StrictCSVContentType: config.Export.StrictCSVContentType,
	})

	// Initialize in-memory admin server
	store := stores.NewRequestLogStore(stores.SeedRequestLogs(config.FakeServer.SeedCount, time.Now()))
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(store, faultsFromConfig(config.FakeServer.Faults), httpLogger)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.FakeServer.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.FakeServer.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.FakeServer.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.FakeServer.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.FakeServer.IdleTimeout) * time.Second,
	}

	return &App{
		config:    config,
		appLogger: appLogger,
		probe:     probe,
		server:    server,
	}, nil
}

func faultsFromConfig(c configs.FakeFaultsConfig) internalhttp.Faults {
	return internalhttp.Faults{
		LoggerUnavailable:   c.LoggerUnavailable,
		ApplicationError:    c.ApplicationError,
		CSVContentType:      c.CSVContentType,
		MalformedJSONExport: c.MalformedJSONExport,
	}
}

// RunProbe checks the admin API once and returns the report. When a metrics textfile is
// configured it is written after the run; a write failure is only logged.
func (app *App) RunProbe(ctx context.Context) *probes.Report {
	probeLogger := app.appLogger.With().Str(loggers.FieldComponent, "probe").Logger()
	report := app.probe.Run(probeLogger.WithContext(ctx))

	if path := app.config.Metrics.Textfile; path != "" {
		if err := metrics.WriteTextfile(path); err != nil {
			app.appLogger.Warn().Err(err).Str("path", path).Msg("failed to write metrics textfile")
		}
	}
	return report
}

// Start starts the in-memory admin server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting in-memory admin API on port %d (log_level=%s, seed_count=%d)",
			app.config.FakeServer.Port,
			app.config.Log.Level,
			app.config.FakeServer.SeedCount)

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the in-memory admin server.
func (app *App) Shutdown(ctx context.Context) error {
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")
	return nil
}
