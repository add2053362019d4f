package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"log-admin-probe/internal/app"
	"log-admin-probe/internal/shared/configs"

	"github.com/spf13/cobra"
)

const (
	exitOK      = 0
	exitError   = 1
	exitFailure = 2
)

// errCheckFailed is returned by the run command when --fail-on-error is set and a step failed.
var errCheckFailed = errors.New("log management check failed")

type rootOptions struct {
	configPath  string
	failOnError bool
}

// execute runs the CLI and returns the process exit code.
func execute(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	if args == nil {
		// cobra falls back to os.Args on nil
		args = []string{}
	}
	cmd.SetArgs(args)

	err := cmd.Execute()
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errCheckFailed):
		return exitFailure
	}
	fmt.Fprintln(stderr, err)
	return exitError
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "log-admin-probe",
		Short: "log-admin-probe checks the log management endpoints of an admin API",
		Long: `log-admin-probe lists logs, batch-deletes the first two, and exports the logs as CSV
and as JSON against a running admin API, printing one line per observation.

Configuration is read from an optional YAML file and PROBE_* environment variables,
for example PROBE_TARGET_BASE_URL=http://localhost:8080.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		// Without a subcommand the check runs once.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd.Context(), opts, stdout, stderr)
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to a YAML config file")
	rootCmd.Flags().BoolVar(&opts.failOnError, "fail-on-error", false, "exit with status 2 when any step fails")

	rootCmd.AddCommand(newRunCmd(opts, stdout, stderr))
	rootCmd.AddCommand(newServeFakeCmd(opts, stderr))
	return rootCmd
}

func newRunCmd(opts *rootOptions, stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the log management check once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd.Context(), opts, stdout, stderr)
		},
	}
	cmd.Flags().BoolVar(&opts.failOnError, "fail-on-error", false, "exit with status 2 when any step fails")
	return cmd
}

// runCheck runs the probe once. Step failures are printed, not returned, unless failOnError is set.
func runCheck(ctx context.Context, opts *rootOptions, stdout, stderr io.Writer) error {
	cfg, err := configs.LoadConfig(opts.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	application, err := app.New(cfg, stdout, stderr)
	if err != nil {
		return fmt.Errorf("failed to initialize app: %w", err)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	report := application.RunProbe(ctx)
	if opts.failOnError && report.HasFailure() {
		return errCheckFailed
	}
	return nil
}
