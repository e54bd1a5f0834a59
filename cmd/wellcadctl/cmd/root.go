package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/timzifer/wellcad/config"
	"github.com/timzifer/wellcad/dispatch"
	"github.com/timzifer/wellcad/internal/logging"
	"github.com/timzifer/wellcad/telemetry"
	"github.com/timzifer/wellcad/wellcad"
)

var (
	// Global flags
	verbose bool
	progID  string
)

var errNoDocument = errors.New("host returned no document")

// connectHost opens the host application. Tests replace it with a fake.
var connectHost = func(progID string, opts ...dispatch.Option) (*wellcad.Application, error) {
	return wellcad.Connect(progID, opts...)
}

var rootCmd = &cobra.Command{
	Use:   "wellcadctl",
	Short: "Drive WellCAD borehole documents from the command line",
	Long: `Automates the WellCAD application: run batch processing jobs,
inspect borehole documents and export them to other formats.

Examples:
  wellcadctl run --config jobs.yaml                  # Run every job in jobs.yaml
  wellcadctl run --config jobs.cue --job clean-gamma # Run a single job
  wellcadctl info Well1.wcl                          # Show document summary
  wellcadctl export Well1.wcl Well1.las              # Export to LAS`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&progID, "prog-id", dispatch.DefaultProgID, "automation ProgID of the host application")
}

// setupLogger builds the command logger on the command's stderr. --verbose
// forces debug output, which includes every host call.
func setupLogger(cmd *cobra.Command, cfg config.LoggingConfig) (zerolog.Logger, func(), error) {
	if cfg.Format == "" {
		cfg.Format = "text"
	}
	if verbose {
		cfg.Level = "debug"
	}
	return logging.SetupWriter(cmd.ErrOrStderr(), cfg)
}

// openLoggedHost is openHost for commands without a configuration file.
func openLoggedHost(cmd *cobra.Command) (*wellcad.Application, func(), error) {
	logger, cleanup, err := setupLogger(cmd, config.LoggingConfig{})
	if err != nil {
		return nil, nil, err
	}
	app, err := openHost(config.HostConfig{}, dispatch.WithLogger(logging.Component(logger, "dispatch")))
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return app, cleanup, nil
}

func newTelemetryCollector(cfg config.TelemetryConfig) (telemetry.Collector, error) {
	if !cfg.Enabled {
		return telemetry.Noop(), nil
	}
	provider := strings.ToLower(strings.TrimSpace(cfg.Provider))
	switch provider {
	case "", "prometheus":
		collector, err := telemetry.NewPrometheusCollector(nil)
		if err != nil {
			return nil, err
		}
		return collector, nil
	default:
		return telemetry.Noop(), fmt.Errorf("unsupported telemetry provider %q", cfg.Provider)
	}
}

// openHost connects to the host and shows its window when requested.
func openHost(host config.HostConfig, opts ...dispatch.Option) (*wellcad.Application, error) {
	id := host.ProgID
	if id == "" {
		id = progID
	}
	app, err := connectHost(id, opts...)
	if err != nil {
		return nil, err
	}
	if host.Visible {
		if _, err := app.ShowWindow(); err != nil {
			app.Close()
			return nil, fmt.Errorf("show window: %w", err)
		}
	}
	return app, nil
}
