package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/timzifer/wellcad/config"
	"github.com/timzifer/wellcad/dispatch"
	"github.com/timzifer/wellcad/internal/logging"
	"github.com/timzifer/wellcad/internal/reload"
	"github.com/timzifer/wellcad/jobs"
	"github.com/timzifer/wellcad/telemetry"
)

var (
	runConfigPath string
	runJob        string
	metricsListen string
	checkOnly     bool
	watchInterval time.Duration
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run batch jobs from a configuration file",
	Long: `Runs the jobs declared in a YAML or CUE configuration file in order.
The first failing step aborts its job and no further jobs are started.

Examples:
  wellcadctl run --config jobs.yaml
  wellcadctl run --config jobs.yaml --metrics-listen :9100
  wellcadctl run --config jobs.cue --check
  wellcadctl run --config jobs.yaml --watch 2s`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(runConfigPath)
		if err != nil {
			return err
		}
		selected, err := selectJobs(cfg)
		if err != nil {
			return err
		}
		if checkOnly {
			if err := jobs.Validate(selected); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d job(s) valid\n", len(selected))
			return nil
		}

		logger, cleanup, err := setupLogger(cmd, cfg.Logging)
		if err != nil {
			return err
		}
		defer cleanup()

		telemetryCfg := cfg.Telemetry
		if metricsListen != "" {
			telemetryCfg.Enabled = true
			telemetryCfg.Listen = metricsListen
		}
		collector, err := newTelemetryCollector(telemetryCfg)
		if err != nil {
			logger.Warn().Err(err).Msg("telemetry disabled")
			collector = telemetry.Noop()
		}
		if telemetryCfg.Enabled && telemetryCfg.Listen != "" {
			stop := serveMetrics(telemetryCfg.Listen, logger)
			defer stop()
		}

		ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		app, err := openHost(cfg.Host, dispatch.WithLogger(logging.Component(logger, "dispatch")), dispatch.WithTelemetry(collector))
		if err != nil {
			return err
		}
		defer app.Close()

		runner, err := jobs.NewRunner(app, jobs.WithLogger(logging.Component(logger, "jobs")), jobs.WithTelemetry(collector))
		if err != nil {
			return err
		}
		results, runErr := runner.RunAll(ctx, selected)
		for _, res := range results {
			printResult(cmd, res)
		}
		if watchInterval > 0 {
			if runErr != nil {
				logger.Error().Err(runErr).Msg("job run failed")
			}
			runErr = watchAndRerun(ctx, cmd, runner, cfg, logger)
		}
		if cfg.Host.Quit {
			if err := app.Quit(false); err != nil {
				logger.Warn().Err(err).Msg("quit host")
			}
		}
		return runErr
	},
}

func selectJobs(cfg *config.Config) ([]config.JobConfig, error) {
	if runJob == "" {
		return cfg.Jobs, nil
	}
	job, ok := cfg.Job(runJob)
	if !ok {
		return nil, fmt.Errorf("job %q not found in %s", runJob, cfg.Source)
	}
	return []config.JobConfig{job}, nil
}

// watchAndRerun polls the configuration and the files it references and runs
// the selected jobs again after every change until ctx is done.
func watchAndRerun(ctx context.Context, cmd *cobra.Command, runner *jobs.Runner, cfg *config.Config, logger zerolog.Logger) error {
	watcher, err := reload.NewWatcher(runConfigPath, cfg)
	if err != nil {
		return fmt.Errorf("create config watcher: %w", err)
	}
	logger.Info().Strs("files", watcher.Files()).Dur("interval", watchInterval).Msg("watching for changes")

	ticker := time.NewTicker(watchInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
		changes := watcher.Check()
		if len(changes) == 0 {
			continue
		}
		logger.Info().Strs("changed", changes).Msg("configuration changed")
		newCfg, err := config.Load(runConfigPath)
		if err != nil {
			logger.Error().Err(err).Msg("failed to reload configuration")
			_ = watcher.Update(runConfigPath, cfg)
			continue
		}
		if err := watcher.Update(runConfigPath, newCfg); err != nil {
			logger.Error().Err(err).Msg("failed to update watcher state")
		}
		selected, err := selectJobs(newCfg)
		if err != nil {
			logger.Error().Err(err).Msg("reloaded configuration invalid")
			continue
		}
		cfg = newCfg
		results, err := runner.RunAll(ctx, selected)
		for _, res := range results {
			printResult(cmd, res)
		}
		if err != nil {
			logger.Error().Err(err).Msg("job run failed")
		}
	}
}

func printResult(cmd *cobra.Command, res jobs.Result) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "job %s\n", res.Job)
	for _, step := range res.Steps {
		switch {
		case step.Skipped:
			fmt.Fprintf(out, "  %-24s skipped\n", step.Name)
		case step.Log != "":
			fmt.Fprintf(out, "  %-24s %8s  -> %s\n", step.Name, step.Elapsed.Round(time.Millisecond), step.Log)
		default:
			fmt.Fprintf(out, "  %-24s %8s\n", step.Name, step.Elapsed.Round(time.Millisecond))
		}
	}
}

// serveMetrics exposes the default Prometheus registry on addr.
func serveMetrics(addr string, logger zerolog.Logger) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Str("listen", addr).Msg("metrics endpoint stopped")
		}
	}()
	logger.Info().Str("listen", addr).Msg("metrics endpoint started")
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}

func init() {
	runCmd.Flags().StringVarP(&runConfigPath, "config", "c", "jobs.yaml", "path to the job configuration (.yaml or .cue)")
	runCmd.Flags().StringVar(&runJob, "job", "", "run only the named job")
	runCmd.Flags().StringVar(&metricsListen, "metrics-listen", "", "serve Prometheus metrics on this address")
	runCmd.Flags().BoolVar(&checkOnly, "check", false, "validate the configuration and exit")
	runCmd.Flags().DurationVar(&watchInterval, "watch", 0, "re-run the jobs whenever the configuration or its files change, polling at this interval")
	rootCmd.AddCommand(runCmd)
}
