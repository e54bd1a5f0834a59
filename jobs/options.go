package jobs

import (
	"github.com/rs/zerolog"

	"github.com/timzifer/wellcad/telemetry"
)

// Option configures a Runner.
type Option func(*settings) error

type settings struct {
	logger    zerolog.Logger
	collector telemetry.Collector
}

// WithLogger provides a custom logger instance for the runner.
func WithLogger(logger zerolog.Logger) Option {
	return func(cfg *settings) error {
		if cfg == nil {
			return nil
		}
		cfg.logger = logger
		return nil
	}
}

// WithTelemetry records the outcome of every step with collector.
func WithTelemetry(collector telemetry.Collector) Option {
	return func(cfg *settings) error {
		if cfg == nil {
			return nil
		}
		if collector == nil {
			collector = telemetry.Noop()
		}
		cfg.collector = collector
		return nil
	}
}
