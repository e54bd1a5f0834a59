// Package logging builds the zerolog loggers used by wellcadctl.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/grafana/loki-client-go/loki"
	"github.com/prometheus/common/model"
	"github.com/rs/zerolog"

	"github.com/timzifer/wellcad/config"
)

const defaultApp = "wellcadctl"

// Setup creates a logger writing to stderr, so command output on stdout stays
// parseable.
func Setup(cfg config.LoggingConfig) (zerolog.Logger, func(), error) {
	return SetupWriter(os.Stderr, cfg)
}

// SetupWriter is Setup with console output going to out. The returned cleanup
// flushes and stops the Loki client when one is configured.
func SetupWriter(out io.Writer, cfg config.LoggingConfig) (zerolog.Logger, func(), error) {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return zerolog.Logger{}, nil, err
	}
	writers := []io.Writer{consoleWriter(out, cfg.Format)}
	cleanup := func() {}
	if cfg.Loki.Enabled {
		push, stop, err := newLokiWriter(cfg.Loki)
		if err != nil {
			return zerolog.Logger{}, nil, err
		}
		writers = append(writers, push)
		cleanup = stop
	}
	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(level).
		With().Timestamp().Logger()
	return logger, cleanup, nil
}

// Component tags every event of logger with the emitting component.
func Component(logger zerolog.Logger, name string) zerolog.Logger {
	return logger.With().Str("component", name).Logger()
}

func parseLevel(raw string) (zerolog.Level, error) {
	if strings.TrimSpace(raw) == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(raw)))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("parse log level: %w", err)
	}
	return level, nil
}

func consoleWriter(out io.Writer, format string) io.Writer {
	switch strings.ToLower(format) {
	case "text", "console":
		return zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	default:
		return out
	}
}

func newLokiWriter(cfg config.LokiConfig) (*lokiWriter, func(), error) {
	if cfg.URL == "" {
		return nil, nil, fmt.Errorf("loki url is required")
	}
	clientCfg, err := loki.NewDefaultConfig(cfg.URL)
	if err != nil {
		return nil, nil, fmt.Errorf("prepare loki config: %w", err)
	}
	client, err := loki.New(clientCfg)
	if err != nil {
		return nil, nil, fmt.Errorf("create loki client: %w", err)
	}
	w := &lokiWriter{push: client.Handle, labels: lokiLabels(cfg.Labels)}
	return w, client.Stop, nil
}

func lokiLabels(values map[string]string) model.LabelSet {
	labels := make(model.LabelSet, len(values)+1)
	for k, v := range values {
		labels[model.LabelName(k)] = model.LabelValue(v)
	}
	if _, ok := labels["app"]; !ok {
		labels["app"] = defaultApp
	}
	return labels
}

// lokiWriter pushes JSON log lines to Loki with the static labels plus the
// event level.
type lokiWriter struct {
	push   func(model.LabelSet, time.Time, string) error
	labels model.LabelSet
}

func (l *lokiWriter) Write(p []byte) (int, error) {
	return l.WriteLevel(zerolog.NoLevel, p)
}

func (l *lokiWriter) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	entry := strings.TrimSpace(string(p))
	if entry == "" {
		return len(p), nil
	}
	labels := l.labels
	if level != zerolog.NoLevel {
		labels = l.labels.Merge(model.LabelSet{"level": model.LabelValue(level.String())})
	}
	return len(p), l.push(labels, time.Now(), entry)
}
