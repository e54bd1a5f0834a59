package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration to support YAML unmarshalling from strings.
type Duration struct {
	time.Duration
}

// UnmarshalYAML parses duration strings like "5s" or "1m".
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	if value == nil {
		return fmt.Errorf("duration value node is nil")
	}
	var raw string
	if err := value.Decode(&raw); err != nil {
		return fmt.Errorf("decode duration: %w", err)
	}
	if raw == "" {
		d.Duration = 0
		return nil
	}
	dur, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", raw, err)
	}
	d.Duration = dur
	return nil
}

// MarshalYAML renders the duration as a string.
func (d Duration) MarshalYAML() (interface{}, error) {
	return d.Duration.String(), nil
}

// LogRef names a log either by zero based index or by title.
type LogRef struct {
	value any
}

// IndexRef refers to a log by zero based index.
func IndexRef(index int) LogRef { return LogRef{value: index} }

// NameRef refers to a log by title.
func NameRef(name string) LogRef { return LogRef{value: name} }

// UnmarshalYAML accepts an integer index or a title.
func (r *LogRef) UnmarshalYAML(value *yaml.Node) error {
	if value == nil || value.Kind != yaml.ScalarNode {
		return fmt.Errorf("log reference must be an index or a title")
	}
	if value.ShortTag() == "!!int" {
		var index int
		if err := value.Decode(&index); err != nil {
			return fmt.Errorf("decode log index: %w", err)
		}
		r.value = index
		return nil
	}
	r.value = value.Value
	return nil
}

// MarshalYAML renders the reference as written.
func (r LogRef) MarshalYAML() (interface{}, error) {
	return r.value, nil
}

// Value returns the index or title, or nil when the reference is unset.
func (r LogRef) Value() any { return r.value }

// IsZero reports whether no log was named.
func (r LogRef) IsZero() bool { return r.value == nil }

func (r LogRef) String() string {
	if r.IsZero() {
		return ""
	}
	return fmt.Sprint(r.value)
}

// HostConfig describes how the host application is reached.
type HostConfig struct {
	ProgID  string `yaml:"prog_id,omitempty"`
	Visible bool   `yaml:"visible,omitempty"`
	// Quit exits the host once all jobs finished.
	Quit bool `yaml:"quit,omitempty"`
}

// LokiConfig configures optional Loki integration for logging.
type LokiConfig struct {
	Enabled bool              `yaml:"enabled"`
	URL     string            `yaml:"url"`
	Labels  map[string]string `yaml:"labels"`
}

// LoggingConfig encapsulates runtime logging options.
type LoggingConfig struct {
	Level  string     `yaml:"level"`
	Format string     `yaml:"format,omitempty"`
	Loki   LokiConfig `yaml:"loki"`
}

// TelemetryConfig configures runtime telemetry exporters.
type TelemetryConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Provider string `yaml:"provider,omitempty"`
	Listen   string `yaml:"listen,omitempty"`
}

// StepConfig describes one step of a job.
type StepConfig struct {
	Name string `yaml:"name,omitempty"`
	Kind string `yaml:"kind"`
	// When is an expression evaluated against the document; the step is
	// skipped when it yields false.
	When string `yaml:"when,omitempty"`
	Log  LogRef `yaml:"log,omitempty"`

	// Process names the host process run by "process" steps.
	Process string    `yaml:"process,omitempty"`
	Prompt  bool      `yaml:"prompt,omitempty"`
	Config  string    `yaml:"config,omitempty"`
	Params  yaml.Node `yaml:"params,omitempty"`

	Filter   string `yaml:"filter,omitempty"`
	Width    int    `yaml:"width,omitempty"`
	Circular bool   `yaml:"circular,omitempty"`
	Unit     string `yaml:"unit,omitempty"`

	Shift  float64  `yaml:"shift,omitempty"`
	Top    *float64 `yaml:"top,omitempty"`
	Bottom *float64 `yaml:"bottom,omitempty"`

	Path    string `yaml:"path,omitempty"`
	LogFile string `yaml:"log_file,omitempty"`

	Feature  string `yaml:"feature,omitempty"`
	Enable   bool   `yaml:"enable,omitempty"`
	Password string `yaml:"password,omitempty"`
}

// Label returns the step name, or its kind when unnamed.
func (s StepConfig) Label() string {
	if s.Name != "" {
		return s.Name
	}
	return s.Kind
}

// JobConfig describes a batch job run against one borehole document.
type JobConfig struct {
	Name string `yaml:"name"`
	// Open is the WCL document processed by the job.
	Open string `yaml:"open,omitempty"`
	// Import lists data files loaded into a new document instead.
	Import       []string `yaml:"import,omitempty"`
	ImportConfig string   `yaml:"import_config,omitempty"`
	// Template lays out a new document when neither Open nor Import is set.
	Template string       `yaml:"template,omitempty"`
	Timeout  Duration     `yaml:"timeout,omitempty"`
	KeepOpen bool         `yaml:"keep_open,omitempty"`
	Save     bool         `yaml:"save,omitempty"`
	Steps    []StepConfig `yaml:"steps"`
}

// Config is the root configuration structure.
type Config struct {
	Host      HostConfig      `yaml:"host"`
	Logging   LoggingConfig   `yaml:"logging"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Jobs      []JobConfig     `yaml:"jobs"`
	Source    string          `yaml:"-"`
}

// Load reads, validates and decodes the configuration file at path. Files
// ending in .cue are evaluated as CUE, all others are read as YAML.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path must not be empty")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve config path: %w", err)
	}
	raw, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", abs, err)
	}

	var document []byte
	if strings.EqualFold(filepath.Ext(abs), ".cue") {
		document, err = evaluateCUE(abs, raw)
	} else {
		document, err = validateYAML(abs, raw)
	}
	if err != nil {
		return nil, err
	}

	cfg, err := Parse(document)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", abs, err)
	}
	cfg.Source = abs
	return cfg, nil
}

// Parse decodes a YAML document without schema validation.
func Parse(raw []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks constraints the schema cannot express.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	seen := make(map[string]struct{}, len(c.Jobs))
	for i, job := range c.Jobs {
		name := strings.TrimSpace(job.Name)
		if name == "" {
			return fmt.Errorf("job %d: name is required", i)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("job %s: duplicate name", name)
		}
		seen[name] = struct{}{}
		if job.Open != "" && len(job.Import) > 0 {
			return fmt.Errorf("job %s: open and import are mutually exclusive", name)
		}
		for j, step := range job.Steps {
			if strings.TrimSpace(step.Kind) == "" {
				return fmt.Errorf("job %s: step %d: kind is required", name, j)
			}
		}
	}
	return nil
}

// Job returns the job called name.
func (c *Config) Job(name string) (JobConfig, bool) {
	if c == nil {
		return JobConfig{}, false
	}
	for _, job := range c.Jobs {
		if job.Name == name {
			return job, true
		}
	}
	return JobConfig{}, false
}

// JobTimeout returns the deadline of a job, zero for none.
func (j JobConfig) JobTimeout() time.Duration {
	if j.Timeout.Duration <= 0 {
		return 0
	}
	return j.Timeout.Duration
}
