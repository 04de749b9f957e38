// Package config provides configuration loading for the ped command.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ped-tools/ped-go/pkg/chart"
	"gopkg.in/yaml.v3"
)

// DefaultFile is looked up in the working directory when no --config is given.
const DefaultFile = "ped.yaml"

// Config represents the complete ped configuration.
type Config struct {
	Chart   ChartConfig   `yaml:"chart"`
	Trace   TraceConfig   `yaml:"trace"`
	Metrics MetricsConfig `yaml:"metrics"`
	Log     LogConfig     `yaml:"log"`
}

// ChartConfig configures SVG output.
type ChartConfig struct {
	// Dir receives charts written under their default file name.
	Dir string `yaml:"dir"`
	// Width and Height of the SVG document in pixels.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	// Grid draws decade and sub-decade gridlines.
	Grid bool `yaml:"grid"`
	// Samples per iso-product curve.
	Samples int `yaml:"samples"`
}

// TraceConfig configures the CBOR trace log.
type TraceConfig struct {
	// Path of the .plog file (empty = tracing disabled)
	Path string `yaml:"path"`
}

// MetricsConfig configures the Prometheus textfile export.
type MetricsConfig struct {
	// Textfile is written after every command (empty = disabled)
	Textfile string `yaml:"textfile"`
}

// LogConfig configures operational logging.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`
	// Format is text or json.
	Format string `yaml:"format"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	opts := chart.DefaultOptions()
	return &Config{
		Chart: ChartConfig{
			Dir:     ".",
			Width:   opts.Width,
			Height:  opts.Height,
			Grid:    opts.Grid,
			Samples: opts.Samples,
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Chart.Width <= 0 || c.Chart.Height <= 0 {
		return fmt.Errorf("chart.width and chart.height must be positive")
	}
	if c.Chart.Samples < 2 {
		return fmt.Errorf("chart.samples must be at least 2")
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}
	if c.Trace.Path != "" && filepath.Ext(c.Trace.Path) == "" {
		return fmt.Errorf("trace.path %q needs a file extension (e.g. .plog)", c.Trace.Path)
	}
	return nil
}

// ChartOptions converts the chart section to renderer options.
func (c ChartConfig) ChartOptions() chart.Options {
	return chart.Options{
		Width:   c.Width,
		Height:  c.Height,
		Grid:    c.Grid,
		Samples: c.Samples,
	}
}

// ParseLevel converts a level name to an slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("log.level must be debug, info, warn or error, got %q", s)
	}
	return level, nil
}

// NewLogger builds an slog.Logger writing to w. The configuration must have
// passed Validate.
func (l LogConfig) NewLogger(w io.Writer) *slog.Logger {
	level, err := ParseLevel(l.Level)
	if err != nil {
		level = slog.LevelWarn
	}
	opts := &slog.HandlerOptions{Level: level}
	if l.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// LoadFromFile loads configuration from a YAML file on top of the defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// Load returns the configuration at path. With an empty path it reads
// DefaultFile from the working directory when present and falls back to the
// defaults otherwise. The result is not validated so callers can apply
// overrides first.
func Load(path string) (*Config, error) {
	var (
		config *Config
		err    error
	)
	switch {
	case path != "":
		config, err = LoadFromFile(path)
	default:
		config, err = LoadFromFile(DefaultFile)
		if errors.Is(err, fs.ErrNotExist) {
			config, err = DefaultConfig(), nil
		}
	}
	if err != nil {
		return nil, err
	}
	return config, nil
}

// SaveToFile saves configuration to a YAML file.
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
