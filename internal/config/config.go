// Package config holds the sortlab configuration: engine defaults, trace
// output location and logging. Loaded from a YAML file with sensible
// defaults when the file is absent, then overridden by environment
// variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all sortlab configuration.
type Config struct {
	// Engine defaults applied when a command does not override them.
	Engine EngineConfig `yaml:"engine"`

	// Trace output settings.
	Trace TraceConfig `yaml:"trace"`

	// Logging settings.
	Logging LoggingConfig `yaml:"logging"`
}

// EngineConfig mirrors the sorting engine options.
type EngineConfig struct {
	// MinRun is the minimum run length; 0 selects the automatic value.
	MinRun int `yaml:"min_run"`

	// GallopThreshold is the consecutive-win count before gallop mode.
	GallopThreshold int `yaml:"gallop_threshold"`

	// UseGalloping enables batched gallop copying during merges.
	UseGalloping bool `yaml:"use_galloping"`

	// UseNaturalRuns enables scanning for pre-sorted runs.
	UseNaturalRuns bool `yaml:"use_natural_runs"`
}

// TraceConfig configures where replay files land.
type TraceConfig struct {
	Dir string `yaml:"dir"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Engine: EngineConfig{
			MinRun:          0,
			GallopThreshold: 7,
			UseGalloping:    true,
			UseNaturalRuns:  true,
		},
		Trace: TraceConfig{
			Dir: "traces",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults; a malformed file is an error. Environment variables override
// file values either way.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes the configuration to a YAML file, creating parent
// directories as needed.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides lets the environment win over the file.
func (c *Config) applyEnvOverrides() {
	if dir := os.Getenv("SORTLAB_TRACE_DIR"); dir != "" {
		c.Trace.Dir = dir
	}
	if level := os.Getenv("SORTLAB_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if format := os.Getenv("SORTLAB_LOG_FORMAT"); format != "" {
		c.Logging.Format = format
	}
}

// Validate checks the fields a typo would most plausibly break. Engine
// numeric fields are deliberately not validated here: the engine falls
// back to automatic values on out-of-range inputs rather than failing.
func (c *Config) Validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging level %q (want debug, info, warn or error)", c.Logging.Level)
	}

	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("invalid logging format %q (want json or console)", c.Logging.Format)
	}

	if c.Trace.Dir == "" {
		return fmt.Errorf("trace directory must not be empty")
	}
	return nil
}
