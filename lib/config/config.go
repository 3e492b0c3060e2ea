// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvironmentVariable names the variable [Load] reads the config path
// from.
const EnvironmentVariable = "NETLOG_CONFIG"

// Environment selects which override section applies.
type Environment string

const (
	// Development is for interactive use on a workstation.
	Development Environment = "development"
	// Production is for unattended capture conversion.
	Production Environment = "production"
)

// Config is the netlog configuration.
type Config struct {
	// Environment selects the override section (development, production).
	Environment Environment `yaml:"environment"`

	// Capture configures packet replay into the event registry.
	Capture CaptureConfig `yaml:"capture"`

	// Paths configures file locations.
	Paths PathsConfig `yaml:"paths"`

	// Log configures diagnostic logging.
	Log LogConfig `yaml:"log"`

	// Per-environment overrides, applied after the file is loaded.
	Development *ConfigOverrides `yaml:"development,omitempty"`
	Production  *ConfigOverrides `yaml:"production,omitempty"`
}

// ConfigOverrides contains fields that can be overridden per environment.
type ConfigOverrides struct {
	Capture *CaptureConfig `yaml:"capture,omitempty"`
	Paths   *PathsConfig   `yaml:"paths,omitempty"`
	Log     *LogConfig     `yaml:"log,omitempty"`
}

// CaptureConfig configures how captures are turned into events.
type CaptureConfig struct {
	// LogLevel is the initial capture verbosity: all, all_but_bytes,
	// or basic.
	// Default: all_but_bytes
	LogLevel string `yaml:"log_level"`

	// Backfill is the number of packets delivered at start-up as one
	// passively captured batch.
	// Default: 0
	Backfill int `yaml:"backfill"`

	// BatchSize is the number of packets per live batch.
	// Default: 16
	BatchSize int `yaml:"batch_size"`

	// Interval is the time between live batches, as a Go duration.
	// Default: 250ms
	Interval string `yaml:"interval"`
}

// PathsConfig configures file locations.
type PathsConfig struct {
	// State is the directory saved logs are written to when an output
	// path is relative.
	State string `yaml:"state"`
}

// LogConfig configures diagnostic logging.
type LogConfig struct {
	// Level is the minimum slog level: debug, info, warn, or error.
	// Default: warn
	Level string `yaml:"level"`

	// Output is an optional file that receives every record as JSON,
	// in addition to the status bar.
	Output string `yaml:"output"`
}

var captureLogLevels = []string{"all", "all_but_bytes", "basic"}

// Default returns the configuration used when no file is given, and
// the base that a loaded file is merged into.
func Default() *Config {
	homeDir, _ := os.UserHomeDir()
	return &Config{
		Environment: Development,
		Capture: CaptureConfig{
			LogLevel:  "all_but_bytes",
			BatchSize: 16,
			Interval:  "250ms",
		},
		Paths: PathsConfig{
			State: filepath.Join(homeDir, ".cache", "netlog"),
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Load loads configuration from the file named by NETLOG_CONFIG. It
// fails if the variable is unset.
func Load() (*Config, error) {
	configPath := os.Getenv(EnvironmentVariable)
	if configPath == "" {
		return nil, fmt.Errorf("%s environment variable not set; "+
			"set it to the path of your netlog.yaml config file, or use --config flag", EnvironmentVariable)
	}
	return LoadFile(configPath)
}

// LoadFile loads configuration from path, merged over [Default].
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	cfg.applyEnvironmentOverrides()
	cfg.expandVariables()
	return cfg, nil
}

func (c *Config) applyEnvironmentOverrides() {
	var overrides *ConfigOverrides
	switch c.Environment {
	case Development:
		overrides = c.Development
	case Production:
		overrides = c.Production
	}
	if overrides == nil {
		return
	}

	if capture := overrides.Capture; capture != nil {
		if capture.LogLevel != "" {
			c.Capture.LogLevel = capture.LogLevel
		}
		if capture.Backfill != 0 {
			c.Capture.Backfill = capture.Backfill
		}
		if capture.BatchSize != 0 {
			c.Capture.BatchSize = capture.BatchSize
		}
		if capture.Interval != "" {
			c.Capture.Interval = capture.Interval
		}
	}
	if overrides.Paths != nil && overrides.Paths.State != "" {
		c.Paths.State = overrides.Paths.State
	}
	if logConfig := overrides.Log; logConfig != nil {
		if logConfig.Level != "" {
			c.Log.Level = logConfig.Level
		}
		if logConfig.Output != "" {
			c.Log.Output = logConfig.Output
		}
	}
}

func (c *Config) expandVariables() {
	vars := map[string]string{
		"HOME": os.Getenv("HOME"),
	}
	c.Paths.State = expandVars(c.Paths.State, vars)
	vars["NETLOG_STATE"] = c.Paths.State
	c.Log.Output = expandVars(c.Log.Output, vars)
}

var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

// expandVars expands ${VAR} and ${VAR:-default}. Names in vars win over
// the process environment.
func expandVars(s string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		name, defaultValue := parts[1], parts[2]
		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

// Validate checks the configuration, reporting every problem found.
func (c *Config) Validate() error {
	var errs []error

	if c.Environment != Development && c.Environment != Production {
		errs = append(errs, fmt.Errorf("invalid environment: %s", c.Environment))
	}
	if !slices.Contains(captureLogLevels, c.Capture.LogLevel) {
		errs = append(errs, fmt.Errorf("capture.log_level must be one of: %v", captureLogLevels))
	}
	if c.Capture.Backfill < 0 {
		errs = append(errs, fmt.Errorf("capture.backfill must not be negative"))
	}
	if c.Capture.BatchSize <= 0 {
		errs = append(errs, fmt.Errorf("capture.batch_size must be positive"))
	}
	if interval, err := time.ParseDuration(c.Capture.Interval); err != nil {
		errs = append(errs, fmt.Errorf("capture.interval: %w", err))
	} else if interval <= 0 {
		errs = append(errs, fmt.Errorf("capture.interval must be positive"))
	}
	if _, err := c.SlogLevel(); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}

	return errors.Join(errs...)
}

// CaptureInterval returns capture.interval as a duration. Call after
// [Config.Validate] succeeds.
func (c *Config) CaptureInterval() time.Duration {
	interval, _ := time.ParseDuration(c.Capture.Interval)
	return interval
}

// SlogLevel parses log.level.
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(c.Log.Level))
	return level, err
}

// StatePath resolves a bare file name against paths.state. Names with
// any directory component are returned unchanged.
func (c *Config) StatePath(name string) string {
	if c.Paths.State == "" || strings.ContainsRune(name, filepath.Separator) {
		return name
	}
	return filepath.Join(c.Paths.State, name)
}

// EnsurePaths creates the state directory if it does not exist.
func (c *Config) EnsurePaths() error {
	if c.Paths.State == "" {
		return nil
	}
	if err := os.MkdirAll(c.Paths.State, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", c.Paths.State, err)
	}
	return nil
}
