// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"io/fs"
	"os"

	"github.com/bureau-foundation/netlog/cmd/netlog/cli"
	"github.com/bureau-foundation/netlog/lib/config"
	"github.com/bureau-foundation/netlog/lib/netlog"
)

// loadConfig loads the file named by --config, else the file named by
// NETLOG_CONFIG, else the defaults, and validates the result.
func loadConfig(path string) (*config.Config, error) {
	var cfg *config.Config
	var err error
	switch {
	case path != "":
		cfg, err = config.LoadFile(path)
	case os.Getenv(config.EnvironmentVariable) != "":
		cfg, err = config.Load()
	default:
		cfg = config.Default()
	}
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, cli.NotFound("%w", err).
				WithHint("Pass --config with the path to a netlog.yaml, or unset " + config.EnvironmentVariable + ".")
		}
		return nil, cli.Validation("%w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, cli.Validation("invalid configuration:\n%w", err)
	}
	return cfg, nil
}

// captureLevel resolves the initial capture verbosity: the flag when
// given, otherwise capture.log_level.
func captureLevel(flagValue string, cfg *config.Config) (netlog.LogLevel, error) {
	name := cfg.Capture.LogLevel
	if flagValue != "" {
		name = flagValue
	}
	level, err := netlog.ParseLogLevel(name)
	if err != nil {
		return 0, cli.Validation("%w", err)
	}
	return level, nil
}
