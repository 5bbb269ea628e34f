// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
)

// envPrefix namespaces every environment variable, e.g. PICKPROFILE_STATE.
const envPrefix = "pickprofile"

// Config holds environment defaults; command-line flags override them.
type Config struct {
	// State is the jurisdiction label written into the filename.
	State string `default:"DC"`

	// Draw is the draw session label ("mid" or "eve").
	Draw string `default:"mid"`

	// Recent keeps only the most recent N draws; 0 uses all.
	Recent int `default:"0"`

	// LogLevel is a zerolog level name (trace, debug, info, warn, error).
	LogLevel string `split_words:"true" default:"info"`

	// OutDir is where build writes the profile file.
	OutDir string `split_words:"true" default:"."`
}

// loadConfig reads the PICKPROFILE_* environment.
func loadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	return &cfg, nil
}

// newLogger builds a console logger on w at the configured level.
func newLogger(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("log level %q: %w", level, err)
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}).
		With().
		Timestamp().
		Logger().
		Level(lvl), nil
}
