// SPDX-License-Identifier: MIT

// Package config loads matxor settings from MATXOR_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"

	"github.com/katalvlaran/matxor/render"
)

// Prefix is the environment variable prefix (MATXOR_ROWS, MATXOR_SEED, ...).
const Prefix = "MATXOR"

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds all application configuration. Sections are embedded so
// envconfig keeps the flat MATXOR_<KEY> names.
type Config struct {
	MatrixConfig
	OutputConfig
	LogConfig
}

// MatrixConfig holds pipeline shape and randomness settings.
// Rows and Cols are not range-checked here; the generator owns that rule.
type MatrixConfig struct {
	Rows    int    `envconfig:"ROWS" default:"3"`
	Cols    int    `envconfig:"COLS" default:"3"`
	Seed    uint64 `envconfig:"SEED" default:"0"` // 0 means derive from the clock
	Workers int    `envconfig:"WORKERS" default:"1"`
}

// OutputConfig holds presentation settings.
type OutputConfig struct {
	Format string `envconfig:"FORMAT" default:"text"`
	Order  string `envconfig:"ORDER" default:"row"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"warn"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// Load loads configuration from environment variables and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		MatrixConfig: MatrixConfig{
			Rows:    3,
			Cols:    3,
			Workers: 1,
		},
		OutputConfig: OutputConfig{
			Format: FormatText,
			Order:  render.RowMajor.String(),
		},
		LogConfig: LogConfig{
			Level: "warn",
		},
	}
}

// Validate checks the enumerated settings.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Format) {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("%w: unknown format %q", ErrInvalidConfig, c.Format)
	}
	if _, err := render.ParseOrder(c.Order); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be >= 1, got %d", ErrInvalidConfig, c.Workers)
	}
	return nil
}

// JSON reports whether JSON output was requested.
func (c *Config) JSON() bool {
	return strings.EqualFold(c.Format, FormatJSON)
}
