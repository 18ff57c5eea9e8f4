/*
Copyright © 2025 Simplecdk Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package config

import (
	"context"

	"github.com/orien/simplecdk/internal/options"
)

// ConfigProvider loads the options a model is built from
type ConfigProvider interface {
	// LoadConfig loads configuration for a specific environment. An empty
	// environment selects the one named in the configuration, if any.
	LoadConfig(ctx context.Context, environment string) (*Config, error)

	// ListEnvironments returns the environments with overrides in the configuration
	ListEnvironments() ([]string, error)

	// Validate checks the configuration for consistency and errors
	Validate() error
}

// Config represents the resolved configuration for one environment
type Config struct {
	// Options are the unprocessed model options with environment overrides applied
	Options options.Options

	// Processors names the option processors to apply, in order. Nil means
	// the default processors.
	Processors []string

	// ConfigDir is the directory TOML config files are read from
	ConfigDir string

	// Output is the directory synthesized artifacts are written to
	Output string
}
