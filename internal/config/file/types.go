/*
Copyright © 2025 Simplecdk Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package file contains the YAML options file provider and the raw structure
// of the file before environment overrides are applied.
package file

import (
	"github.com/orien/simplecdk/internal/options"
)

// Config represents the raw YAML options file structure
type Config struct {
	DeploymentName string                  `yaml:"deployment_name"`
	Processors     []string                `yaml:"processors"`
	ConfigDir      string                  `yaml:"config_dir"`
	Output         string                  `yaml:"output"`
	Stacks         []options.StackInfo     `yaml:"stacks"`
	Environment    options.Environment     `yaml:"environment"`
	Tags           map[string]string       `yaml:"tags"`
	Context        map[string]any          `yaml:"context"`
	Environments   map[string]*Environment `yaml:"environments"`
}

// Environment holds the overrides applied when an environment is selected
type Environment struct {
	Account string            `yaml:"account"`
	Region  string            `yaml:"region"`
	Tags    map[string]string `yaml:"tags"`
	Context map[string]any    `yaml:"context"`
}
