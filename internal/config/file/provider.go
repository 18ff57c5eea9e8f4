/*
Copyright © 2025 Simplecdk Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"dario.cat/mergo"
	"github.com/orien/simplecdk/internal/config"
	"github.com/orien/simplecdk/internal/config/tomlfile"
	"github.com/orien/simplecdk/internal/options"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the options file read when none is given
const DefaultFilename = "simplecdk.yaml"

// DefaultOutput is the synthesis output directory when none is configured
const DefaultOutput = "cdk.out"

// Ensure that Provider implements config.ConfigProvider
var _ config.ConfigProvider = (*Provider)(nil)

// Provider implements config.ConfigProvider by reading from a YAML file
type Provider struct {
	filename  string
	rawConfig *Config
}

// NewProvider creates a new file-based ConfigProvider for the given filename
func NewProvider(filename string) *Provider {
	return &Provider{
		filename: filename,
	}
}

// NewDefaultProvider creates a provider for simplecdk.yaml in the current directory
func NewDefaultProvider() *Provider {
	return NewProvider(DefaultFilename)
}

// LoadConfig loads the options and applies the overrides for environment
func (fp *Provider) LoadConfig(ctx context.Context, environment string) (*config.Config, error) {
	if err := fp.ensureLoaded(); err != nil {
		return nil, err
	}
	raw := fp.rawConfig

	opts := options.Options{
		DeploymentName: raw.DeploymentName,
		Stacks:         raw.Stacks,
		Environment:    raw.Environment,
		Tags:           copyStringMap(raw.Tags),
		Context:        tomlfile.Merge(nil, raw.Context),
	}
	opts = opts.Clone()

	if environment != "" {
		opts.Environment.Name = environment
	}

	if name := opts.Environment.Name; name != "" {
		override, exists := raw.Environments[name]
		if !exists && len(raw.Environments) > 0 {
			return nil, fmt.Errorf("environment '%s' not found in configuration", name)
		}
		if override != nil {
			if err := applyOverride(&opts, override); err != nil {
				return nil, fmt.Errorf("failed to apply overrides for environment '%s': %w", name, err)
			}
		}
	}

	output := raw.Output
	if output == "" {
		output = DefaultOutput
	}

	return &config.Config{
		Options:    opts,
		Processors: raw.Processors,
		ConfigDir:  fp.resolvePath(raw.ConfigDir),
		Output:     fp.resolvePath(output),
	}, nil
}

// ListEnvironments returns the environment names defined in the file, sorted
func (fp *Provider) ListEnvironments() ([]string, error) {
	if err := fp.ensureLoaded(); err != nil {
		return nil, err
	}

	environments := make([]string, 0, len(fp.rawConfig.Environments))
	for name := range fp.rawConfig.Environments {
		environments = append(environments, name)
	}
	sort.Strings(environments)

	return environments, nil
}

// Validate checks the configuration for consistency and errors
func (fp *Provider) Validate() error {
	if err := fp.ensureLoaded(); err != nil {
		return err
	}

	opts := options.Options{
		DeploymentName: fp.rawConfig.DeploymentName,
		Stacks:         fp.rawConfig.Stacks,
	}
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("invalid configuration in '%s': %w", fp.filename, err)
	}

	for _, stack := range fp.rawConfig.Stacks {
		for _, dep := range stack.DependsOn {
			if _, exists := opts.Stack(dep); !exists {
				return fmt.Errorf("stack '%s' depends on undefined stack '%s'", stack.ID, dep)
			}
		}
	}

	if fp.rawConfig.ConfigDir != "" {
		dir := fp.resolvePath(fp.rawConfig.ConfigDir)
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			return fmt.Errorf("config directory not found: %s", dir)
		}
	}

	return nil
}

// ensureLoaded loads the raw configuration from file if not already loaded
func (fp *Provider) ensureLoaded() error {
	if fp.rawConfig != nil {
		return nil
	}

	data, err := os.ReadFile(fp.filename)
	if err != nil {
		return fmt.Errorf("failed to read config file '%s': %w", fp.filename, err)
	}

	var rawConfig Config
	if err := yaml.Unmarshal(data, &rawConfig); err != nil {
		return fmt.Errorf("failed to parse YAML config file '%s': %w", fp.filename, err)
	}

	fp.rawConfig = &rawConfig
	return nil
}

// resolvePath resolves a path relative to the options file directory
func (fp *Provider) resolvePath(path string) string {
	if path == "" {
		path = "."
	}
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(filepath.Dir(fp.filename), path)
}

// applyOverride merges environment overrides into opts. Account, region and
// tags from the override win; context keys are replaced at the top level.
func applyOverride(opts *options.Options, override *Environment) error {
	env := options.Environment{Account: override.Account, Region: override.Region}
	if err := mergo.Merge(&opts.Environment, env, mergo.WithOverride); err != nil {
		return err
	}

	if len(override.Tags) > 0 {
		if opts.Tags == nil {
			opts.Tags = make(map[string]string, len(override.Tags))
		}
		if err := mergo.Merge(&opts.Tags, override.Tags, mergo.WithOverride); err != nil {
			return err
		}
	}

	if len(override.Context) > 0 {
		opts.Context = tomlfile.Merge(opts.Context, override.Context)
	}
	return nil
}

func copyStringMap(source map[string]string) map[string]string {
	if source == nil {
		return nil
	}

	copy := make(map[string]string, len(source))
	for k, v := range source {
		copy[k] = v
	}
	return copy
}
