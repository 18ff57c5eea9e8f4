/*
Copyright © 2025 Simplecdk Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package options

import (
	"fmt"
	"os"

	"github.com/orien/simplecdk/internal/config/tomlfile"
	"github.com/orien/simplecdk/internal/logging"
	"go.uber.org/zap"
)

// Environment variables consulted by SetEnvFromEnvVars
const (
	EnvDefaultAccount = "CDK_DEFAULT_ACCOUNT"
	EnvDefaultRegion  = "CDK_DEFAULT_REGION"
)

// Processor transforms one options record into another. It must not modify
// its argument.
type Processor func(Options) (Options, error)

// Apply runs the processors in order, each one receiving the output of the
// previous one
func Apply(opts Options, processors ...Processor) (Options, error) {
	for i, process := range processors {
		next, err := process(opts)
		if err != nil {
			return Options{}, fmt.Errorf("option processor %d failed: %w", i, err)
		}
		opts = next
	}
	return opts, nil
}

// Chain combines processors into a single processor
func Chain(processors ...Processor) Processor {
	return func(opts Options) (Options, error) {
		for _, process := range processors {
			var err error
			if opts, err = process(opts); err != nil {
				return Options{}, err
			}
		}
		return opts, nil
	}
}

// DefaultProcessors returns the pipeline used when the caller supplies none
func DefaultProcessors() []Processor {
	return []Processor{SimpleDefaults}
}

// SimpleDefaults fills the environment from CDK environment variables, adds a
// default stack when none are listed and derives missing stack names
func SimpleDefaults(opts Options) (Options, error) {
	return Chain(SetEnvFromEnvVars, SetDefaultStackIfNoStacks, SetStackNames)(opts)
}

// SimpleConfigDefaults applies SimpleDefaults and then loads TOML config files
// from the current directory
func SimpleConfigDefaults(opts Options) (Options, error) {
	return Chain(SimpleDefaults, LoadConfigFiles)(opts)
}

// SetEnvFromEnvVars fills an empty account and region from CDK_DEFAULT_ACCOUNT
// and CDK_DEFAULT_REGION. Values already set are kept.
func SetEnvFromEnvVars(opts Options) (Options, error) {
	result := opts.Clone()
	env := &result.Environment

	if env.Account == "" {
		env.Account = os.Getenv(EnvDefaultAccount)
	}
	if env.Region == "" {
		env.Region = os.Getenv(EnvDefaultRegion)
	}

	logging.Logger().Debug("environment set from environment variables",
		zap.String("name", env.Name),
		zap.String("account", env.Account),
		zap.String("region", env.Region))
	return result, nil
}

// SetDefaultStackIfNoStacks adds a stack with id "default", named after the
// deployment, when no stacks are listed
func SetDefaultStackIfNoStacks(opts Options) (Options, error) {
	result := opts.Clone()
	if len(result.Stacks) > 0 {
		return result, nil
	}

	result.Stacks = []StackInfo{{
		ID:        DefaultStackID,
		Name:      result.DeploymentName,
		DependsOn: []string{},
	}}

	logging.Logger().Debug("default stack added", zap.String("name", result.DeploymentName))
	return result, nil
}

// SetStackNames derives a name for every stack that has none. Explicit names
// are never changed.
func SetStackNames(opts Options) (Options, error) {
	result := opts.Clone()

	for i := range result.Stacks {
		stack := &result.Stacks[i]
		if stack.Name != "" {
			continue
		}
		id := stack.ID
		if id == "" {
			id = DefaultStackID
		}
		stack.Name = MakeStackName(result.DeploymentName, id, result.Environment.Name)
	}

	logging.Logger().Debug("stack names set", zap.Any("stacks", result.Stacks))
	return result, nil
}

// MakeStackName builds a stack name from the deployment name prefix, the stack
// id and the environment name
func MakeStackName(prefix, id, envName string) string {
	switch {
	case id == DefaultStackID && prefix != "":
		return prefix
	case prefix == "":
		return id
	case envName == "":
		return fmt.Sprintf("%s-%s", prefix, id)
	default:
		return fmt.Sprintf("%s-%s-%s", prefix, id, envName)
	}
}

// ConfigFilePaths lists the TOML files consulted for the options, in load order
func ConfigFilePaths(opts Options) []string {
	deployment := opts.DeploymentName
	envName := opts.Environment.Name

	var paths []string
	if envName != "" {
		paths = append(paths, envName+".toml")
	}
	if deployment != "" {
		paths = append(paths, deployment+".toml")
	}
	if deployment != "" && envName != "" {
		paths = append(paths, fmt.Sprintf("%s-%s.toml", deployment, envName))
	}
	return paths
}

// LoadConfigFiles merges TOML config files from the current directory into
// the context. See LoadConfigFilesFrom.
func LoadConfigFiles(opts Options) (Options, error) {
	return LoadConfigFilesFrom("")(opts)
}

// LoadConfigFilesFrom returns a processor that merges the files named by
// ConfigFilePaths, relative to dir, into the context. Later files overwrite
// keys from earlier ones and from the existing context. Missing files are
// skipped; a file that cannot be parsed is an error.
func LoadConfigFilesFrom(dir string) Processor {
	loader := tomlfile.NewLoader(dir)

	return func(opts Options) (Options, error) {
		paths := ConfigFilePaths(opts)

		loaded, err := loader.Load(paths...)
		if err != nil {
			return Options{}, err
		}

		result := opts.Clone()
		result.Context = tomlfile.Merge(result.Context, loaded.Values)

		logging.Logger().Debug("config files loaded",
			zap.Strings("config_paths", paths),
			zap.Strings("loaded", loaded.Loaded),
			zap.Any("context", result.Context))
		return result, nil
	}
}
