/*
Copyright © 2025 Simplecdk Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/orien/simplecdk/internal/aws"
	"github.com/orien/simplecdk/internal/config"
	"github.com/orien/simplecdk/internal/config/file"
	"github.com/orien/simplecdk/internal/model"
	"github.com/orien/simplecdk/internal/options"
	"github.com/orien/simplecdk/internal/toolkit"
	"github.com/spf13/cobra"
)

var (
	// configProvider can be injected for testing
	configProvider config.ConfigProvider

	// environmentSource can be injected for testing
	environmentSource options.EnvironmentSource
)

// SetConfigProvider allows injection of a configuration provider (for testing)
func SetConfigProvider(p config.ConfigProvider) {
	configProvider = p
}

// SetEnvironmentSource allows injection of the AWS environment source (for testing)
func SetEnvironmentSource(src options.EnvironmentSource) {
	environmentSource = src
}

// getConfigProvider returns the injected provider or one reading configFile
func getConfigProvider(configFile string) config.ConfigProvider {
	if configProvider != nil {
		return configProvider
	}
	return file.NewProvider(configFile)
}

// getEnvironmentSource returns the environment source, creating an STS backed one if none is set
func getEnvironmentSource(ctx context.Context) (options.EnvironmentSource, error) {
	if environmentSource != nil {
		return environmentSource, nil
	}

	src, err := aws.NewEnvironmentSource(ctx, aws.Config{})
	if err != nil {
		return nil, err
	}
	environmentSource = src
	return environmentSource, nil
}

// loadConfig reads the options file for the environment selected on the command line
func loadConfig(ctx context.Context, cmd *cobra.Command) (*config.Config, error) {
	configFile, _ := cmd.Flags().GetString("config")
	environment, _ := cmd.Flags().GetString("environment")

	cfg, err := getConfigProvider(configFile).LoadConfig(ctx, environment)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// resolveProcessors returns the processors named on the command line or in
// the options file. Nil selects the default processors.
func resolveProcessors(ctx context.Context, cmd *cobra.Command, cfg *config.Config) ([]options.Processor, error) {
	names := cfg.Processors
	if flag, _ := cmd.Flags().GetString("processors"); flag != "" {
		names = splitList(flag)
	}
	if names == nil {
		return nil, nil
	}

	registry := options.NewRegistry(cfg.ConfigDir)
	registry.Register(options.ProcessorAWSEnv, func(opts options.Options) (options.Options, error) {
		src, err := getEnvironmentSource(ctx)
		if err != nil {
			return options.Options{}, err
		}
		return options.SetEnvFromSource(ctx, src)(opts)
	})

	return registry.Resolve(names)
}

// buildModel loads the configuration and builds a model with tk
func buildModel(ctx context.Context, cmd *cobra.Command, tk toolkit.Toolkit) (*model.Model, *config.Config, error) {
	cfg, err := loadConfig(ctx, cmd)
	if err != nil {
		return nil, nil, err
	}

	m, err := buildModelFromConfig(ctx, cmd, cfg, tk)
	if err != nil {
		return nil, nil, err
	}
	return m, cfg, nil
}

// buildModelFromConfig builds a model from an already loaded configuration
func buildModelFromConfig(ctx context.Context, cmd *cobra.Command, cfg *config.Config, tk toolkit.Toolkit) (*model.Model, error) {
	processors, err := resolveProcessors(ctx, cmd, cfg)
	if err != nil {
		return nil, err
	}

	m, err := model.Init(tk, cfg.Options, processors)
	if err != nil {
		return nil, fmt.Errorf("failed to build model: %w", err)
	}
	return m, nil
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	names := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			names = append(names, part)
		}
	}
	return names
}
