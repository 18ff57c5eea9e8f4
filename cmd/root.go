/*
Copyright © 2025 Simplecdk Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"context"

	"github.com/charmbracelet/fang"
	"github.com/orien/simplecdk/internal/config/file"
	"github.com/orien/simplecdk/internal/logging"
	"github.com/orien/simplecdk/internal/version"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "simplecdk",
	Short: "Prepare AWS CDK deployments from layered configuration",
	Long: `Simplecdk builds AWS CDK apps from a small options file by running the options
through a pipeline of processors before any construct is created:

• Environment defaults from CDK_DEFAULT_ACCOUNT and CDK_DEFAULT_REGION
• A default stack when none are declared
• Stack names derived from the deployment, stack and environment names
• Context merged from TOML files named after the environment and deployment

Use simplecdk to inspect the resolved plan, synthesize CloudFormation templates
and check the deployment status of every stack.`,
	Version:       version.Short(),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, _ := cmd.Flags().GetString("log-level")
		return logging.SetLevel(level)
	},
}

// RootCommand returns the root command, for documentation generation
func RootCommand() *cobra.Command {
	return rootCmd
}

// Execute runs the root command with styled help and error output.
// This is called by main.main().
func Execute(ctx context.Context) error {
	return fang.Execute(ctx, rootCmd,
		fang.WithVersion(version.Short()),
	)
}

func init() {
	rootCmd.SetVersionTemplate(version.Info() + "\n")

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", file.DefaultFilename, "options file to read")
	rootCmd.PersistentFlags().StringP("environment", "e", "", "environment to select (overrides the options file)")
	rootCmd.PersistentFlags().String("processors", "", "comma-separated option processors to apply (overrides the options file)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn or error")
}
