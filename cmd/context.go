/*
Copyright © 2025 Simplecdk Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/orien/simplecdk/internal/model"
	"github.com/orien/simplecdk/internal/toolkit"
	"github.com/orien/simplecdk/internal/toolkit/memory"
	"github.com/spf13/cobra"
)

// contextCmd represents the context command
var contextCmd = &cobra.Command{
	Use:   "context <key> [key...]",
	Short: "Print a context value from the processed options",
	Long: `Print the context value found by following the given keys through nested
context maps. The value is printed as YAML.

Context merged from TOML config files is included when the config-files
processor runs.

Examples:
  simplecdk context main                    # Print the 'main' context table
  simplecdk context main topic_name         # Print a nested value
  simplecdk context --stack main topic_arn  # Look up from the 'main' stack`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		stackID, _ := cmd.Flags().GetString("stack")
		return runContext(cmd.Context(), cmd, stackID, args)
	},
}

func runContext(ctx context.Context, cmd *cobra.Command, stackID string, keys []string) error {
	m, _, err := buildModel(ctx, cmd, memory.New(""))
	if err != nil {
		return err
	}

	var scope toolkit.Scope = m.App
	if stackID != "" {
		stack, ok := m.Stack(stackID)
		if !ok {
			return fmt.Errorf("stack '%s' not found (available: %s)", stackID, strings.Join(m.StackOrder, ", "))
		}
		scope = stack
	}

	value := model.GetContextData(scope, keys...)
	if value == nil {
		return fmt.Errorf("context value not found: %s", strings.Join(keys, "."))
	}

	return writeYAML(cmd.OutOrStdout(), value)
}

func init() {
	rootCmd.AddCommand(contextCmd)

	contextCmd.Flags().String("stack", "", "stack id to look up context from")
}
