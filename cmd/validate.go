/*
Copyright © 2025 Simplecdk Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the options file",
	Long: `Check the options file for errors without running any processors.

The deployment name must be set, stack ids must be unique, every depends_on
entry must name a declared stack and the config directory must exist when one
is configured.

Examples:
  simplecdk validate                       # Validate simplecdk.yaml
  simplecdk validate -c deploy/app.yaml    # Validate another options file`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configFile, _ := cmd.Flags().GetString("config")
		provider := getConfigProvider(configFile)

		if err := provider.Validate(); err != nil {
			return err
		}

		environments, err := provider.ListEnvironments()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s is valid\n", configFile)
		if len(environments) > 0 {
			fmt.Fprintf(out, "Environments: %s\n", strings.Join(environments, ", "))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
