/*
Copyright © 2025 Simplecdk Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"context"
	"fmt"

	"github.com/orien/simplecdk/internal/aws"
	"github.com/orien/simplecdk/internal/output"
	"github.com/orien/simplecdk/internal/status"
	"github.com/orien/simplecdk/internal/toolkit/memory"
	"github.com/spf13/cobra"
)

var (
	// reporter can be injected for testing
	reporter status.Reporter
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the CloudFormation status of every stack",
	Long: `Look up every stack of the deployment in CloudFormation and show its
current status. Stacks are looked up by their resolved stack name in the region
they target.

Stacks that have not been deployed are reported as NOT_DEPLOYED.

Examples:
  simplecdk status                  # Status of every stack
  simplecdk status -e prod          # Status in the prod environment
  simplecdk status --outputs        # Include stack outputs`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		showOutputs, _ := cmd.Flags().GetBool("outputs")
		return runStatus(cmd.Context(), cmd, showOutputs)
	},
}

// SetReporter allows injection of a status reporter (for testing)
func SetReporter(r status.Reporter) {
	reporter = r
}

// getReporter returns the reporter instance, creating a default one if none is set
func getReporter(ctx context.Context) (status.Reporter, error) {
	if reporter != nil {
		return reporter, nil
	}

	clientFactory, err := aws.NewClientFactory(ctx, aws.Config{})
	if err != nil {
		return nil, err
	}
	reporter = status.NewStackReporter(clientFactory)
	return reporter, nil
}

func runStatus(ctx context.Context, cmd *cobra.Command, showOutputs bool) error {
	m, _, err := buildModel(ctx, cmd, memory.New(""))
	if err != nil {
		return err
	}

	r, err := getReporter(ctx)
	if err != nil {
		return err
	}

	statuses, err := r.Report(ctx, m)
	if err != nil {
		return fmt.Errorf("failed to get stack status: %w", err)
	}

	styles := output.NewStyles(output.ShouldUseColour())
	fmt.Fprint(cmd.OutOrStdout(), status.FormatStatus(m.DeploymentName, statuses, styles, showOutputs))
	return nil
}

func init() {
	rootCmd.AddCommand(statusCmd)

	statusCmd.Flags().Bool("outputs", false, "show stack outputs")
}
