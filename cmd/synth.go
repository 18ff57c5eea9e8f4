/*
Copyright © 2025 Simplecdk Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"context"
	"fmt"

	"github.com/orien/simplecdk/internal/model"
	"github.com/orien/simplecdk/internal/toolkit"
	"github.com/orien/simplecdk/internal/toolkit/cdk"
	"github.com/spf13/cobra"
)

var (
	// synthToolkit can be injected for testing
	synthToolkit func(outdir string) (toolkit.Toolkit, func())
)

// synthCmd represents the synth command
var synthCmd = &cobra.Command{
	Use:   "synth",
	Short: "Synthesize CloudFormation templates with the AWS CDK",
	Long: `Build the CDK app from the processed options and synthesize the cloud
assembly into the output directory.

The output directory defaults to the 'output' setting of the options file, or
cdk.out when that is not set. Both resolve relative to the options file.

Examples:
  simplecdk synth                   # Synthesize into cdk.out
  simplecdk synth -e prod           # Synthesize the prod environment
  simplecdk synth --output build    # Synthesize into ./build`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		outdir, _ := cmd.Flags().GetString("output")
		return runSynth(cmd.Context(), cmd, outdir)
	},
}

// SetSynthToolkit allows injection of the toolkit used for synthesis (for testing)
func SetSynthToolkit(factory func(outdir string) (toolkit.Toolkit, func())) {
	synthToolkit = factory
}

// getSynthToolkit returns a toolkit writing to outdir and a function releasing it
func getSynthToolkit(outdir string) (toolkit.Toolkit, func()) {
	if synthToolkit != nil {
		return synthToolkit(outdir)
	}
	return cdk.New(cdk.Config{Outdir: outdir}), cdk.Close
}

func runSynth(ctx context.Context, cmd *cobra.Command, outdir string) error {
	cfg, err := loadConfig(ctx, cmd)
	if err != nil {
		return err
	}
	if outdir == "" {
		outdir = cfg.Output
	}

	tk, release := getSynthToolkit(outdir)
	defer release()

	m, err := buildModelFromConfig(ctx, cmd, cfg, tk)
	if err != nil {
		return err
	}

	if err := model.Generate(m); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Synthesized %d stack(s) for '%s' to %s\n", len(m.StackOrder), m.DeploymentName, outdir)
	return nil
}

func init() {
	rootCmd.AddCommand(synthCmd)

	synthCmd.Flags().String("output", "", "directory to write the cloud assembly to")
}
