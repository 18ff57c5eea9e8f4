/*
Copyright © 2025 Simplecdk Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"context"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/orien/simplecdk/internal/model"
	"github.com/orien/simplecdk/internal/output"
	"github.com/orien/simplecdk/internal/toolkit/memory"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// planCmd represents the plan command
var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show the processed options and resolved stacks",
	Long: `Run the option processors and show the resulting deployment without
creating any CDK constructs.

The plan lists every stack with its resolved CloudFormation stack name, account
and region, followed by the tags applied to every stack and the top-level
context keys.

Examples:
  simplecdk plan                    # Plan using simplecdk.yaml
  simplecdk plan -e prod            # Plan the prod environment
  simplecdk plan -o yaml            # Print the plan as YAML`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("output")
		return runPlan(cmd.Context(), cmd, format)
	},
}

// planDocument is the YAML form of a plan
type planDocument struct {
	DeploymentName string            `yaml:"deployment_name"`
	Environment    string            `yaml:"environment,omitempty"`
	Account        string            `yaml:"account,omitempty"`
	Region         string            `yaml:"region,omitempty"`
	Stacks         []planStack       `yaml:"stacks"`
	Tags           map[string]string `yaml:"tags,omitempty"`
	Context        map[string]any    `yaml:"context,omitempty"`
}

type planStack struct {
	ID        string   `yaml:"id"`
	Name      string   `yaml:"name"`
	Account   string   `yaml:"account,omitempty"`
	Region    string   `yaml:"region,omitempty"`
	DependsOn []string `yaml:"depends_on,omitempty"`
}

func runPlan(ctx context.Context, cmd *cobra.Command, format string) error {
	m, _, err := buildModel(ctx, cmd, memory.New(""))
	if err != nil {
		return err
	}

	doc := newPlanDocument(m)
	out := cmd.OutOrStdout()

	switch format {
	case "yaml":
		return writeYAML(out, doc)
	case "", "table":
		fmt.Fprint(out, formatPlan(doc, output.NewStyles(output.ShouldUseColour())))
		return nil
	default:
		return fmt.Errorf("unsupported output format '%s' (use table or yaml)", format)
	}
}

func newPlanDocument(m *model.Model) *planDocument {
	doc := &planDocument{
		DeploymentName: m.DeploymentName,
		Environment:    m.CurrentEnvironment.Name,
		Tags:           m.Options.Tags,
		Context:        m.Options.Context,
	}
	if env := m.CurrentEnvironment.Env; env != nil {
		doc.Account = env.Account()
		doc.Region = env.Region()
	}

	for _, stack := range m.OrderedStacks() {
		info, _ := m.Options.Stack(stack.ID())
		doc.Stacks = append(doc.Stacks, planStack{
			ID:        stack.ID(),
			Name:      stack.StackName(),
			Account:   stack.Account(),
			Region:    stack.Region(),
			DependsOn: info.DependsOn,
		})
	}
	return doc
}

func formatPlan(doc *planDocument, styles *output.Styles) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s %s\n", styles.Key.Render("Deployment:"), doc.DeploymentName)
	fmt.Fprintf(&sb, "%s %s\n", styles.Key.Render("Environment:"), orDash(doc.Environment))
	fmt.Fprintf(&sb, "%s %s\n", styles.Key.Render("Account:"), orDash(doc.Account))
	fmt.Fprintf(&sb, "%s %s\n\n", styles.Key.Render("Region:"), orDash(doc.Region))

	table := output.NewTable("Stacks", "ID", "NAME", "ACCOUNT", "REGION", "DEPENDS ON")
	for _, s := range doc.Stacks {
		table.AddRow(s.ID, s.Name, orDash(s.Account), orDash(s.Region), orDash(strings.Join(s.DependsOn, ", ")))
	}
	sb.WriteString(table.Render(styles))

	if len(doc.Tags) > 0 {
		sb.WriteString("\n")
		sb.WriteString(styles.Title.Render("Tags"))
		sb.WriteString("\n")
		for _, key := range slices.Sorted(maps.Keys(doc.Tags)) {
			fmt.Fprintf(&sb, "  %s: %s\n", styles.Key.Render(key), doc.Tags[key])
		}
	}

	if len(doc.Context) > 0 {
		sb.WriteString("\n")
		sb.WriteString(styles.Title.Render("Context keys"))
		sb.WriteString("\n")
		for _, key := range slices.Sorted(maps.Keys(doc.Context)) {
			fmt.Fprintf(&sb, "  %s\n", styles.Key.Render(key))
		}
	}

	return sb.String()
}

func writeYAML(w io.Writer, v any) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return encoder.Close()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func init() {
	rootCmd.AddCommand(planCmd)

	planCmd.Flags().StringP("output", "o", "table", "output format: table or yaml")
}
