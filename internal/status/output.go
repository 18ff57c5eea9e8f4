/*
Copyright © 2025 Simplecdk Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package status

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/orien/simplecdk/internal/aws"
	"github.com/orien/simplecdk/internal/output"
)

// FormatStatus renders stack statuses as a table, followed by the outputs of
// deployed stacks when showOutputs is set
func FormatStatus(deploymentName string, statuses []*StackStatus, styles *output.Styles, showOutputs bool) string {
	table := output.NewTable(fmt.Sprintf("Deployment: %s", deploymentName), "STACK", "NAME", "REGION", "STATUS", "UPDATED")
	for _, s := range statuses {
		updated := "-"
		if s.UpdatedTime != nil {
			updated = formatTime(*s.UpdatedTime)
		}
		table.AddRow(s.ID, s.Name, s.Region, s.Status, updated)
	}
	table.Style = func(row, col int, cell string) lipgloss.Style {
		if col != 3 {
			return styles.Value
		}
		return statusStyle(statuses[row], styles)
	}

	var out strings.Builder
	out.WriteString(table.Render(styles))

	if !showOutputs {
		return out.String()
	}

	for _, s := range statuses {
		if len(s.Outputs) == 0 {
			continue
		}
		fmt.Fprintf(&out, "\n%s\n", styles.Title.Render(fmt.Sprintf("Outputs of %s:", s.ID)))
		writeKeyValueMap(&out, s.Outputs, styles)
	}

	return out.String()
}

func statusStyle(s *StackStatus, styles *output.Styles) lipgloss.Style {
	if !s.Deployed {
		return styles.Subtle
	}

	status := aws.StackStatus(s.Status)
	switch {
	case status.IsFailed():
		return styles.Error
	case !status.IsComplete():
		return styles.Warning
	default:
		return styles.Success
	}
}

// formatTime formats time in a human-readable format
func formatTime(t time.Time) string {
	return t.Format("2006-01-02 15:04:05 MST")
}

// writeKeyValueMap writes a sorted map as key-value pairs with indentation
func writeKeyValueMap(out *strings.Builder, m map[string]string, styles *output.Styles) {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		fmt.Fprintf(out, "  %s: %s\n", styles.Key.Render(key), styles.Value.Render(m[key]))
	}
}
