/*
Copyright © 2025 Simplecdk Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package output

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// Table renders static rows as aligned columns
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string

	// Style optionally styles a cell. Padding is applied after styling so that
	// colour codes do not affect alignment.
	Style func(row, col int, cell string) lipgloss.Style
}

// NewTable creates a table with the given title and headers
func NewTable(title string, headers ...string) *Table {
	return &Table{
		Title:   title,
		Headers: headers,
		Rows:    make([][]string, 0),
	}
}

// AddRow adds a row to the table
func (t *Table) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

// Render renders the table using the provided styles
func (t *Table) Render(styles *Styles) string {
	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], lipgloss.Width(cell))
			}
		}
	}

	var sb strings.Builder

	if t.Title != "" {
		sb.WriteString(styles.Title.Render(t.Title))
		sb.WriteString("\n\n")
	}

	cells := make([]string, len(t.Headers))
	for i, h := range t.Headers {
		cells[i] = pad(styles.Header.Render(h), h, widths[i])
	}
	writeLine(&sb, cells)

	rules := make([]string, len(widths))
	for i, w := range widths {
		rules[i] = styles.Border.Render(strings.Repeat("-", w))
	}
	writeLine(&sb, rules)

	for r, row := range t.Rows {
		cells := make([]string, len(widths))
		for i := range widths {
			var cell string
			if i < len(row) {
				cell = row[i]
			}
			rendered := styles.Value.Render(cell)
			if t.Style != nil {
				rendered = t.Style(r, i, cell).Render(cell)
			}
			cells[i] = pad(rendered, cell, widths[i])
		}
		writeLine(&sb, cells)
	}

	return sb.String()
}

func pad(rendered, raw string, width int) string {
	return rendered + strings.Repeat(" ", width-lipgloss.Width(raw))
}

func writeLine(sb *strings.Builder, cells []string) {
	sb.WriteString(strings.TrimRight(strings.Join(cells, "  "), " "))
	sb.WriteString("\n")
}
