/*
Copyright © 2025 Simplecdk Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package output

import (
	"os"

	"charm.land/lipgloss/v2"
)

// Styles contains the styles used for command output
type Styles struct {
	Title  lipgloss.Style
	Header lipgloss.Style
	Key    lipgloss.Style
	Value  lipgloss.Style
	Subtle lipgloss.Style
	Border lipgloss.Style

	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style

	// Whether colours are enabled
	UseColour bool
}

// NewStyles creates styles for the terminal. Colours are chosen based on the
// terminal background (dark vs light).
func NewStyles(useColour bool) *Styles {
	s := &Styles{UseColour: useColour}

	if !useColour {
		// An empty style renders text unchanged
		plainStyle := lipgloss.NewStyle()

		s.Title = plainStyle
		s.Header = plainStyle
		s.Key = plainStyle
		s.Value = plainStyle
		s.Subtle = plainStyle
		s.Border = plainStyle
		s.Success = plainStyle
		s.Warning = plainStyle
		s.Error = plainStyle
		return s
	}

	hasDark := lipgloss.HasDarkBackground(os.Stdin, os.Stdout)

	var (
		headerText  string
		warningText string
		successText string
		keyText     string
		subtleText  string
		borderText  string
		errorText   string
	)

	if hasDark {
		headerText = "12"  // Bright Blue
		warningText = "11" // Yellow
		successText = "10" // Green
		keyText = "14"     // Cyan
		subtleText = "8"   // Dark Grey
		borderText = "240" // Dimmed Grey
		errorText = "9"    // Red
	} else {
		headerText = "4"   // Blue
		warningText = "3"  // Yellow/Brown
		successText = "2"  // Green
		keyText = "6"      // Cyan
		subtleText = "8"   // Grey
		borderText = "245" // Light Grey
		errorText = "1"    // Red
	}

	s.Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(headerText))

	s.Header = lipgloss.NewStyle().Bold(true)

	s.Key = lipgloss.NewStyle().
		Foreground(lipgloss.Color(keyText))

	s.Value = lipgloss.NewStyle()

	s.Subtle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(subtleText))

	s.Border = lipgloss.NewStyle().
		Foreground(lipgloss.Color(borderText))

	s.Success = lipgloss.NewStyle().
		Foreground(lipgloss.Color(successText))

	s.Warning = lipgloss.NewStyle().
		Foreground(lipgloss.Color(warningText)).
		Bold(true)

	s.Error = lipgloss.NewStyle().
		Foreground(lipgloss.Color(errorText)).
		Bold(true)

	return s
}

// ShouldUseColour determines if colour output should be used
func ShouldUseColour() bool {
	// https://no-color.org/
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	term := os.Getenv("TERM")
	if term == "dumb" || term == "" {
		return false
	}

	fileInfo, err := os.Stdout.Stat()
	if err != nil {
		return false
	}

	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
