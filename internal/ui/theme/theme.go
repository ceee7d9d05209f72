// Package theme holds the terminal styling for traitlab's CLI output.
package theme

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// Color palette
var (
	Primary  = lipgloss.Color("#8B5CF6") // Purple
	Positive = lipgloss.Color("#22C55E") // Green
	Negative = lipgloss.Color("#F43F5E") // Rose
	Text     = lipgloss.Color("#F8FAFC") // White
	TextDim  = lipgloss.Color("#94A3B8") // Slate
	Border   = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Dim = lipgloss.NewStyle().
		Foreground(TextDim)

	TraitName = lipgloss.NewStyle().
			Foreground(Text).
			Width(22)

	Up = lipgloss.NewStyle().
		Foreground(Positive).
		Bold(true)

	Down = lipgloss.NewStyle().
		Foreground(Negative).
		Bold(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 2)
)

var (
	barFilled = lipgloss.NewStyle().Foreground(Primary)
	barEmpty  = lipgloss.NewStyle().Foreground(Border)
)

// Bar renders a trait value in [0,1] as a fixed-width meter.
func Bar(value float64, width int) string {
	if value < 0 {
		value = 0
	}
	if value > 1 {
		value = 1
	}
	filled := int(value*float64(width) + 0.5)
	return barFilled.Render(strings.Repeat("█", filled)) +
		barEmpty.Render(strings.Repeat("░", width-filled))
}
