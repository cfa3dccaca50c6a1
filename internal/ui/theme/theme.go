// Package theme holds the lipgloss styles shared by all CLI output.
package theme

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// Color palette — warm arcade tones over a dark base
var (
	Primary   = lipgloss.Color("#8B5CF6") // Vivid Purple
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F97316") // Orange
	Gold      = lipgloss.Color("#FACC15") // Amber
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
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

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Progression accents
var (
	XPGain = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	LevelUp = lipgloss.NewStyle().
		Foreground(Gold).
		Bold(true)

	Streak = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true)

	BadgeEarned = lipgloss.NewStyle().
			Foreground(Gold).
			Bold(true)

	BadgeLocked = lipgloss.NewStyle().
			Foreground(TextDim)

	Overdue = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)

	Due = lipgloss.NewStyle().
		Foreground(Secondary)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

var (
	barFilled = lipgloss.NewStyle().Foreground(Secondary)
	barEmpty  = lipgloss.NewStyle().Foreground(Border)
)

// Bar renders a horizontal progress bar of the given width for a
// ratio in [0,1].
func Bar(width int, ratio float64) string {
	if width <= 0 {
		return ""
	}
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	filled := int(ratio * float64(width))
	if filled > width {
		filled = width
	}
	return barFilled.Render(strings.Repeat("█", filled)) +
		barEmpty.Render(strings.Repeat("░", width-filled))
}
