package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette
var (
	Primary   = lipgloss.Color("#6366F1") // Indigo
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F59E0B") // Amber
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	Border    = lipgloss.Color("#334155") // Slate

	Gold   = lipgloss.Color("#EAB308")
	Silver = lipgloss.Color("#CBD5E1")
	Bronze = lipgloss.Color("#C2773A")
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim)

	Heading = lipgloss.NewStyle().
		Bold(true).
		Foreground(Secondary)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Warning = lipgloss.NewStyle().
		Foreground(Accent)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	ProgressFilled = lipgloss.NewStyle().
			Foreground(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Foreground(Border)
)

// Division returns the style for a leaderboard division name.
func Division(name string) lipgloss.Style {
	s := lipgloss.NewStyle().Bold(true)
	switch name {
	case "Gold":
		return s.Foreground(Gold)
	case "Silver":
		return s.Foreground(Silver)
	case "Bronze":
		return s.Foreground(Bronze)
	default:
		return s.Foreground(TextDim)
	}
}

// Verdict renders ok as a check mark or cross.
func Verdict(ok bool) string {
	if ok {
		return Correct.Render("✓")
	}
	return Incorrect.Render("✗")
}
