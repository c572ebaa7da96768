package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/aryan24-cs/StudyGenie/internal/ui/theme"
)

const (
	filledCell = "█"
	emptyCell  = "░"
)

// ProgressBar displays a horizontal progress bar.
type ProgressBar struct {
	Label       string
	Percent     float64 // 0..1
	ShowPercent bool
	Width       int
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
	}
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		result += theme.Body.Render(p.Label) + "  "
	}

	labelWidth := lipgloss.Width(result)
	percentWidth := 0
	if p.ShowPercent {
		percentWidth = 6 // "  100%"
	}

	barWidth := max(p.Width-labelWidth-percentWidth, 4)
	filled := min(max(int(float64(barWidth)*p.Percent), 0), barWidth)
	empty := barWidth - filled

	result += theme.ProgressFilled.Render(strings.Repeat(filledCell, filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(emptyCell, empty))

	if p.ShowPercent {
		result += theme.Hint.Render(fmt.Sprintf("  %d%%", int(p.Percent*100)))
	}

	return result
}
