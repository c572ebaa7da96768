package interview

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/aryan24-cs/StudyGenie/internal/ui/components"
	"github.com/aryan24-cs/StudyGenie/internal/ui/theme"
)

const barWidth = 50

func (m Model) View() tea.View {
	if m.done {
		return tea.NewView("")
	}
	return tea.NewView(m.render())
}

func (m Model) render() string {
	var b strings.Builder

	p := m.session.Progress()
	label := fmt.Sprintf("Question %d of %d", p.Position, p.Known)
	b.WriteString(components.NewProgressBar(label, float64(p.Answered)/float64(max(p.Known, 1)), false, barWidth).View())
	b.WriteString("\n\n")

	b.WriteString(theme.Title.Render(m.question.Prompt) + "\n")
	if m.question.Description != "" {
		b.WriteString(theme.Subtitle.Render(m.question.Description) + "\n")
	}
	b.WriteString(theme.Hint.Render(questionHint(m.question.MultiSelect, m.question.Required)) + "\n\n")

	b.WriteString(m.picker.View())

	if m.notice != "" {
		b.WriteString("\n" + theme.Warning.Render(m.notice) + "\n")
	}
	b.WriteString("\n" + m.help.ShortHelpView(m.keys.ShortHelp()) + "\n")
	return b.String()
}

func questionHint(multi, required bool) string {
	hint := "Choose one"
	if multi {
		hint = "Choose any that apply with space or their number"
	}
	if !required {
		hint += " (optional)"
	}
	return hint
}
