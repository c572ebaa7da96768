package components

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/aryan24-cs/StudyGenie/internal/ui/theme"
)

// MultiSelect is an option picker. In single mode choosing an option
// clears the others; in multi mode options toggle independently.
type MultiSelect struct {
	Options []string
	Multi   bool
	Cursor  int
	chosen  []bool
}

// NewMultiSelect creates a picker with the options at preselected indexes
// already chosen. The cursor starts on the lowest chosen option.
func NewMultiSelect(options []string, multi bool, preselected []int) MultiSelect {
	m := MultiSelect{
		Options: options,
		Multi:   multi,
		chosen:  make([]bool, len(options)),
	}
	for _, idx := range preselected {
		if idx >= 0 && idx < len(options) {
			m.chosen[idx] = true
		}
	}
	if sel := m.Selected(); len(sel) > 0 {
		m.Cursor = sel[0]
	}
	return m
}

// Init returns nil.
func (m MultiSelect) Init() tea.Cmd {
	return nil
}

// Update moves the cursor with up/down or j/k and chooses with space or
// x. A digit key jumps to that option and chooses it.
func (m MultiSelect) Update(msg tea.Msg) (MultiSelect, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Options)-1 {
			m.Cursor++
		}
	case "space", " ", "x":
		m.toggle(m.Cursor)
	default:
		if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(m.Options) {
			m.Cursor = n - 1
			m.toggle(m.Cursor)
		}
	}
	return m, nil
}

func (m *MultiSelect) toggle(i int) {
	if len(m.chosen) == 0 {
		return
	}
	// chosen is shared with copies of m; replace it rather than write in place.
	next := make([]bool, len(m.chosen))
	if m.Multi {
		copy(next, m.chosen)
		next[i] = !next[i]
	} else {
		next[i] = !m.chosen[i]
	}
	m.chosen = next
}

// Selected returns the chosen option indexes in option order.
func (m MultiSelect) Selected() []int {
	var out []int
	for i, c := range m.chosen {
		if c {
			out = append(out, i)
		}
	}
	return out
}

// View renders the options, one per line.
func (m MultiSelect) View() string {
	var b strings.Builder
	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Cursor {
			prefix = "▸ "
		}
		mark := "( )"
		if m.Multi {
			mark = "[ ]"
		}
		if m.chosen[i] {
			mark = "(•)"
			if m.Multi {
				mark = "[x]"
			}
		}

		line := fmt.Sprintf("%s%s %d) %s", prefix, mark, i+1, opt)
		switch {
		case m.chosen[i]:
			line = theme.Selected.Render(line)
		case i == m.Cursor:
			line = theme.Body.Bold(true).Render(line)
		default:
			line = theme.Body.Render(line)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}
