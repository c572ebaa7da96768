// Package interview is the interactive screen for the career interview.
// It drives an assessment session from key presses: options are picked
// with the arrow keys, digits or space, and enter submits.
package interview

import (
	"context"
	"errors"
	"slices"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/aryan24-cs/StudyGenie/internal/catalog"
	sess "github.com/aryan24-cs/StudyGenie/internal/interview"
	"github.com/aryan24-cs/StudyGenie/internal/ui/components"
)

// ErrAborted is returned by Run when the user quits before every question
// was presented.
var ErrAborted = errors.New("interview aborted")

type keyMap struct {
	Submit key.Binding
	Skip   key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next")),
		Skip:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "skip")),
		Back:   key.NewBinding(key.WithKeys("b", "left"), key.WithHelp("b", "back")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Skip, k.Back, k.Quit}
}

// Model is the Bubble Tea model for one interview.
type Model struct {
	session  *sess.Session
	question catalog.Question
	picker   components.MultiSelect
	keys     keyMap
	help     help.Model

	// notice is the last rejected action, shown until the next key.
	notice string

	responses []sess.Response
	err       error
	aborted   bool
	done      bool
}

// New creates a Model positioned on the session's current question.
func New(s *sess.Session) Model {
	m := Model{
		session: s,
		keys:    defaultKeys(),
		help:    help.New(),
	}
	m.load()
	return m
}

// Init quits at once when the session had nothing left to present.
func (m Model) Init() tea.Cmd {
	if m.done {
		return tea.Quit
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || m.done {
		return m, nil
	}
	m.notice = ""

	switch {
	case key.Matches(kmsg, m.keys.Quit):
		m.aborted = true
		m.done = true
		return m, tea.Quit
	case key.Matches(kmsg, m.keys.Skip):
		return m.apply(m.session.Skip())
	case key.Matches(kmsg, m.keys.Back):
		return m.apply(m.session.Back())
	case key.Matches(kmsg, m.keys.Submit):
		return m.apply(m.session.Answer(m.selectedIDs()...))
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	return m, cmd
}

// apply shows a rejected action as a notice, or moves to the question the
// session now points at.
func (m Model) apply(err error) (tea.Model, tea.Cmd) {
	if err != nil {
		m.notice = err.Error()
		return m, nil
	}
	m.load()
	if m.done {
		return m, tea.Quit
	}
	return m, nil
}

// load shows the current question, restoring an earlier answer after
// Back. Once the questions run out the session is submitted.
func (m *Model) load() {
	q, err := m.session.CurrentQuestion()
	if errors.Is(err, sess.ErrOutOfQuestions) {
		m.responses, m.err = m.session.Submit()
		m.done = true
		return
	}
	if err != nil {
		m.err = err
		m.done = true
		return
	}

	titles := make([]string, len(q.Options))
	var preselected []int
	prev, answered := m.session.Previous()
	for i, o := range q.Options {
		titles[i] = o.Title
		if answered && slices.Contains(prev.Selected, o.ID) {
			preselected = append(preselected, i)
		}
	}
	m.question = q
	m.picker = components.NewMultiSelect(titles, q.MultiSelect, preselected)
}

// selectedIDs returns the chosen option IDs. With nothing chosen on a
// single-choice question, enter takes the highlighted option.
func (m Model) selectedIDs() []string {
	sel := m.picker.Selected()
	if len(sel) == 0 && !m.question.MultiSelect && len(m.question.Options) > 0 {
		sel = []int{m.picker.Cursor}
	}
	ids := make([]string, len(sel))
	for i, idx := range sel {
		ids[i] = m.question.Options[idx].ID
	}
	return ids
}

// Result returns the submitted response log, ErrAborted when the user quit,
// or the session error that ended the interview.
func (m Model) Result() ([]sess.Response, error) {
	switch {
	case m.err != nil:
		return nil, m.err
	case m.aborted || !m.done:
		return nil, ErrAborted
	}
	return m.responses, nil
}

// Run shows the interview until the session is submitted or the user
// quits. opts select the program's input and output.
func Run(ctx context.Context, s *sess.Session, opts ...tea.ProgramOption) ([]sess.Response, error) {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	final, err := tea.NewProgram(New(s), opts...).Run()
	if err != nil {
		return nil, err
	}
	return final.(Model).Result()
}
