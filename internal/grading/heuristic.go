package grading

import (
	"strings"
	"unicode/utf8"
)

// OpenEndedChecker decides whether a free-text answer is acceptable.
// Implementations must be deterministic for a given question and answer.
type OpenEndedChecker interface {
	Check(question, answer string) bool
}

// LengthHeuristic accepts any answer whose trimmed length exceeds MinRunes.
// It does not look at the content.
type LengthHeuristic struct {
	MinRunes int
}

func (h LengthHeuristic) Check(_, answer string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(answer)) > h.MinRunes
}

// Default thresholds for the length heuristic.
const (
	ShortAnswerMinRunes = 10
	SummaryMinRunes     = 50
)

// CheckerFunc adapts a plain function to OpenEndedChecker.
type CheckerFunc func(question, answer string) bool

func (f CheckerFunc) Check(question, answer string) bool { return f(question, answer) }
