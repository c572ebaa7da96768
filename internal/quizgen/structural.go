package quizgen

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/aryan24-cs/StudyGenie/internal/quiz"
)

const (
	maxQuestionRunes = 500
	mcOptionCount    = 4
)

// StructuralValidator checks question counts, lengths and that the study
// summaries are present.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(set *quiz.QuestionSet, _ Input) *ValidationError {
	fail := func(format string, args ...any) *ValidationError {
		return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf(format, args...), Retryable: true}
	}

	for i, q := range set.MultipleChoice {
		if msg := checkQuestionText(q.Question); msg != "" {
			return fail("multipleChoice[%d] %s", i, msg)
		}
		if len(q.Options) != mcOptionCount {
			return fail("multipleChoice[%d] has %d options, want %d", i, len(q.Options), mcOptionCount)
		}
	}
	for i, q := range set.ShortAnswer {
		if msg := checkQuestionText(q.Question); msg != "" {
			return fail("shortAnswer[%d] %s", i, msg)
		}
	}
	for i, q := range set.TrueFalse {
		if msg := checkQuestionText(q.Question); msg != "" {
			return fail("trueFalse[%d] %s", i, msg)
		}
	}
	if msg := checkQuestionText(set.Summary.Question); msg != "" {
		return fail("summary %s", msg)
	}

	if strings.TrimSpace(set.ConciseSummary) == "" {
		return fail("conciseSummary is empty")
	}
	if strings.TrimSpace(set.DetailedSummary) == "" {
		return fail("detailedSummary is empty")
	}
	return nil
}

func checkQuestionText(s string) string {
	switch {
	case strings.TrimSpace(s) == "":
		return "question is empty"
	case utf8.RuneCountInString(s) > maxQuestionRunes:
		return fmt.Sprintf("question exceeds %d characters", maxQuestionRunes)
	}
	return ""
}
