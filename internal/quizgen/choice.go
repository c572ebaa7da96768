package quizgen

import (
	"fmt"
	"slices"
	"strings"

	"github.com/aryan24-cs/StudyGenie/internal/quiz"
)

// ChoiceValidator checks that every multiple-choice answer is one of its
// options verbatim, since grading compares selections exactly, and that
// no two options differ only in case or spacing.
type ChoiceValidator struct{}

func (v *ChoiceValidator) Name() string { return "choice" }

func (v *ChoiceValidator) Validate(set *quiz.QuestionSet, _ Input) *ValidationError {
	for i, q := range set.MultipleChoice {
		seen := make(map[string]bool, len(q.Options))
		for _, opt := range q.Options {
			norm := strings.ToLower(strings.TrimSpace(opt))
			if seen[norm] {
				return &ValidationError{
					Validator: v.Name(),
					Message:   fmt.Sprintf("multipleChoice[%d] has duplicate option %q", i, opt),
					Retryable: true,
				}
			}
			seen[norm] = true
		}

		if !slices.Contains(q.Options, q.Answer) {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("multipleChoice[%d] answer %q is not one of the options", i, q.Answer),
				Retryable: true,
			}
		}
	}
	return nil
}
