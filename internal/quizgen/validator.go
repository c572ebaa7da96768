package quizgen

import (
	"fmt"

	"github.com/aryan24-cs/StudyGenie/internal/quiz"
)

// Validator checks a generated question set. Implementations should be
// stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier used in error messages,
	// e.g. "structural" or "choice".
	Name() string

	// Validate returns nil if the set passes.
	Validate(set *quiz.QuestionSet, input Input) *ValidationError
}

// ValidationError describes why a question set failed validation.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Message   string // Human-readable description of the failure
	Retryable bool   // Whether regeneration is likely to fix this
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}
