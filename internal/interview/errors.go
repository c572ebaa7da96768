package interview

import "errors"

var (
	// ErrRequiredQuestion is returned when a required question is answered
	// with no selection or skipped. The session is unchanged; re-prompt.
	ErrRequiredQuestion = errors.New("question requires an answer")

	// ErrAssessmentIncomplete is returned by Submit while questions remain.
	ErrAssessmentIncomplete = errors.New("assessment is not complete")

	// ErrOutOfQuestions signals that every question has been presented and
	// the session is ready to submit. It is a completion signal, not a failure.
	ErrOutOfQuestions = errors.New("no more questions")

	ErrUnknownOption     = errors.New("unknown option")
	ErrTooManySelections = errors.New("question accepts a single option")
	ErrAtStart           = errors.New("already at the first question")
	ErrSessionComplete   = errors.New("session already submitted")
	ErrSessionNotFound   = errors.New("session not found")
)
