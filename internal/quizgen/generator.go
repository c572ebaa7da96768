// Package quizgen turns study material into a quiz.QuestionSet using an LLM.
package quizgen

import (
	"context"
	"errors"

	"github.com/aryan24-cs/StudyGenie/internal/quiz"
)

// ErrEmptyInput is returned when there is no study material to quiz on.
var ErrEmptyInput = errors.New("no study material provided")

// Generator produces question sets from study material.
type Generator interface {
	// Generate returns a question set that passed every configured
	// validator.
	Generate(ctx context.Context, input Input) (*quiz.QuestionSet, error)
}

// Input is the study material a quiz is generated from.
type Input struct {
	// Title names the material, e.g. the source file name. Optional.
	Title string

	// Text is the extracted material.
	Text string
}
