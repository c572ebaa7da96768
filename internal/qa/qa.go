// Package qa answers a learner's question from their own study material
// using an LLM. The model sees only the passages most related to the
// question and must say so when they do not hold the answer.
package qa

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aryan24-cs/StudyGenie/internal/llm"
)

// Purpose is the LLM event label for question answering calls.
const Purpose = "qa"

// NotAvailable is the reply the model is told to give when the material
// does not contain the answer.
const NotAvailable = "The answer is not available in the provided content."

var (
	// ErrEmptyQuestion is returned when no question was asked.
	ErrEmptyQuestion = errors.New("no question asked")

	// ErrEmptyMaterial is returned when there is no material to answer from.
	ErrEmptyMaterial = errors.New("no study material provided")
)

// Input is a question about one document.
type Input struct {
	// Title names the material. Optional.
	Title string

	// Text is the extracted material.
	Text string

	Question string
}

// Answer is the model's reply and the passages it was given.
type Answer struct {
	Text string

	// Available is false when the model reported that the material does
	// not answer the question.
	Available bool

	Passages []Passage
}

// Answerer implements question answering over a provider.
type Answerer struct {
	provider llm.Provider
	config   Config
}

// New creates an Answerer with the given provider and config.
func New(provider llm.Provider, cfg Config) *Answerer {
	return &Answerer{provider: provider, config: cfg}
}

// Ask answers input.Question from input.Text.
func (a *Answerer) Ask(ctx context.Context, input Input) (*Answer, error) {
	question := strings.TrimSpace(input.Question)
	if question == "" {
		return nil, ErrEmptyQuestion
	}
	passages := Split(input.Text, a.config.ChunkSize, a.config.ChunkOverlap)
	if len(passages) == 0 {
		return nil, ErrEmptyMaterial
	}
	passages = Select(passages, question, a.config.TopPassages)

	ctx = llm.WithPurpose(ctx, Purpose)
	resp, err := a.provider.Generate(ctx, llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input.Title, passages, question)},
		},
		MaxTokens:   a.config.MaxTokens,
		Temperature: a.config.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("LLM answer failed: %w", err)
	}

	text := strings.TrimSpace(string(resp.Content))
	if text == "" {
		return nil, &llm.ErrInvalidResponse{Err: errors.New("empty answer")}
	}
	return &Answer{
		Text:      text,
		Available: !strings.Contains(text, NotAvailable),
		Passages:  passages,
	}, nil
}
