package quizgen

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aryan24-cs/StudyGenie/internal/llm"
	"github.com/aryan24-cs/StudyGenie/internal/quiz"
)

// Purpose is the LLM event label for quiz generation calls.
const Purpose = "quiz-gen"

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// Generate asks the model for a question set covering input.Text. A set
// rejected by a validator with Retryable set is regenerated up to
// Config.Regenerations times, with the rejection reason sent back to the
// model.
func (g *LLMGenerator) Generate(ctx context.Context, input Input) (*quiz.QuestionSet, error) {
	if strings.TrimSpace(input.Text) == "" {
		return nil, ErrEmptyInput
	}
	ctx = llm.WithPurpose(ctx, Purpose)

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input, g.config)},
		},
		Schema:      QuestionSetSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	for attempt := 0; ; attempt++ {
		set, reply, err := g.generateOnce(ctx, req, input)
		var verr *ValidationError
		if !errors.As(err, &verr) || !verr.Retryable || attempt >= g.config.Regenerations {
			return set, err
		}
		req.Messages = append(req.Messages,
			llm.Message{Role: llm.RoleAssistant, Content: reply},
			llm.Message{Role: llm.RoleUser, Content: regenerateMessage(verr)},
		)
	}
}

// generateOnce runs one request and the validator chain. reply is the raw
// model output, returned so a rejected set can be quoted back.
func (g *LLMGenerator) generateOnce(ctx context.Context, req llm.Request, input Input) (*quiz.QuestionSet, string, error) {
	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, "", fmt.Errorf("LLM generation failed: %w", err)
	}

	reply := llm.StripCodeFence(string(resp.Content))
	set, err := quiz.Decode([]byte(reply))
	if err != nil {
		return nil, reply, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	for _, v := range g.config.Validators {
		if verr := v.Validate(set, input); verr != nil {
			return nil, reply, verr
		}
	}
	return set, reply, nil
}

func regenerateMessage(verr *ValidationError) string {
	return fmt.Sprintf("That quiz was rejected: %s. Write the whole quiz again with this fixed, following every rule.", verr.Message)
}
