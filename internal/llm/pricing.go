package llm

import "github.com/aryan24-cs/StudyGenie/internal/store"

// ModelCost holds per-million-token pricing for a model.
// Prices are in USD per 1 million tokens.
type ModelCost struct {
	InputPerMTok  float64 // USD per 1M input tokens
	OutputPerMTok float64 // USD per 1M output tokens
}

// Cost calculates the total USD cost for the given token counts.
func (c ModelCost) Cost(inputTokens, outputTokens int) float64 {
	return float64(inputTokens)*c.InputPerMTok/1_000_000 +
		float64(outputTokens)*c.OutputPerMTok/1_000_000
}

// LookupCost returns the pricing for a model ID, or nil if unknown.
func LookupCost(modelID string) *ModelCost {
	if c, ok := modelCosts[modelID]; ok {
		return &c
	}
	return nil
}

// modelCosts covers the models reachable through the friendly names and
// defaults in this package. Prices last checked 2026-02-15.
var modelCosts = map[string]ModelCost{
	// Anthropic
	"claude-haiku-4-5-20251001":  {1, 5},
	"claude-sonnet-4-20250514":   {3, 15},
	"claude-sonnet-4-5-20250929": {3, 15},
	"claude-opus-4-1-20250805":   {15, 75},

	// OpenAI
	"gpt-4o":       {2.5, 10},
	"gpt-4o-mini":  {0.15, 0.6},
	"gpt-4.1":      {2, 8},
	"gpt-4.1-mini": {0.4, 1.6},

	// Google (Gemini)
	"gemini-2.0-flash":      {0.1, 0.4},
	"gemini-2.5-flash":      {0.3, 2.5},
	"gemini-2.5-flash-lite": {0.1, 0.4},
	"gemini-2.5-pro":        {1.25, 10},

	// OpenRouter
	"google/gemini-2.5-flash": {0.3, 2.5},
	"openai/gpt-4o-mini":      {0.15, 0.6},
}

// TotalCost sums the cost of usage across models, skipping models with no
// known price. The second result reports whether every model was priced.
func TotalCost(usage []store.ModelUsage) (float64, bool) {
	var total float64
	complete := true
	for _, u := range usage {
		c := LookupCost(u.Model)
		if c == nil {
			complete = false
			continue
		}
		total += c.Cost(u.InputTokens, u.OutputTokens)
	}
	return total, complete
}
