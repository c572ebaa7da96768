package quizgen

import "github.com/aryan24-cs/StudyGenie/internal/llm"

func questionObject(extra map[string]any, required ...string) map[string]any {
	props := map[string]any{
		"question": map[string]any{"type": "string", "minLength": 1},
	}
	for k, v := range extra {
		props[k] = v
	}
	return map[string]any{
		"type":                 "object",
		"properties":           props,
		"required":             append([]any{"question"}, toAny(required)...),
		"additionalProperties": false,
	}
}

func toAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}

// QuestionSetSchema defines the JSON schema for quiz generation responses.
var QuestionSetSchema = &llm.Schema{
	Name:        "question-set",
	Description: "A quiz with multiple-choice, short-answer, true/false and summary questions plus two summaries of the material",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"multipleChoice": map[string]any{
				"type":        "array",
				"minItems":    2,
				"maxItems":    2,
				"description": "Exactly 2 multiple-choice questions",
				"items": questionObject(map[string]any{
					"options": map[string]any{
						"type":        "array",
						"items":       map[string]any{"type": "string"},
						"minItems":    4,
						"maxItems":    4,
						"description": "Exactly 4 distinct options",
					},
					"answer": map[string]any{
						"type":        "string",
						"description": "The text of the correct option, copied exactly",
					},
				}, "options", "answer"),
			},
			"shortAnswer": map[string]any{
				"type":        "array",
				"minItems":    1,
				"maxItems":    1,
				"description": "Exactly 1 short-answer question",
				"items":       questionObject(nil),
			},
			"trueFalse": map[string]any{
				"type":        "array",
				"minItems":    1,
				"maxItems":    1,
				"description": "Exactly 1 true/false statement",
				"items": questionObject(map[string]any{
					"answer": map[string]any{"type": "boolean"},
				}, "answer"),
			},
			"summary": questionObject(nil),
			"conciseSummary": map[string]any{
				"type":        "string",
				"description": "Concise summary of the material, 50-100 words",
			},
			"detailedSummary": map[string]any{
				"type":        "string",
				"description": "Detailed summary of the material, 300-500 words",
			},
		},
		"required":             []any{"multipleChoice", "shortAnswer", "trueFalse", "summary", "conciseSummary", "detailedSummary"},
		"additionalProperties": false,
	},
}
