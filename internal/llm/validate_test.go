package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func testSchema() *Schema {
	return &Schema{
		Name:        "test-question",
		Description: "A single quiz question",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"question": map[string]any{"type": "string", "minLength": 1},
				"answer":   map[string]any{"type": "string"},
				"kind":     map[string]any{"type": "string", "enum": []any{"mc", "sa", "tf"}},
				"points":   map[string]any{"type": "integer", "minimum": 0},
			},
			"required": []any{"question", "answer"},
		},
	}
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid", `{"question":"Largest planet?","answer":"Jupiter","kind":"sa","points":1}`, false},
		{"optional fields omitted", `{"question":"Largest planet?","answer":"Jupiter"}`, false},
		{"missing required", `{"question":"Largest planet?"}`, true},
		{"wrong type", `{"question":"Largest planet?","answer":"Jupiter","points":"one"}`, true},
		{"enum mismatch", `{"question":"Largest planet?","answer":"Jupiter","kind":"essay"}`, true},
		{"empty question", `{"question":"","answer":"Jupiter"}`, true},
		{"malformed", `{not json}`, true},
		{"empty", ``, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(testSchema(), json.RawMessage(tt.raw))
			if (err != nil) != tt.wantErr {
				t.Fatalf("validateResponse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil {
				return
			}
			var invErr *ErrInvalidResponse
			if !errors.As(err, &invErr) {
				t.Fatalf("expected ErrInvalidResponse, got: %T", err)
			}
			if string(invErr.Content) != tt.raw {
				t.Errorf("error content = %s, want %s", invErr.Content, tt.raw)
			}
		})
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	raw := json.RawMessage(`{"anything":"goes"}`)
	if err := validateResponse(nil, raw); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestValidateResponse_NestedArrays(t *testing.T) {
	schema := &Schema{
		Name: "test-nested",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"multipleChoice": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"options": map[string]any{
								"type":     "array",
								"items":    map[string]any{"type": "string"},
								"minItems": 4,
								"maxItems": 4,
							},
						},
						"required": []any{"options"},
					},
				},
			},
			"required": []any{"multipleChoice"},
		},
	}

	valid := json.RawMessage(`{"multipleChoice":[{"options":["a","b","c","d"]}]}`)
	if err := validateResponse(schema, valid); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	short := json.RawMessage(`{"multipleChoice":[{"options":["a","b"]}]}`)
	if err := validateResponse(schema, short); err == nil {
		t.Fatal("expected error for too few options")
	}
}
