package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	openai "github.com/sashabaranov/go-openai"
)

func newTestOpenAIProvider(t *testing.T, handler http.HandlerFunc) *OpenAIProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	config := openai.DefaultConfig("test-key")
	config.BaseURL = server.URL + "/v1"
	return newOpenAIProvider(config, "gpt-4o-mini")
}

func chatCompletion(message map[string]any, finish string) map[string]any {
	return map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1234567890,
		"model":   "gpt-4o-mini",
		"choices": []map[string]any{{"index": 0, "message": message, "finish_reason": finish}},
		"usage":   map[string]any{"prompt_tokens": 40, "completion_tokens": 25, "total_tokens": 65},
	}
}

func TestOpenAIProvider_GeneratesQuizItem(t *testing.T) {
	var body struct {
		Model          string `json:"model"`
		Messages       []struct{ Role, Content string }
		ResponseFormat struct {
			Type       string `json:"type"`
			JSONSchema struct {
				Name   string `json:"name"`
				Strict bool   `json:"strict"`
			} `json:"json_schema"`
		} `json:"response_format"`
	}
	p := newTestOpenAIProvider(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&body)
		writeJSON(w, http.StatusOK, chatCompletion(map[string]any{
			"role":    "assistant",
			"content": `{"question":"Largest planet?","answer":"Jupiter"}`,
		}, "stop"))
	})

	resp, err := p.Generate(context.Background(), Request{
		System:    "You write study quizzes.",
		Messages:  []Message{{Role: RoleUser, Content: "Notes: Jupiter is the largest planet."}},
		Schema:    quizItemSchema,
		MaxTokens: 256,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Usage.InputTokens != 40 || resp.Usage.OutputTokens != 25 {
		t.Errorf("usage = %+v", resp.Usage)
	}
	if resp.StopReason != stopEnd {
		t.Errorf("stop reason = %q", resp.StopReason)
	}

	if body.Model != "gpt-4o-mini" {
		t.Errorf("request model = %q", body.Model)
	}
	if len(body.Messages) != 2 || body.Messages[0].Role != "system" || body.Messages[1].Role != "user" {
		t.Errorf("request messages = %+v", body.Messages)
	}
	if body.ResponseFormat.Type != "json_schema" || body.ResponseFormat.JSONSchema.Name != "provider-quiz-item" || !body.ResponseFormat.JSONSchema.Strict {
		t.Errorf("response format = %+v", body.ResponseFormat)
	}
}

func TestOpenAIProvider_Truncated(t *testing.T) {
	p := newTestOpenAIProvider(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, chatCompletion(map[string]any{
			"role": "assistant", "content": `{"question":"Larg`,
		}, "length"))
	})

	_, err := p.Generate(context.Background(), Request{MaxTokens: 4})
	var maxTok *ErrMaxTokensExceeded
	if !errors.As(err, &maxTok) {
		t.Fatalf("want ErrMaxTokensExceeded, got %T (%v)", err, err)
	}
}

func TestOpenAIProvider_Refusal(t *testing.T) {
	p := newTestOpenAIProvider(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, chatCompletion(map[string]any{
			"role": "assistant", "content": "", "refusal": "I can't help with that.",
		}, "stop"))
	})

	_, err := p.Generate(context.Background(), Request{MaxTokens: 64})
	var rejected *ErrRequestRejected
	if !errors.As(err, &rejected) {
		t.Fatalf("want ErrRequestRejected, got %T (%v)", err, err)
	}
}

func TestOpenAIProvider_ErrorStatuses(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   func(error) bool
	}{
		{"rate limited", http.StatusTooManyRequests, func(err error) bool {
			var rl *ErrRateLimit
			return errors.As(err, &rl)
		}},
		{"unknown model", http.StatusNotFound, func(err error) bool {
			var rejected *ErrRequestRejected
			return errors.As(err, &rejected) && rejected.Status == http.StatusNotFound
		}},
		{"overloaded", http.StatusServiceUnavailable, func(err error) bool {
			var unavail *ErrProviderUnavailable
			return errors.As(err, &unavail)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestOpenAIProvider(t, func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, tt.status, map[string]any{
					"error": map[string]any{"type": "error", "message": tt.name},
				})
			})

			_, err := p.Generate(context.Background(), Request{
				Messages:  []Message{{Role: RoleUser, Content: "notes"}},
				MaxTokens: 100,
			})
			if !tt.want(err) {
				t.Fatalf("unexpected error type %T (%v)", err, err)
			}
		})
	}
}

func TestNewOpenAIProvider(t *testing.T) {
	if _, err := NewOpenAIProvider(OpenAIConfig{Model: "gpt-4o"}); err == nil {
		t.Error("expected error for empty API key")
	}

	p, err := NewOpenAIProvider(OpenAIConfig{APIKey: "test-key", Model: "gpt-4.1", BaseURL: "http://localhost:1234/v1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "gpt-4.1" {
		t.Errorf("model = %q, want gpt-4.1", p.ModelID())
	}
}
