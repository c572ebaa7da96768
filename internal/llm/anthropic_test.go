package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestAnthropicProvider(t *testing.T, handler http.HandlerFunc) *AnthropicProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	p, err := NewAnthropicProvider(AnthropicConfig{
		APIKey:  "test-key",
		Model:   "claude-haiku",
		BaseURL: server.URL,
	})
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}
	return p
}

func anthropicMessage(text, stopReason string) map[string]any {
	return map[string]any{
		"id":          "msg_test",
		"type":        "message",
		"role":        "assistant",
		"content":     []map[string]any{{"type": "text", "text": text}},
		"model":       "claude-haiku-4-5-20251001",
		"stop_reason": stopReason,
		"usage":       map[string]any{"input_tokens": 50, "output_tokens": 30},
	}
}

func TestAnthropicProvider_GeneratesQuizItem(t *testing.T) {
	var body map[string]any
	p := newTestAnthropicProvider(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&body)
		writeJSON(w, http.StatusOK, anthropicMessage(
			"```json\n{\"question\": \"Largest planet?\", \"answer\": \"Jupiter\"}\n```", "end_turn"))
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

	if string(resp.Content) != `{"question":"Largest planet?","answer":"Jupiter"}` {
		t.Errorf("content = %s", resp.Content)
	}
	if resp.Usage.TotalTokens != 80 || resp.StopReason != stopEnd {
		t.Errorf("usage/stop = %+v/%q", resp.Usage, resp.StopReason)
	}
	if resp.Model != "claude-haiku-4-5-20251001" {
		t.Errorf("model = %q", resp.Model)
	}

	if body["model"] != "claude-haiku-4-5-20251001" {
		t.Errorf("request model = %v", body["model"])
	}
	system, _ := body["system"].([]any)
	if len(system) != 1 || system[0].(map[string]any)["text"] != "You write study quizzes." {
		t.Errorf("request system = %v", body["system"])
	}
	msgs, _ := body["messages"].([]any)
	if len(msgs) != 1 || msgs[0].(map[string]any)["role"] != "user" {
		t.Errorf("request messages = %v", body["messages"])
	}
}

func TestAnthropicProvider_SchemaMismatch(t *testing.T) {
	p := newTestAnthropicProvider(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, anthropicMessage(`{"question": "Largest planet?"}`, "end_turn"))
	})

	_, err := p.Generate(context.Background(), Request{Schema: quizItemSchema, MaxTokens: 64})
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("want ErrInvalidResponse, got %T (%v)", err, err)
	}
}

func TestAnthropicProvider_Truncated(t *testing.T) {
	p := newTestAnthropicProvider(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, anthropicMessage(`{"conciseSummary": "The solar`, "max_tokens"))
	})

	_, err := p.Generate(context.Background(), Request{MaxTokens: 8})
	var maxTok *ErrMaxTokensExceeded
	if !errors.As(err, &maxTok) {
		t.Fatalf("want ErrMaxTokensExceeded, got %T (%v)", err, err)
	}
	if string(maxTok.Content) != `{"conciseSummary": "The solar` {
		t.Errorf("partial content = %s", maxTok.Content)
	}
}

func TestAnthropicProvider_ErrorStatuses(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		errType   string
		retryWait string
		check     func(t *testing.T, err error)
	}{
		{
			name: "rate limited with retry-after", status: http.StatusTooManyRequests,
			errType: "rate_limit_error", retryWait: "4",
			check: func(t *testing.T, err error) {
				var rl *ErrRateLimit
				if !errors.As(err, &rl) {
					t.Fatalf("want ErrRateLimit, got %T (%v)", err, err)
				}
				if rl.RetryAfter != 4*time.Second {
					t.Errorf("RetryAfter = %s, want 4s", rl.RetryAfter)
				}
			},
		},
		{
			name: "bad key", status: http.StatusUnauthorized, errType: "authentication_error",
			check: func(t *testing.T, err error) {
				var rejected *ErrRequestRejected
				if !errors.As(err, &rejected) || rejected.Status != http.StatusUnauthorized {
					t.Fatalf("want ErrRequestRejected(401), got %T (%v)", err, err)
				}
			},
		},
		{
			name: "server error", status: http.StatusInternalServerError, errType: "api_error",
			check: func(t *testing.T, err error) {
				var unavail *ErrProviderUnavailable
				if !errors.As(err, &unavail) {
					t.Fatalf("want ErrProviderUnavailable, got %T (%v)", err, err)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestAnthropicProvider(t, func(w http.ResponseWriter, r *http.Request) {
				if tt.retryWait != "" {
					w.Header().Set("Retry-After", tt.retryWait)
				}
				writeJSON(w, tt.status, map[string]any{
					"type":  "error",
					"error": map[string]any{"type": tt.errType, "message": tt.name},
				})
			})

			_, err := p.Generate(context.Background(), Request{
				Messages:  []Message{{Role: RoleUser, Content: "notes"}},
				MaxTokens: 100,
			})
			tt.check(t, err)
		})
	}
}

func TestAnthropicModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"claude-sonnet", "claude-sonnet-4-5-20250929"},
		{"claude-haiku", "claude-haiku-4-5-20251001"},
		{"claude-opus", "claude-opus-4-1-20250805"},
		{"claude-sonnet-4-20250514", "claude-sonnet-4-20250514"},
	}
	for _, tt := range tests {
		if got := resolveModel(tt.input, anthropicModels); got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestNewAnthropicProvider_RequiresKey(t *testing.T) {
	if _, err := NewAnthropicProvider(AnthropicConfig{Model: "claude-haiku"}); err == nil {
		t.Fatal("expected error for empty API key")
	}
}
