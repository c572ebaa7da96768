package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestMockProvider_ReturnsQueuedResponses(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"question":"Q1"}`), Usage: Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}},
		MockResponse{Content: json.RawMessage(`{"question":"Q2"}`)},
	)

	resp, err := mock.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "notes one"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"question":"Q1"}` {
		t.Errorf("content = %s", resp.Content)
	}
	if resp.Usage.InputTokens != 10 || resp.Usage.TotalTokens != 15 {
		t.Errorf("usage = %+v", resp.Usage)
	}
	if resp.StopReason != stopEnd || resp.Model != ProviderMock {
		t.Errorf("stop/model = %q/%q", resp.StopReason, resp.Model)
	}

	resp, err = mock.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "notes two"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"question":"Q2"}` {
		t.Errorf("content = %s", resp.Content)
	}

	if mock.CallCount() != 2 || mock.Calls[1].Messages[0].Content != "notes two" {
		t.Errorf("calls = %+v", mock.Calls)
	}
}

func TestMockProvider_Errors(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrRateLimit{}},
		MockResponse{Content: json.RawMessage(`{"question":`), StopReason: stopMaxTokens},
	)

	_, err := mock.Generate(context.Background(), Request{})
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Errorf("first call: want ErrRateLimit, got %T", err)
	}

	_, err = mock.Generate(context.Background(), Request{})
	var maxTok *ErrMaxTokensExceeded
	if !errors.As(err, &maxTok) || string(maxTok.Content) != `{"question":` {
		t.Errorf("second call: want ErrMaxTokensExceeded with partial content, got %v", err)
	}

	_, err = mock.Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Errorf("exhausted queue: want ErrProviderUnavailable, got %T", err)
	}
}

func TestPurposeContext(t *testing.T) {
	ctx := context.Background()
	if p := PurposeFrom(ctx); p != "unknown" {
		t.Fatalf("expected 'unknown', got %q", p)
	}

	ctx = WithPurpose(ctx, "quiz-gen")
	if p := PurposeFrom(ctx); p != "quiz-gen" {
		t.Fatalf("expected 'quiz-gen', got %q", p)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"anthropic without key", Config{Provider: ProviderAnthropic}, true},
		{"anthropic with key", Config{Provider: ProviderAnthropic, Anthropic: AnthropicConfig{APIKey: "sk-test"}}, false},
		{"openai without key", Config{Provider: ProviderOpenAI}, true},
		{"openai with key", Config{Provider: ProviderOpenAI, OpenAI: OpenAIConfig{APIKey: "sk-test"}}, false},
		{"gemini with key", Config{Provider: ProviderGemini, Gemini: GeminiConfig{APIKey: "g-test"}}, false},
		{"openrouter without key", Config{Provider: ProviderOpenRouter}, true},
		{"mock needs no key", Config{Provider: ProviderMock}, false},
		{"unknown provider", Config{Provider: "unknown"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
