package llm

import (
	"errors"
	"testing"
)

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain json", `{"a":1}`, `{"a":1}`},
		{"surrounding space", "  \n{\"a\":1}\n ", `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"fence with trailing space", "```json\n{\"a\":1}\n```\n\n", `{"a":1}`},
		{"single line fence", "```{\"a\":1}```", `{"a":1}`},
		{"unterminated fence", "```json\n{\"a\":1}", `{"a":1}`},
		{"inner backticks kept", "```\nuse `x`\n```", "use `x`"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripCodeFence(tt.in); got != tt.want {
				t.Errorf("StripCodeFence(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFinalize(t *testing.T) {
	t.Run("fenced content validated and compacted", func(t *testing.T) {
		got, err := finalize(Request{Schema: testSchema()}, "```json\n{\"question\": \"Q?\", \"answer\": \"A\"}\n```", stopEnd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(got) != `{"question":"Q?","answer":"A"}` {
			t.Errorf("content = %s", got)
		}
	})

	t.Run("no schema keeps text", func(t *testing.T) {
		got, err := finalize(Request{}, "  hello  ", stopEnd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(got) != "hello" {
			t.Errorf("content = %q", got)
		}
	})

	t.Run("truncated", func(t *testing.T) {
		_, err := finalize(Request{Schema: testSchema()}, `{"question": "Q`, stopMaxTokens)
		var maxTok *ErrMaxTokensExceeded
		if !errors.As(err, &maxTok) {
			t.Fatalf("expected ErrMaxTokensExceeded, got %T (%v)", err, err)
		}
		if string(maxTok.Content) != `{"question": "Q` {
			t.Errorf("partial content = %s", maxTok.Content)
		}
	})

	t.Run("schema mismatch", func(t *testing.T) {
		_, err := finalize(Request{Schema: testSchema()}, `{"kind": "mc"}`, stopEnd)
		var inv *ErrInvalidResponse
		if !errors.As(err, &inv) {
			t.Fatalf("expected ErrInvalidResponse, got %T (%v)", err, err)
		}
	})
}
