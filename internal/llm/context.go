package llm

import "context"

type purposeKey struct{}

// WithPurpose labels every LLM call made with ctx, e.g. "quiz-gen". The
// label is stored with the request event and groups `llm stats`.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey{}, purpose)
}

// PurposeFrom returns the label set by WithPurpose, or "unknown".
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey{}).(string); ok && v != "" {
		return v
	}
	return "unknown"
}
