package llm

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/aryan24-cs/StudyGenie/internal/store"
)

// LoggingProvider records every call it forwards as an llm_request_events
// row. It sits inside the retry loop, so each attempt is one row.
type LoggingProvider struct {
	inner     Provider
	name      string
	eventRepo store.EventRepo
}

// WithLogging wraps a Provider with event logging. name is the provider
// name recorded with each event ("anthropic", "openrouter", ...).
func WithLogging(p Provider, name string, repo store.EventRepo) Provider {
	return &LoggingProvider{inner: p, name: name, eventRepo: repo}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)

	event := store.LLMRequestEventData{
		Provider:    l.name,
		Model:       l.inner.ModelID(),
		Purpose:     PurposeFrom(ctx),
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		RequestBody: describeRequest(req),
	}
	if resp != nil {
		event.InputTokens = resp.Usage.InputTokens
		event.OutputTokens = resp.Usage.OutputTokens
		event.ResponseBody = string(resp.Content)
		if resp.Model != "" {
			event.Model = resp.Model
		}
	}
	if err != nil {
		event.ErrorMessage = errorKind(err) + ": " + err.Error()
	}

	// Written even after ctx expired. A failed write is reported, never
	// returned.
	if logErr := l.eventRepo.AppendLLMRequest(context.WithoutCancel(ctx), event); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log LLM request event: %v\n", logErr)
	}
	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

// describeRequest renders a request for `studygenie llm view`. The schema
// is named rather than dumped; its definition lives in the code.
func describeRequest(req Request) string {
	var b strings.Builder
	if req.System != "" {
		fmt.Fprintf(&b, "[system]\n%s\n\n", req.System)
	}
	for _, m := range req.Messages {
		fmt.Fprintf(&b, "[%s]\n%s\n\n", m.Role, m.Content)
	}
	if req.Schema != nil {
		fmt.Fprintf(&b, "[schema: %s]\n", req.Schema.Name)
	}
	fmt.Fprintf(&b, "[max_tokens: %d, temperature: %.2f]\n", req.MaxTokens, req.Temperature)
	return b.String()
}

// errorKind is a short label for err used to group failures in event logs.
func errorKind(err error) string {
	var (
		rl       *ErrRateLimit
		rejected *ErrRequestRejected
		invalid  *ErrInvalidResponse
		maxTok   *ErrMaxTokensExceeded
		unavail  *ErrProviderUnavailable
	)
	switch {
	case errors.Is(err, context.Canceled):
		return "canceled"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.As(err, &rl):
		return "rate_limit"
	case errors.As(err, &rejected):
		return "rejected"
	case errors.As(err, &invalid):
		return "invalid_response"
	case errors.As(err, &maxTok):
		return "max_tokens"
	case errors.As(err, &unavail):
		return "unavailable"
	default:
		return "error"
	}
}
