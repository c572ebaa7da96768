package llm

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
)

// MockResponse is one scripted reply of a MockProvider.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error

	// StopReason "max_tokens" makes Generate fail with ErrMaxTokensExceeded.
	StopReason string
}

// MockProvider replays scripted responses in order and records every
// request it receives. It is the provider selected by
// STUDYGENIE_LLM_PROVIDER=mock and the one every test uses.
type MockProvider struct {
	mu      sync.Mutex
	pending []MockResponse
	Calls   []Request
}

// NewMockProvider creates a MockProvider scripted with responses.
func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{pending: responses}
}

// Generate pops the next scripted response. Once the script is used up
// every call fails with ErrProviderUnavailable.
func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)
	if len(m.pending) == 0 {
		return nil, &ErrProviderUnavailable{Err: errors.New("mock script exhausted")}
	}
	next := m.pending[0]
	m.pending = m.pending[1:]

	switch {
	case next.Err != nil:
		return nil, next.Err
	case next.StopReason == stopMaxTokens:
		return nil, &ErrMaxTokensExceeded{Content: next.Content}
	}
	return &Response{
		Content:    next.Content,
		Usage:      next.Usage,
		Model:      ProviderMock,
		StopReason: stopEnd,
	}, nil
}

func (m *MockProvider) ModelID() string {
	return ProviderMock
}

// AddResponse appends to the script.
func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pending = append(m.pending, resp)
}

// CallCount returns the number of Generate calls made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
