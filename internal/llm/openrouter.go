package llm

import (
	"fmt"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

const (
	defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"
	openRouterReferer        = "https://github.com/aryan24-cs/StudyGenie"
	openRouterTitle          = "StudyGenie"
)

// NewOpenRouterProvider creates a provider targeting the OpenRouter API.
// OpenRouter speaks the OpenAI wire format, so the OpenAI client is reused
// with OpenRouter's attribution headers added to every request. Model names
// are passed through unchanged ("vendor/model").
func NewOpenRouterProvider(cfg OpenRouterConfig) (*OpenAIProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openrouter API key is required")
	}

	config := openai.DefaultConfig(cfg.APIKey)
	config.BaseURL = defaultOpenRouterBaseURL
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}
	config.HTTPClient = &http.Client{
		Transport: &headerTransport{
			base: http.DefaultTransport,
			headers: map[string]string{
				"HTTP-Referer": openRouterReferer,
				"X-Title":      openRouterTitle,
			},
		},
	}

	return newOpenAIProvider(config, cfg.Model), nil
}

// headerTransport sets fixed headers on outgoing requests.
type headerTransport struct {
	base    http.RoundTripper
	headers map[string]string
}

func (t *headerTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	r = r.Clone(r.Context())
	for k, v := range t.headers {
		r.Header.Set(k, v)
	}
	return t.base.RoundTrip(r)
}
