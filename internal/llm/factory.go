package llm

import (
	"context"
	"fmt"
	"os"

	"github.com/aryan24-cs/StudyGenie/internal/store"
)

// NewProvider creates a Provider from configuration, wrapped as
// caller -> timeout -> retry -> logging -> base. Every attempt is logged
// and the timeout bounds the whole retry loop.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var base Provider
	var err error

	switch cfg.Provider {
	case ProviderAnthropic:
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case ProviderOpenAI:
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case ProviderGemini:
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case ProviderOpenRouter:
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case ProviderMock:
		return NewMockProvider(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	var p Provider = base
	if eventRepo != nil {
		p = WithLogging(p, cfg.Provider, eventRepo)
	}
	p = WithRetry(p, cfg.Retry)
	if cfg.Timeout > 0 {
		p = WithTimeout(p, cfg.Timeout)
	}
	return p, nil
}

// NewProviderFromEnv resolves the configuration from the environment and
// builds a provider. An explicit STUDYGENIE_LLM_PROVIDER wins; otherwise
// the first standard API key found selects the provider.
func NewProviderFromEnv(ctx context.Context, eventRepo store.EventRepo) (Provider, error) {
	cfg, err := ConfigFromEnv()
	if err != nil {
		return nil, err
	}
	if os.Getenv(envPrefix+"LLM_PROVIDER") == "" {
		if discovered, ok := DiscoverConfig(); ok {
			discovered.Timeout = cfg.Timeout
			cfg = discovered
		}
	}
	return NewProvider(ctx, cfg, eventRepo)
}
