package llm

import (
	"fmt"
	"os"
	"time"
)

// Provider names accepted in Config.Provider.
const (
	ProviderAnthropic  = "anthropic"
	ProviderOpenAI     = "openai"
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
	ProviderMock       = "mock"
)

const envPrefix = "STUDYGENIE_"

// Config holds all LLM provider configuration.
type Config struct {
	// Provider selects which LLM provider to use, one of the Provider*
	// constants.
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout bounds a single Generate call including retries.
	Timeout time.Duration
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey  string
	Model   string // Default: "claude-haiku"
	BaseURL string
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string
	Model   string // Default: "gpt-4o-mini"
	BaseURL string // Optional. Any OpenAI-compatible endpoint.
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string
	Model  string // Default: "gemini-flash"
}

// OpenRouterConfig holds OpenRouter-specific configuration.
type OpenRouterConfig struct {
	APIKey  string
	Model   string // Default: "google/gemini-2.5-flash"
	BaseURL string // Default: "https://openrouter.ai/api/v1"
}

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns a Config with sensible defaults. Quiz generation
// returns long summaries, so the timeout is generous.
func DefaultConfig() Config {
	return Config{
		Provider:   ProviderAnthropic,
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.5-flash"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 90 * time.Second,
	}
}

// ConfigFromEnv builds a Config from STUDYGENIE_* environment variables,
// falling back to defaults for unset values. It fails only when
// STUDYGENIE_LLM_TIMEOUT is not a valid duration.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	for name, dst := range map[string]*string{
		"LLM_PROVIDER":       &cfg.Provider,
		"ANTHROPIC_API_KEY":  &cfg.Anthropic.APIKey,
		"ANTHROPIC_MODEL":    &cfg.Anthropic.Model,
		"ANTHROPIC_BASE_URL": &cfg.Anthropic.BaseURL,
		"OPENAI_API_KEY":     &cfg.OpenAI.APIKey,
		"OPENAI_MODEL":       &cfg.OpenAI.Model,
		"OPENAI_BASE_URL":    &cfg.OpenAI.BaseURL,
		"GEMINI_API_KEY":     &cfg.Gemini.APIKey,
		"GEMINI_MODEL":       &cfg.Gemini.Model,
		"OPENROUTER_API_KEY": &cfg.OpenRouter.APIKey,
		"OPENROUTER_MODEL":   &cfg.OpenRouter.Model,
	} {
		if v := os.Getenv(envPrefix + name); v != "" {
			*dst = v
		}
	}

	if v := os.Getenv(envPrefix + "LLM_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return cfg, fmt.Errorf("%sLLM_TIMEOUT: invalid duration %q", envPrefix, v)
		}
		cfg.Timeout = d
	}

	return cfg, nil
}

// DiscoverConfig probes standard API key env vars in priority order
// (Gemini, OpenAI, Anthropic, OpenRouter) and returns a Config for the
// first provider whose key is found. Returns (Config{}, false) if none found.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()

	if k := os.Getenv("GEMINI_API_KEY"); k != "" {
		cfg.Provider = ProviderGemini
		cfg.Gemini.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("OPENAI_API_KEY"); k != "" {
		cfg.Provider = ProviderOpenAI
		cfg.OpenAI.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("ANTHROPIC_API_KEY"); k != "" {
		cfg.Provider = ProviderAnthropic
		cfg.Anthropic.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("OPENROUTER_API_KEY"); k != "" {
		cfg.Provider = ProviderOpenRouter
		cfg.OpenRouter.APIKey = k
		return cfg, true
	}

	return Config{}, false
}

// Validate checks that the selected provider has its required API key set.
func (c Config) Validate() error {
	var key string
	switch c.Provider {
	case ProviderAnthropic:
		key = c.Anthropic.APIKey
	case ProviderOpenAI:
		key = c.OpenAI.APIKey
	case ProviderGemini:
		key = c.Gemini.APIKey
	case ProviderOpenRouter:
		key = c.OpenRouter.APIKey
	case ProviderMock:
		return nil
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if key == "" {
		return fmt.Errorf("%s%s_API_KEY is required for the %s provider",
			envPrefix, envName(c.Provider), c.Provider)
	}
	return nil
}

func envName(provider string) string {
	switch provider {
	case ProviderOpenAI:
		return "OPENAI"
	case ProviderGemini:
		return "GEMINI"
	case ProviderOpenRouter:
		return "OPENROUTER"
	default:
		return "ANTHROPIC"
	}
}

// resolveModel expands a short model name. Unknown names are taken to be
// full model IDs and pass through.
func resolveModel(name string, models map[string]string) string {
	if id, ok := models[name]; ok {
		return id
	}
	return name
}
