package llm

import (
	"context"
	"fmt"
)

// Client abstracts the language model so providers can be swapped or mocked.
// One prompt in, one completion out. Callers never retry.
type Client interface {
	Complete(ctx context.Context, model, prompt string) (string, error)
}

// Settings carries the provider configuration resolved from the environment.
type Settings struct {
	Provider string
	APIKey   string
	BaseURL  string
}

// New builds the client for the configured provider.
func New(cfg Settings) (Client, error) {
	switch cfg.Provider {
	case "openai":
		return NewOpenAI(cfg)
	case "deepseek":
		// DeepSeek exposes an OpenAI-compatible API; base_url selects the endpoint.
		if cfg.BaseURL == "" {
			return nil, fmt.Errorf("llm provider deepseek requires LLM_BASE_URL (OpenAI-compatible endpoint)")
		}
		return NewOpenAI(cfg)
	case "gemini":
		return NewGemini(cfg)
	case "mock":
		return Mock{}, nil
	default:
		return nil, fmt.Errorf("llm provider %s not supported", cfg.Provider)
	}
}
