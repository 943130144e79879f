package llm

import (
	"context"
	"errors"
	"fmt"
)

// ErrUnavailable is returned when no provider credential was configured.
var ErrUnavailable = errors.New("llm: no provider configured")

// Provider is a chat-completion backend. Implementations do plain I/O and
// carry no business logic.
type Provider interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	Name() string
}

// ProviderType selects the backend in the factory
type ProviderType string

const (
	ProviderOpenAI ProviderType = "openai"
	ProviderGroq   ProviderType = "groq"
	ProviderGemini ProviderType = "gemini"
)

// ProviderConfig holds credentials and generation settings for the factory
type ProviderConfig struct {
	Type ProviderType

	OpenAIKey string
	GroqKey   string
	GeminiKey string

	Model       string
	Temperature float32
	MaxTokens   int
}

// NewProvider builds the configured provider. A missing credential for the
// selected type is an error; callers that want soft degradation should use
// NewGateway, which folds this into Available().
func NewProvider(cfg *ProviderConfig) (Provider, error) {
	switch cfg.Type {
	case ProviderOpenAI:
		if cfg.OpenAIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required")
		}
		return NewOpenAIProvider(cfg.OpenAIKey, cfg.Model, cfg.Temperature, cfg.MaxTokens), nil

	case ProviderGroq:
		if cfg.GroqKey == "" {
			return nil, fmt.Errorf("GROQ_API_KEY is required")
		}
		return NewGroqProvider(cfg.GroqKey, cfg.Model, cfg.Temperature, cfg.MaxTokens), nil

	case ProviderGemini:
		if cfg.GeminiKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is required")
		}
		return NewGeminiProvider(cfg.GeminiKey, cfg.Model, cfg.Temperature, cfg.MaxTokens), nil

	default:
		return nil, fmt.Errorf("unknown LLM provider type: %s", cfg.Type)
	}
}

// DefaultModel returns the per-provider default model name
func DefaultModel(t ProviderType) string {
	switch t {
	case ProviderGroq:
		return "llama-3.1-70b-versatile"
	case ProviderGemini:
		return "gemini-2.5-flash"
	default:
		return "gpt-4o-mini"
	}
}
