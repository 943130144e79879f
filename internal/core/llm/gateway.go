package llm

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

const defaultTimeout = 20 * time.Second

// Gateway wraps a provider behind an availability flag. The flag is computed
// once at construction and cached for the process lifetime; a gateway built
// without a credential is a permanent no-op that reports Available()==false
// instead of failing at startup.
type Gateway struct {
	provider Provider
	timeout  time.Duration
}

// NewGateway builds a gateway from provider config. A missing credential is
// not fatal: AI features degrade to the rules path.
func NewGateway(cfg *ProviderConfig) *Gateway {
	if cfg.Model == "" {
		cfg.Model = DefaultModel(cfg.Type)
	}

	provider, err := NewProvider(cfg)
	if err != nil {
		log.Warn().Err(err).Msg("LLM provider not configured, AI features disabled")
		return &Gateway{timeout: defaultTimeout}
	}

	log.Info().
		Str("provider", provider.Name()).
		Str("model", cfg.Model).
		Msg("🤖 LLM gateway ready")

	return &Gateway{provider: provider, timeout: defaultTimeout}
}

// NewGatewayWithProvider builds a gateway around a custom provider (tests)
func NewGatewayWithProvider(provider Provider) *Gateway {
	return &Gateway{provider: provider, timeout: defaultTimeout}
}

// Available reports whether a provider was initialized at construction
func (g *Gateway) Available() bool {
	return g.provider != nil
}

// Complete invokes the provider with a bounded timeout. No retries here:
// degrade-or-succeed is the caller's policy.
func (g *Gateway) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if g.provider == nil {
		return "", ErrUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	return g.provider.Complete(ctx, systemPrompt, userPrompt)
}

// ProviderName returns the active provider name, or "none"
func (g *Gateway) ProviderName() string {
	if g.provider == nil {
		return "none"
	}
	return g.provider.Name()
}
