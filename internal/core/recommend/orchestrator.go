package recommend

import (
	"context"

	"github.com/rs/zerolog/log"
)

// Gateway is the LLM boundary the orchestrator depends on. Satisfied by
// *llm.Gateway; tests substitute a fake.
type Gateway interface {
	Available() bool
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Degradation notes attached to rule-sourced results
const (
	noteUnavailable = "IA no disponible, resultado generado por reglas"
	noteUpstream    = "Error consultando el modelo, resultado generado por reglas"
	noteMalformed   = "Respuesta del modelo no parseable, resultado generado por reglas"
	noteEmpty       = "El modelo no produjo elementos válidos, resultado generado por reglas"
)

// Orchestrator sequences context building, prompting, the LLM call, parsing
// and validation, and guarantees a well-formed result. It is the only layer
// allowed to swallow gateway/parser errors: every failure becomes a fallback
// invocation, never an error to the caller.
type Orchestrator struct {
	gateway  Gateway
	builder  *ContextBuilder
	composer PromptComposer
	parser   ResponseParser
	fallback FallbackEngine
}

// NewOrchestrator wires the pipeline around a gateway and context builder
func NewOrchestrator(gateway Gateway, builder *ContextBuilder) *Orchestrator {
	return &Orchestrator{gateway: gateway, builder: builder}
}

// Recommendations produces 2-5 retention actions for a client. Never fails:
// any LLM-path breakdown degrades to the rules path with Source="rules".
func (o *Orchestrator) Recommendations(ctx context.Context, profile ClientProfile, purchases []PurchaseRecord) *RecommendationResult {
	cctx := o.builder.Build(profile, purchases)

	if !o.gateway.Available() {
		return o.rulesRecommendations(profile, cctx.Season, noteUnavailable)
	}

	system, user := o.composer.Recommendations(cctx)
	raw, err := o.gateway.Complete(ctx, system, user)
	if err != nil || ctx.Err() != nil {
		log.Warn().Err(err).Str("client_id", profile.ID).Msg("LLM call failed, falling back to rules")
		return o.rulesRecommendations(profile, cctx.Season, noteUpstream)
	}

	items, err := o.parser.Parse(raw)
	if err != nil {
		log.Warn().Err(err).Str("client_id", profile.ID).Msg("unparseable LLM response, falling back to rules")
		return o.rulesRecommendations(profile, cctx.Season, noteMalformed)
	}

	recs := validRecommendations(items)
	if len(recs) == 0 {
		return o.rulesRecommendations(profile, cctx.Season, noteEmpty)
	}

	return &RecommendationResult{
		ClientID: profile.ID,
		Items:    recs,
		Source:   SourceLLM,
	}
}

// Suggestions produces sales/engagement ideas with the same degrade policy
func (o *Orchestrator) Suggestions(ctx context.Context, profile ClientProfile, purchases []PurchaseRecord) *SuggestionResult {
	cctx := o.builder.Build(profile, purchases)

	if !o.gateway.Available() {
		return o.rulesSuggestions(profile, noteUnavailable)
	}

	system, user := o.composer.Suggestions(cctx)
	raw, err := o.gateway.Complete(ctx, system, user)
	if err != nil || ctx.Err() != nil {
		log.Warn().Err(err).Str("client_id", profile.ID).Msg("LLM call failed, falling back to rules")
		return o.rulesSuggestions(profile, noteUpstream)
	}

	items, err := o.parser.Parse(raw)
	if err != nil {
		return o.rulesSuggestions(profile, noteMalformed)
	}

	sugs := validSuggestions(items)
	if len(sugs) == 0 {
		return o.rulesSuggestions(profile, noteEmpty)
	}

	return &SuggestionResult{
		ClientID: profile.ID,
		Items:    sugs,
		Source:   SourceLLM,
	}
}

// Sentiment analyzes free text. Input constraints (non-empty, length cap) are
// enforced by the caller before this point.
func (o *Orchestrator) Sentiment(ctx context.Context, text string) *SentimentResult {
	if !o.gateway.Available() {
		result := o.fallback.Sentiment()
		return &result
	}

	system, user := o.composer.Sentiment(text)
	raw, err := o.gateway.Complete(ctx, system, user)
	if err != nil || ctx.Err() != nil {
		log.Warn().Err(err).Msg("LLM sentiment call failed, falling back to neutral")
		result := o.fallback.Sentiment()
		return &result
	}

	items, err := o.parser.Parse(raw)
	if err != nil || len(items) == 0 {
		result := o.fallback.Sentiment()
		return &result
	}

	result, ok := sentimentFromMap(items[0])
	if !ok {
		fallback := o.fallback.Sentiment()
		return &fallback
	}
	return &result
}

func (o *Orchestrator) rulesRecommendations(profile ClientProfile, season, note string) *RecommendationResult {
	return &RecommendationResult{
		ClientID: profile.ID,
		Items:    o.fallback.Recommendations(profile.ChurnScore, season),
		Source:   SourceRules,
		Note:     note,
	}
}

func (o *Orchestrator) rulesSuggestions(profile ClientProfile, note string) *SuggestionResult {
	return &SuggestionResult{
		ClientID: profile.ID,
		Items:    o.fallback.Suggestions(),
		Source:   SourceRules,
		Note:     note,
	}
}
