package recommend

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGateway scripts the LLM boundary for pipeline tests
type fakeGateway struct {
	available bool
	response  string
	err       error
	calls     int
}

func (f *fakeGateway) Available() bool { return f.available }

func (f *fakeGateway) Complete(ctx context.Context, system, user string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func newTestOrchestrator(gw Gateway) *Orchestrator {
	builder := NewContextBuilder(NewKnowledgeBase(), ClimateTropical).WithClock(fixedClock())
	return NewOrchestrator(gw, builder)
}

func TestRecommendationsGatewayUnavailable(t *testing.T) {
	gw := &fakeGateway{available: false}
	o := newTestOrchestrator(gw)

	profile := ClientProfile{ID: "c1", ChurnScore: 85, LastPurchaseDays: UnknownLastPurchase}
	result := o.Recommendations(context.Background(), profile, nil)

	require.NotNil(t, result)
	assert.Equal(t, SourceRules, result.Source)
	assert.GreaterOrEqual(t, len(result.Items), 2)
	assert.Equal(t, UrgencyAlta, result.Items[0].Urgency)
	assert.NotEmpty(t, result.Note)
	assert.Zero(t, gw.calls, "no LLM call when unavailable")
}

func TestRecommendationsLLMSuccess(t *testing.T) {
	gw := &fakeGateway{
		available: true,
		response:  `[{"type":"discount","description":"X"}]`,
	}
	o := newTestOrchestrator(gw)

	result := o.Recommendations(context.Background(), ClientProfile{ID: "c1", ChurnScore: 30}, nil)

	require.NotNil(t, result)
	assert.Equal(t, SourceLLM, result.Source)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "discount", result.Items[0].Type)
	assert.Equal(t, "X", result.Items[0].Description)
	// Defaults injected for omitted optional fields
	assert.Equal(t, UrgencyMedia, result.Items[0].Urgency)
	assert.Equal(t, "email", result.Items[0].Channel)
	assert.NotEmpty(t, result.Items[0].Reasoning)
	assert.Empty(t, result.Note)
}

func TestRecommendationsFencedResponse(t *testing.T) {
	gw := &fakeGateway{
		available: true,
		response:  "Here you go:\n```json\n[{\"type\":\"discount\",\"description\":\"X\"}]\n```",
	}
	o := newTestOrchestrator(gw)

	result := o.Recommendations(context.Background(), ClientProfile{ID: "c1"}, nil)

	assert.Equal(t, SourceLLM, result.Source)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "discount", result.Items[0].Type)
}

func TestRecommendationsEmptyArrayFallsBack(t *testing.T) {
	gw := &fakeGateway{available: true, response: "[]"}
	o := newTestOrchestrator(gw)

	result := o.Recommendations(context.Background(), ClientProfile{ID: "c1", ChurnScore: 50}, nil)

	assert.Equal(t, SourceRules, result.Source)
	assert.NotEmpty(t, result.Items)
}

func TestRecommendationsUpstreamErrorFallsBack(t *testing.T) {
	gw := &fakeGateway{available: true, err: errors.New("upstream timeout")}
	o := newTestOrchestrator(gw)

	result := o.Recommendations(context.Background(), ClientProfile{ID: "c1", ChurnScore: 90}, nil)

	assert.Equal(t, SourceRules, result.Source)
	assert.NotEmpty(t, result.Items)
	assert.NotEmpty(t, result.Note)
}

func TestRecommendationsMalformedResponseFallsBack(t *testing.T) {
	gw := &fakeGateway{available: true, response: "Sorry, I can't help with that."}
	o := newTestOrchestrator(gw)

	result := o.Recommendations(context.Background(), ClientProfile{ID: "c1"}, nil)

	assert.Equal(t, SourceRules, result.Source)
	assert.NotEmpty(t, result.Items)
}

func TestRecommendationsCancelledContextFallsBack(t *testing.T) {
	gw := &fakeGateway{available: true, response: `[{"type":"discount","description":"X"}]`}
	o := newTestOrchestrator(gw)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	result := o.Recommendations(ctx, ClientProfile{ID: "c1"}, nil)

	assert.Equal(t, SourceRules, result.Source)
	assert.NotEmpty(t, result.Items)
}

func TestRecommendationsSchemaCompleteness(t *testing.T) {
	gateways := []*fakeGateway{
		{available: false},
		{available: true, err: errors.New("boom")},
		{available: true, response: "not json"},
		{available: true, response: `[{"type":"a","description":"b"}]`},
	}
	for _, gw := range gateways {
		o := newTestOrchestrator(gw)
		result := o.Recommendations(context.Background(), ClientProfile{ID: "c1", ChurnScore: 70}, nil)
		require.NotEmpty(t, result.Items)
		for _, rec := range result.Items {
			assert.NotEmpty(t, rec.Type)
			assert.NotEmpty(t, rec.Description)
			assert.NotEmpty(t, rec.Urgency)
			assert.NotEmpty(t, rec.Channel)
			assert.NotEmpty(t, rec.Reasoning)
		}
	}
}

func TestSuggestionsLLMSuccess(t *testing.T) {
	gw := &fakeGateway{
		available: true,
		response:  `[{"title":"Pack camisas","description":"2x1 en camisas","priority":"alta"}]`,
	}
	o := newTestOrchestrator(gw)

	result := o.Suggestions(context.Background(), ClientProfile{ID: "c1"}, nil)

	assert.Equal(t, SourceLLM, result.Source)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "Pack camisas", result.Items[0].Title)
	assert.Equal(t, defaultSugType, result.Items[0].Type)
	assert.NotEmpty(t, result.Items[0].ExpectedImpact)
}

func TestSuggestionsDegradesToRules(t *testing.T) {
	gw := &fakeGateway{available: false}
	o := newTestOrchestrator(gw)

	result := o.Suggestions(context.Background(), ClientProfile{ID: "c1"}, nil)

	assert.Equal(t, SourceRules, result.Source)
	assert.NotEmpty(t, result.Items)
}

func TestSentimentLLMSuccess(t *testing.T) {
	gw := &fakeGateway{
		available: true,
		response:  `{"sentiment":"positive","confidence":0.92,"emotions":["joy"],"key_phrases":["gran servicio"]}`,
	}
	o := newTestOrchestrator(gw)

	result := o.Sentiment(context.Background(), "¡Me encantó la atención!")

	require.NotNil(t, result)
	assert.Equal(t, "positive", result.Sentiment)
	assert.InDelta(t, 0.92, result.Confidence, 0.001)
	assert.True(t, result.AIPowered)
	assert.Equal(t, []string{"joy"}, result.Emotions)
}

func TestSentimentInvalidEnumFallsBack(t *testing.T) {
	gw := &fakeGateway{available: true, response: `{"sentiment":"ecstatic","confidence":0.9}`}
	o := newTestOrchestrator(gw)

	result := o.Sentiment(context.Background(), "texto")

	assert.Equal(t, "neutral", result.Sentiment)
	assert.False(t, result.AIPowered)
}

func TestSentimentUnavailable(t *testing.T) {
	gw := &fakeGateway{available: false}
	o := newTestOrchestrator(gw)

	result := o.Sentiment(context.Background(), "texto")

	assert.Equal(t, "neutral", result.Sentiment)
	assert.Equal(t, 0.5, result.Confidence)
	assert.False(t, result.AIPowered)
}
