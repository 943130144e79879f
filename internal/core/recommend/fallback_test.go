package recommend

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackRecommendationsTotality(t *testing.T) {
	var fb FallbackEngine

	for churn := 0; churn <= 100; churn++ {
		recs := fb.Recommendations(churn, SeasonRainy)
		require.NotEmpty(t, recs, "churn=%d", churn)
		for _, rec := range recs {
			assert.NotEmpty(t, rec.Type, "churn=%d", churn)
			assert.NotEmpty(t, rec.Description, "churn=%d", churn)
			assert.NotEmpty(t, rec.Urgency, "churn=%d", churn)
			assert.NotEmpty(t, rec.Channel, "churn=%d", churn)
			assert.NotEmpty(t, rec.Reasoning, "churn=%d", churn)
		}
	}
}

func TestFallbackCriticalTier(t *testing.T) {
	var fb FallbackEngine

	recs := fb.Recommendations(85, "")
	require.GreaterOrEqual(t, len(recs), 2)
	assert.Equal(t, UrgencyAlta, recs[0].Urgency)
	assert.Equal(t, "llamada", recs[0].Channel)
}

func TestFallbackLowerTiersUrgency(t *testing.T) {
	var fb FallbackEngine

	for _, rec := range fb.Recommendations(45, SeasonDry) {
		assert.NotEqual(t, UrgencyAlta, rec.Urgency)
	}
	for _, rec := range fb.Recommendations(10, SeasonDry) {
		assert.NotEqual(t, UrgencyAlta, rec.Urgency)
	}
}

func TestFallbackSeasonAppearsInDescriptions(t *testing.T) {
	var fb FallbackEngine

	found := false
	for _, rec := range fb.Recommendations(85, SeasonRainy) {
		if strings.Contains(rec.Description, SeasonRainy) {
			found = true
		}
	}
	assert.True(t, found, "expected at least one seasonal description")
}

func TestFallbackSuggestions(t *testing.T) {
	var fb FallbackEngine

	sugs := fb.Suggestions()
	require.NotEmpty(t, sugs)
	for _, sug := range sugs {
		assert.NotEmpty(t, sug.Type)
		assert.NotEmpty(t, sug.Title)
		assert.NotEmpty(t, sug.Description)
		assert.NotEmpty(t, sug.Priority)
		assert.NotEmpty(t, sug.ExpectedImpact)
	}
}

func TestFallbackSentiment(t *testing.T) {
	var fb FallbackEngine

	s := fb.Sentiment()
	assert.Equal(t, "neutral", s.Sentiment)
	assert.Equal(t, 0.5, s.Confidence)
	assert.False(t, s.AIPowered)
	assert.NotNil(t, s.Emotions)
	assert.NotNil(t, s.KeyPhrases)
}
