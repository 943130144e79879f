package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePureJSONArray(t *testing.T) {
	var p ResponseParser

	items, err := p.Parse(`[{"type":"discount","description":"X"},{"type":"call","description":"Y"}]`)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "discount", items[0]["type"])
	assert.Equal(t, "Y", items[1]["description"])
}

func TestParseFencedJSON(t *testing.T) {
	var p ResponseParser

	raw := "```json\n[{\"type\":\"discount\",\"description\":\"X\"}]\n```"
	items, err := p.Parse(raw)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "discount", items[0]["type"])

	// Same array without fences parses identically
	plain, err := p.Parse(`[{"type":"discount","description":"X"}]`)
	require.NoError(t, err)
	assert.Equal(t, plain, items)
}

func TestParseJSONWithProse(t *testing.T) {
	var p ResponseParser

	raw := "Here you go:\n```json\n[{\"type\":\"discount\",\"description\":\"X\"}]\n```\nHope that helps!"
	items, err := p.Parse(raw)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "X", items[0]["description"])
}

func TestParseSingleObjectNormalizedToList(t *testing.T) {
	var p ResponseParser

	items, err := p.Parse(`{"sentiment":"positive","confidence":0.9}`)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "positive", items[0]["sentiment"])
}

func TestParseEmptyArrayIsSuccess(t *testing.T) {
	var p ResponseParser

	items, err := p.Parse("[]")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestParseDropsNonObjectElements(t *testing.T) {
	var p ResponseParser

	items, err := p.Parse(`[{"type":"a","description":"b"}, "loose string", 42]`)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "a", items[0]["type"])
}

func TestParseMalformed(t *testing.T) {
	var p ResponseParser

	_, err := p.Parse("I could not produce a recommendation today.")
	assert.ErrorIs(t, err, ErrMalformedResponse)

	_, err = p.Parse("")
	assert.ErrorIs(t, err, ErrMalformedResponse)

	// Scalars parse as JSON but carry no records
	_, err = p.Parse("42")
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestNormalizeFillsDefaults(t *testing.T) {
	recs := validRecommendations([]map[string]interface{}{
		{"type": "discount", "description": "Cupón del 20% en camisas"},
	})
	require.Len(t, recs, 1)
	assert.Equal(t, UrgencyMedia, recs[0].Urgency)
	assert.Equal(t, "email", recs[0].Channel)
	assert.NotEmpty(t, recs[0].Reasoning)
}

func TestNormalizeDropsIncompleteElements(t *testing.T) {
	recs := validRecommendations([]map[string]interface{}{
		{"type": "discount"},                      // missing description
		{"description": "huérfana"},               // missing type
		{"type": "call", "description": "Llamar"}, // complete
	})
	require.Len(t, recs, 1)
	assert.Equal(t, "call", recs[0].Type)

	sugs := validSuggestions([]map[string]interface{}{
		{"title": "Pack"}, // missing description
		{"title": "Pack", "description": "2x1 camisas"}, // complete
	})
	require.Len(t, sugs, 1)
	assert.Equal(t, defaultSugType, sugs[0].Type)
	assert.Equal(t, UrgencyMedia, sugs[0].Priority)
}
