package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecommendationsPromptShape(t *testing.T) {
	var pc PromptComposer
	c := &ClientContext{Name: "Laura", FavoriteCategory: "camisas", Season: SeasonDry}

	system, user := pc.Recommendations(c)

	assert.Contains(t, system, "retención")
	assert.Contains(t, user, `"nombre": "Laura"`)
	assert.Contains(t, user, "alta|media|baja")
	assert.Contains(t, user, `"urgency"`)
	assert.Contains(t, user, "JSON ARRAY")
	assert.Contains(t, user, "NO uses recomendaciones genéricas")
}

func TestSuggestionsPromptShape(t *testing.T) {
	var pc PromptComposer
	c := &ClientContext{Name: "Ana"}

	_, user := pc.Suggestions(c)

	assert.Contains(t, user, `"expected_impact"`)
	assert.Contains(t, user, `"title"`)
	assert.Contains(t, user, "cross-sell")
}

func TestSentimentPromptEscapesText(t *testing.T) {
	var pc PromptComposer

	_, user := pc.Sentiment(`linea con "comillas" y
salto`)

	assert.Contains(t, user, `\"comillas\"`)
	assert.Contains(t, user, "positive|negative|neutral")
}
