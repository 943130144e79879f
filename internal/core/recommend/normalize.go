package recommend

import "strings"

// Default values injected when the model omits optional fields. Kept in one
// place so schema changes stay centralized.
const (
	defaultUrgency   = UrgencyMedia
	defaultChannel   = "email"
	defaultReasoning = "Acción sugerida según el perfil del cliente"
	defaultSugType   = "product_recommendation"
	defaultPriority  = UrgencyMedia
	defaultImpact    = "Mejora esperada en retención y ticket promedio"
)

var validSentiments = map[string]bool{
	"positive": true,
	"negative": true,
	"neutral":  true,
}

func stringField(m map[string]interface{}, key string) string {
	if v, ok := m[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

func stringSliceField(m map[string]interface{}, key string) []string {
	raw, ok := m[key].([]interface{})
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}

// recommendationFromMap validates required fields (type, description) and
// fills the optional ones. Returns false when the element must be dropped.
func recommendationFromMap(m map[string]interface{}) (Recommendation, bool) {
	rec := Recommendation{
		Type:        stringField(m, "type"),
		Description: stringField(m, "description"),
		Urgency:     stringField(m, "urgency"),
		Channel:     stringField(m, "channel"),
		Reasoning:   stringField(m, "reasoning"),
	}
	if rec.Type == "" || rec.Description == "" {
		return Recommendation{}, false
	}
	if rec.Urgency != UrgencyAlta && rec.Urgency != UrgencyMedia && rec.Urgency != UrgencyBaja {
		rec.Urgency = defaultUrgency
	}
	if rec.Channel == "" {
		rec.Channel = defaultChannel
	}
	if rec.Reasoning == "" {
		rec.Reasoning = defaultReasoning
	}
	return rec, true
}

// suggestionFromMap validates required fields (title, description) and fills
// the optional ones.
func suggestionFromMap(m map[string]interface{}) (Suggestion, bool) {
	sug := Suggestion{
		Type:           stringField(m, "type"),
		Title:          stringField(m, "title"),
		Description:    stringField(m, "description"),
		Priority:       stringField(m, "priority"),
		ExpectedImpact: stringField(m, "expected_impact"),
	}
	if sug.Title == "" || sug.Description == "" {
		return Suggestion{}, false
	}
	if sug.Type == "" {
		sug.Type = defaultSugType
	}
	if sug.Priority != UrgencyAlta && sug.Priority != UrgencyMedia && sug.Priority != UrgencyBaja {
		sug.Priority = defaultPriority
	}
	if sug.ExpectedImpact == "" {
		sug.ExpectedImpact = defaultImpact
	}
	return sug, true
}

// sentimentFromMap requires a recognized sentiment enum value
func sentimentFromMap(m map[string]interface{}) (SentimentResult, bool) {
	sentiment := strings.ToLower(stringField(m, "sentiment"))
	if !validSentiments[sentiment] {
		return SentimentResult{}, false
	}

	confidence := 0.5
	if v, ok := m["confidence"].(float64); ok && v >= 0 && v <= 1 {
		confidence = v
	}

	return SentimentResult{
		Sentiment:  sentiment,
		Confidence: confidence,
		Emotions:   stringSliceField(m, "emotions"),
		KeyPhrases: stringSliceField(m, "key_phrases"),
		AIPowered:  true,
	}, true
}

// validRecommendations keeps elements with the required schema, normalized
func validRecommendations(items []map[string]interface{}) []Recommendation {
	recs := make([]Recommendation, 0, len(items))
	for _, m := range items {
		if rec, ok := recommendationFromMap(m); ok {
			recs = append(recs, rec)
		}
	}
	return recs
}

// validSuggestions keeps elements with the required schema, normalized
func validSuggestions(items []map[string]interface{}) []Suggestion {
	sugs := make([]Suggestion, 0, len(items))
	for _, m := range items {
		if sug, ok := suggestionFromMap(m); ok {
			sugs = append(sugs, sug)
		}
	}
	return sugs
}
