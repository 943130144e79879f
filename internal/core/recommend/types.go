package recommend

import "time"

// Result provenance
const (
	SourceLLM   = "llm"
	SourceRules = "rules"
)

// Urgency / priority levels used across recommendations and suggestions
const (
	UrgencyAlta  = "alta"
	UrgencyMedia = "media"
	UrgencyBaja  = "baja"
)

// Behavior tiers derived from churn score and recency
const (
	TierCritical  = "critical"
	TierAtRisk    = "at_risk"
	TierAttention = "attention"
	TierVIP       = "vip"
	TierRegular   = "regular"
)

// UnknownLastPurchase is the sentinel for "never purchased / unknown"
const UnknownLastPurchase = 999

// ClientProfile is the read-only client record supplied by the store layer
type ClientProfile struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	Segment          string `json:"segment"`
	ChurnScore       int    `json:"churn_score"`
	LastPurchaseDays int    `json:"last_purchase_days"`
}

// PurchaseItem is a single line item within a purchase
type PurchaseItem struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// PurchaseRecord is one historical purchase, bounded by the caller (≤20 most recent)
type PurchaseRecord struct {
	ClientID    string         `json:"client_id"`
	TotalPrice  float64        `json:"total_price"`
	PurchasedAt time.Time      `json:"purchased_at"`
	Items       []PurchaseItem `json:"items"`
}

// ClientContext is the compact, prompt-ready view of a client. It is a
// deterministic function of (profile, purchases, knowledge base, clock) and
// rebuilt on every request.
type ClientContext struct {
	Name             string         `json:"nombre"`
	Email            string         `json:"email"`
	Segment          string         `json:"segmento"`
	ChurnScore       int            `json:"riesgo_churn"`
	LastPurchaseDays int            `json:"dias_sin_comprar"`
	PurchaseCount    int            `json:"compras_realizadas"`
	TotalSpent       float64        `json:"total_gastado"`
	AvgTicket        float64        `json:"ticket_promedio"`
	Categories       map[string]int `json:"categorias"`
	FavoriteCategory string         `json:"categoria_preferida"`
	RecentItems      []string       `json:"productos_recientes"`
	BehaviorPattern  string         `json:"patron_comportamiento"`
	Season           string         `json:"temporada"`
	BusinessContext  string         `json:"contexto_negocio"`
}

// Recommendation is one concrete retention action for a client
type Recommendation struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Urgency     string `json:"urgency"`
	Channel     string `json:"channel"`
	Reasoning   string `json:"reasoning"`
}

// Suggestion is one sales/engagement idea for a client
type Suggestion struct {
	Type           string `json:"type"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	Priority       string `json:"priority"`
	ExpectedImpact string `json:"expected_impact"`
}

// SentimentResult is a structured sentiment read of free text
type SentimentResult struct {
	Sentiment  string   `json:"sentiment"`
	Confidence float64  `json:"confidence"`
	Emotions   []string `json:"emotions"`
	KeyPhrases []string `json:"key_phrases"`
	AIPowered  bool     `json:"ai_powered"`
}

// RecommendationResult is what callers always get back: a non-empty item list,
// its provenance, and an optional diagnostic note when degradation occurred.
type RecommendationResult struct {
	ClientID string           `json:"client_id,omitempty"`
	Items    []Recommendation `json:"items"`
	Source   string           `json:"source"`
	Note     string           `json:"note,omitempty"`
}

// SuggestionResult mirrors RecommendationResult for the suggestions task
type SuggestionResult struct {
	ClientID string       `json:"client_id,omitempty"`
	Items    []Suggestion `json:"items"`
	Source   string       `json:"source"`
	Note     string       `json:"note,omitempty"`
}
