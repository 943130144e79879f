package recommend

import (
	"encoding/json"
	"math"
	"strings"
	"time"
)

// Climate hints for season tagging
const (
	ClimateTropical = "tropical"
	ClimateTemplado = "templado"
)

// Tropical season tags
const (
	SeasonRainy = "temporada de lluvias"
	SeasonDry   = "temporada seca"
)

type categoryFamily struct {
	name     string
	keywords []string
}

// Ordered family list; registration order breaks histogram ties
var categoryFamilies = []categoryFamily{
	{"camisas", []string{"camisa", "blusa", "camiseta", "polo", "top"}},
	{"pantalones", []string{"pantalon", "pantalón", "jean", "bermuda", "legging"}},
	{"vestidos", []string{"vestido", "falda"}},
	{"calzado", []string{"zapato", "zapatilla", "sandalia", "bota", "tenis"}},
	{"abrigos", []string{"chaqueta", "abrigo", "sueter", "suéter", "sudadera", "cardigan"}},
	{"bolsos", []string{"bolso", "cartera", "mochila"}},
	{"joyeria", []string{"collar", "pulsera", "anillo", "arete"}},
}

const categoryOther = "otros"

// ContextBuilder turns raw client data into a ClientContext. Pure given its
// injected clock; missing profile fields degrade to defaults, never an error.
type ContextBuilder struct {
	kb      *KnowledgeBase
	climate string
	now     func() time.Time
}

// NewContextBuilder creates a builder. climate selects the season partition
// ("templado" 4-way, anything else tropical 2-way).
func NewContextBuilder(kb *KnowledgeBase, climate string) *ContextBuilder {
	if climate == "" {
		climate = ClimateTropical
	}
	return &ContextBuilder{kb: kb, climate: climate, now: time.Now}
}

// WithClock overrides the clock (tests)
func (b *ContextBuilder) WithClock(now func() time.Time) *ContextBuilder {
	b.now = now
	return b
}

// Build aggregates profile and purchase history into a prompt-ready context
func (b *ContextBuilder) Build(profile ClientProfile, purchases []PurchaseRecord) *ClientContext {
	c := &ClientContext{
		Name:             profile.Name,
		Email:            profile.Email,
		Segment:          profile.Segment,
		ChurnScore:       profile.ChurnScore,
		LastPurchaseDays: profile.LastPurchaseDays,
		PurchaseCount:    len(purchases),
		Categories:       make(map[string]int),
		RecentItems:      []string{},
	}

	if c.Name == "" {
		c.Name = "desconocido"
	}
	if c.Segment == "" {
		c.Segment = "general"
	}
	if c.LastPurchaseDays < 0 {
		c.LastPurchaseDays = UnknownLastPurchase
	}

	for _, p := range purchases {
		c.TotalSpent += p.TotalPrice
		for _, item := range p.Items {
			c.Categories[InferCategory(item.Name)]++
			if len(c.RecentItems) < 5 {
				c.RecentItems = append(c.RecentItems, item.Name)
			}
		}
	}
	if c.PurchaseCount > 0 {
		c.AvgTicket = math.Round(c.TotalSpent/float64(c.PurchaseCount)*100) / 100
	}

	c.FavoriteCategory = favoriteCategory(c.Categories)
	c.BehaviorPattern = behaviorPattern(c.ChurnScore, c.LastPurchaseDays, c.PurchaseCount)
	c.Season = SeasonFor(b.climate, b.now())
	if b.kb != nil {
		c.BusinessContext = b.kb.GetContext(c)
	}

	return c
}

// InferCategory maps an item name to a category family. When several keywords
// match, the longest one wins; ties go to the earlier-registered family.
func InferCategory(itemName string) string {
	lower := strings.ToLower(itemName)

	best := categoryOther
	bestLen := 0
	for _, family := range categoryFamilies {
		for _, kw := range family.keywords {
			if len(kw) > bestLen && strings.Contains(lower, kw) {
				best = family.name
				bestLen = len(kw)
			}
		}
	}
	return best
}

// favoriteCategory is the histogram arg-max, ties broken by family order
func favoriteCategory(histogram map[string]int) string {
	if len(histogram) == 0 {
		return "general"
	}

	best := ""
	bestCount := 0
	for _, family := range categoryFamilies {
		if n := histogram[family.name]; n > bestCount {
			best = family.name
			bestCount = n
		}
	}
	if n := histogram[categoryOther]; n > bestCount {
		best = categoryOther
		bestCount = n
	}
	if best == "" {
		return "general"
	}
	return best
}

// behaviorPattern applies the fixed tier table, most severe first
func behaviorPattern(churnScore, lastPurchaseDays, purchaseCount int) string {
	switch {
	case churnScore >= 80 || lastPurchaseDays > 120:
		return TierCritical
	case churnScore >= 60 || lastPurchaseDays > 60:
		return TierAtRisk
	case churnScore >= 40 || lastPurchaseDays > 30:
		return TierAttention
	case purchaseCount >= 5 && lastPurchaseDays <= 30:
		return TierVIP
	default:
		return TierRegular
	}
}

// SeasonFor maps a point in time to a season tag. The temperate partition is
// the northern 4-way calendar split; the tropical one alternates rainy and dry
// stretches (Apr–May and Sep–Nov rain).
func SeasonFor(climate string, t time.Time) string {
	month := t.Month()

	if climate == ClimateTemplado {
		switch {
		case month == time.December || month <= time.February:
			return "invierno"
		case month <= time.May:
			return "primavera"
		case month <= time.August:
			return "verano"
		default:
			return "otoño"
		}
	}

	switch month {
	case time.April, time.May, time.September, time.October, time.November:
		return SeasonRainy
	default:
		return SeasonDry
	}
}

// JSON renders the context as a stable serialized block for prompts
func (c *ClientContext) JSON() string {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(data)
}
