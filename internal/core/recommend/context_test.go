package recommend

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() func() time.Time {
	return func() time.Time {
		return time.Date(2026, time.July, 15, 12, 0, 0, 0, time.UTC)
	}
}

func TestBuildAggregatesPurchases(t *testing.T) {
	builder := NewContextBuilder(NewKnowledgeBase(), ClimateTropical).WithClock(fixedClock())

	profile := ClientProfile{
		ID:               "c1",
		Name:             "Laura",
		Email:            "laura@example.com",
		ChurnScore:       25,
		LastPurchaseDays: 12,
	}
	purchases := []PurchaseRecord{
		{TotalPrice: 50, Items: []PurchaseItem{{Name: "Camisa blanca", Price: 50}}},
		{TotalPrice: 30, Items: []PurchaseItem{{Name: "Camiseta estampada", Price: 30}}},
		{TotalPrice: 80, Items: []PurchaseItem{{Name: "Jean clásico", Price: 80}}},
		{TotalPrice: 45, Items: []PurchaseItem{{Name: "Blusa de seda", Price: 45}}},
	}

	c := builder.Build(profile, purchases)

	assert.Equal(t, 4, c.PurchaseCount)
	assert.InDelta(t, 205.0, c.TotalSpent, 0.001)
	assert.InDelta(t, 51.25, c.AvgTicket, 0.001)
	assert.Equal(t, "camisas", c.FavoriteCategory)
	assert.Equal(t, 3, c.Categories["camisas"])
	assert.Equal(t, 1, c.Categories["pantalones"])
}

func TestBuildIsDeterministic(t *testing.T) {
	builder := NewContextBuilder(NewKnowledgeBase(), ClimateTropical).WithClock(fixedClock())

	profile := ClientProfile{ID: "c1", Name: "Ana", ChurnScore: 55, LastPurchaseDays: 40}
	purchases := []PurchaseRecord{
		{TotalPrice: 120, Items: []PurchaseItem{{Name: "Vestido floral", Price: 120}}},
	}

	first := builder.Build(profile, purchases)
	second := builder.Build(profile, purchases)

	require.Equal(t, first, second)
	assert.Equal(t, first.JSON(), second.JSON())
}

func TestBuildDefaultsOnMissingFields(t *testing.T) {
	builder := NewContextBuilder(nil, "").WithClock(fixedClock())

	c := builder.Build(ClientProfile{LastPurchaseDays: UnknownLastPurchase}, nil)

	assert.Equal(t, "desconocido", c.Name)
	assert.Equal(t, "general", c.Segment)
	assert.Equal(t, "general", c.FavoriteCategory)
	assert.Zero(t, c.TotalSpent)
	assert.Zero(t, c.AvgTicket)
	assert.Equal(t, TierCritical, c.BehaviorPattern) // 999 days > 120
}

func TestInferCategoryLongestMatch(t *testing.T) {
	cases := map[string]string{
		"Camisa de lino":       "camisas",
		"Camiseta básica":      "camisas",
		"Pantalón cargo":       "pantalones",
		"Jean slim":            "pantalones",
		"Vestido de fiesta":    "vestidos",
		"Falda midi":           "vestidos",
		"Zapatilla deportiva":  "calzado",
		"Bota de cuero":        "calzado",
		"Chaqueta impermeable": "abrigos",
		"Bolso tote":           "bolsos",
		"Collar de plata":      "joyeria",
		"Tarjeta de regalo":    "otros",
	}
	for name, want := range cases {
		assert.Equal(t, want, InferCategory(name), "item %q", name)
	}
}

func TestBehaviorPatternTiers(t *testing.T) {
	cases := []struct {
		churn, days, count int
		want               string
	}{
		{85, 10, 2, TierCritical},
		{10, 150, 2, TierCritical},
		{65, 10, 2, TierAtRisk},
		{10, 70, 2, TierAtRisk},
		{45, 10, 2, TierAttention},
		{10, 35, 2, TierAttention},
		{10, 20, 6, TierVIP},
		{10, 20, 2, TierRegular},
		{80, 10, 9, TierCritical}, // severity wins over vip
	}
	for _, tc := range cases {
		got := behaviorPattern(tc.churn, tc.days, tc.count)
		assert.Equal(t, tc.want, got, "churn=%d days=%d count=%d", tc.churn, tc.days, tc.count)
	}
}

func TestVIPScenario(t *testing.T) {
	builder := NewContextBuilder(NewKnowledgeBase(), ClimateTropical).WithClock(fixedClock())

	profile := ClientProfile{ID: "c2", Name: "Sofía", ChurnScore: 25, LastPurchaseDays: 20}
	purchases := make([]PurchaseRecord, 6)
	for i := range purchases {
		purchases[i] = PurchaseRecord{
			TotalPrice: 40,
			Items:      []PurchaseItem{{Name: "Camisa casual", Price: 40}},
		}
	}

	c := builder.Build(profile, purchases)

	assert.Equal(t, "camisas", c.FavoriteCategory)
	assert.Equal(t, TierVIP, c.BehaviorPattern)
}

func TestSeasonFor(t *testing.T) {
	jan := time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)
	apr := time.Date(2026, time.April, 10, 0, 0, 0, 0, time.UTC)
	jul := time.Date(2026, time.July, 10, 0, 0, 0, 0, time.UTC)
	oct := time.Date(2026, time.October, 10, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, SeasonDry, SeasonFor(ClimateTropical, jan))
	assert.Equal(t, SeasonRainy, SeasonFor(ClimateTropical, apr))
	assert.Equal(t, SeasonDry, SeasonFor(ClimateTropical, jul))
	assert.Equal(t, SeasonRainy, SeasonFor(ClimateTropical, oct))

	assert.Equal(t, "invierno", SeasonFor(ClimateTemplado, jan))
	assert.Equal(t, "primavera", SeasonFor(ClimateTemplado, apr))
	assert.Equal(t, "verano", SeasonFor(ClimateTemplado, jul))
	assert.Equal(t, "otoño", SeasonFor(ClimateTemplado, oct))
}
