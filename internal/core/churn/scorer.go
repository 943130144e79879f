package churn

import (
	"math"
	"time"
)

// UnknownLastPurchase is the sentinel for clients with no purchase history.
const UnknownLastPurchase = 999

// Input holds the purchase aggregates a score is computed from.
type Input struct {
	PurchaseCount    int
	LastPurchaseDays int
	TotalSpent       float64
	AvgTicket        float64
}

// Result is a computed churn assessment for a client.
type Result struct {
	Score            int       `json:"score"`
	LastPurchaseDays int       `json:"last_purchase_days"`
	Segment          string    `json:"segment"`
	ComputedAt       time.Time `json:"computed_at"`
}

// Scorer computes deterministic churn risk scores from purchase history.
// Higher scores mean higher risk of losing the client.
type Scorer struct {
	now func() time.Time
}

func NewScorer() *Scorer {
	return &Scorer{now: time.Now}
}

// WithClock overrides the scorer's clock.
func (s *Scorer) WithClock(now func() time.Time) *Scorer {
	s.now = now
	return s
}

// Score computes a churn risk score in [0, 100].
//
// Recency dominates: a client that has not bought in months is at risk
// no matter how much they spent before. Frequency and spend soften or
// sharpen the recency signal.
func (s *Scorer) Score(in Input) Result {
	res := Result{
		LastPurchaseDays: in.LastPurchaseDays,
		ComputedAt:       s.now(),
	}

	if in.PurchaseCount <= 0 || in.LastPurchaseDays >= UnknownLastPurchase {
		res.Score = 90
		res.LastPurchaseDays = UnknownLastPurchase
		res.Segment = "nuevo"
		return res
	}

	score := recencyPoints(in.LastPurchaseDays) +
		frequencyPoints(in.PurchaseCount) +
		monetaryPoints(in.TotalSpent)

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}

	res.Score = score
	res.Segment = segmentFor(in)
	return res
}

// recencyPoints maps days-since-last-purchase to up to 60 risk points.
func recencyPoints(days int) int {
	switch {
	case days <= 7:
		return 0
	case days <= 30:
		// 5..25 over the 8..30 window
		return 5 + int(math.Round(float64(days-8)*20.0/22.0))
	case days <= 60:
		return 30
	case days <= 120:
		return 45
	default:
		return 60
	}
}

// frequencyPoints maps lifetime purchase count to up to 25 risk points.
func frequencyPoints(count int) int {
	switch {
	case count >= 10:
		return 0
	case count >= 5:
		return 5
	case count >= 3:
		return 10
	case count >= 2:
		return 15
	default:
		return 25
	}
}

// monetaryPoints maps lifetime spend to up to 15 risk points.
func monetaryPoints(total float64) int {
	switch {
	case total >= 5000:
		return 0
	case total >= 1000:
		return 5
	case total >= 300:
		return 10
	default:
		return 15
	}
}

// segmentFor derives the behavioural segment used by the recommender.
func segmentFor(in Input) string {
	switch {
	case in.PurchaseCount >= 5 && in.LastPurchaseDays <= 30:
		return "vip"
	case in.PurchaseCount >= 3:
		return "frecuente"
	case in.PurchaseCount == 1:
		return "nuevo"
	default:
		return "general"
	}
}
