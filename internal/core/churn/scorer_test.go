package churn

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testScorer() *Scorer {
	return NewScorer().WithClock(func() time.Time {
		return time.Date(2026, time.July, 15, 12, 0, 0, 0, time.UTC)
	})
}

func TestScoreNoHistory(t *testing.T) {
	res := testScorer().Score(Input{PurchaseCount: 0, LastPurchaseDays: UnknownLastPurchase})

	assert.Equal(t, 90, res.Score)
	assert.Equal(t, UnknownLastPurchase, res.LastPurchaseDays)
	assert.Equal(t, "nuevo", res.Segment)
}

func TestScoreBounds(t *testing.T) {
	scorer := testScorer()

	cases := []Input{
		{PurchaseCount: 1, LastPurchaseDays: 200, TotalSpent: 50},
		{PurchaseCount: 12, LastPurchaseDays: 3, TotalSpent: 9000},
		{PurchaseCount: 2, LastPurchaseDays: 45, TotalSpent: 400},
		{PurchaseCount: 6, LastPurchaseDays: 90, TotalSpent: 1200},
	}

	for _, in := range cases {
		res := scorer.Score(in)
		assert.GreaterOrEqual(t, res.Score, 0)
		assert.LessOrEqual(t, res.Score, 100)
	}
}

func TestScoreActiveHighValueClientIsLowRisk(t *testing.T) {
	res := testScorer().Score(Input{
		PurchaseCount:    15,
		LastPurchaseDays: 4,
		TotalSpent:       8200,
	})

	assert.Equal(t, 0, res.Score)
	assert.Equal(t, "vip", res.Segment)
}

func TestScoreLapsedClientIsHighRisk(t *testing.T) {
	res := testScorer().Score(Input{
		PurchaseCount:    1,
		LastPurchaseDays: 180,
		TotalSpent:       120,
	})

	// 60 recency + 25 frequency + 15 monetary, capped
	assert.Equal(t, 100, res.Score)
	assert.Equal(t, "nuevo", res.Segment)
}

func TestScoreMonotonicInRecency(t *testing.T) {
	scorer := testScorer()

	prev := -1
	for _, days := range []int{2, 10, 20, 30, 45, 90, 150} {
		res := scorer.Score(Input{PurchaseCount: 4, LastPurchaseDays: days, TotalSpent: 600})
		require.GreaterOrEqual(t, res.Score, prev, "score must not drop as recency worsens (days=%d)", days)
		prev = res.Score
	}
}

func TestScoreDeterministic(t *testing.T) {
	scorer := testScorer()
	in := Input{PurchaseCount: 3, LastPurchaseDays: 40, TotalSpent: 750, AvgTicket: 250}

	a := scorer.Score(in)
	b := scorer.Score(in)
	assert.Equal(t, a, b)
}

func TestSegmentFor(t *testing.T) {
	cases := []struct {
		in   Input
		want string
	}{
		{Input{PurchaseCount: 6, LastPurchaseDays: 10}, "vip"},
		{Input{PurchaseCount: 6, LastPurchaseDays: 90}, "frecuente"},
		{Input{PurchaseCount: 3, LastPurchaseDays: 5}, "frecuente"},
		{Input{PurchaseCount: 1, LastPurchaseDays: 5}, "nuevo"},
		{Input{PurchaseCount: 2, LastPurchaseDays: 50}, "general"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, segmentFor(tc.in))
	}
}
