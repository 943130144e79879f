package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var anchor = time.Date(2026, time.July, 15, 10, 30, 0, 0, time.UTC)

func TestRangeForThisMonth(t *testing.T) {
	r := RangeFor("this_month", anchor)

	assert.Equal(t, time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC), r.Start)
	assert.Equal(t, anchor, r.End)
}

func TestRangeForLastMonth(t *testing.T) {
	r := RangeFor("last_month", anchor)

	assert.Equal(t, time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC), r.Start)
	assert.Equal(t, time.Date(2026, time.June, 30, 23, 59, 59, 0, time.UTC), r.End)
}

func TestRangeForUnknownPeriodDefaultsTo30Days(t *testing.T) {
	r := RangeFor("whatever", anchor)

	assert.Equal(t, anchor.AddDate(0, 0, -30), r.Start)
	assert.Equal(t, anchor, r.End)
}

func TestPreviousRangeSameLength(t *testing.T) {
	r := RangeFor("last_30_days", anchor)
	prev := PreviousRange(r)

	assert.Equal(t, r.Start, prev.End)
	assert.Equal(t, r.End.Sub(r.Start), prev.End.Sub(prev.Start))
}

func TestMonthlyRangesCoverPeriod(t *testing.T) {
	start := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.June, 20, 0, 0, 0, 0, time.UTC)

	ranges := MonthlyRanges(start, end)
	require.Len(t, ranges, 4) // mar, apr, may, jun

	assert.Equal(t, time.March, ranges[0].Start.Month())
	assert.Equal(t, end, ranges[3].End)
}

func TestDailyRangesCount(t *testing.T) {
	start := time.Date(2026, time.July, 1, 8, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.July, 7, 23, 0, 0, 0, time.UTC)

	ranges := DailyRanges(start, end)
	assert.Len(t, ranges, 7)
}

func TestPercentChange(t *testing.T) {
	assert.InDelta(t, 50.0, PercentChange(150, 100), 0.001)
	assert.InDelta(t, -25.0, PercentChange(75, 100), 0.001)
	assert.Equal(t, 0.0, PercentChange(0, 0))
	assert.Equal(t, 100.0, PercentChange(10, 0))
}

func TestTrendOf(t *testing.T) {
	assert.Equal(t, "up", TrendOf(12.5))
	assert.Equal(t, "down", TrendOf(-3))
	assert.Equal(t, "neutral", TrendOf(0.2))
}
