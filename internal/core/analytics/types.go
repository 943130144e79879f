package analytics

import "time"

// AggregateQuery describes a grouped aggregation over one table.
type AggregateQuery struct {
	Table      string                 // table name or JOIN clause
	GroupBy    []string               // GROUP BY columns
	Aggregates map[string]string      // alias -> SQL aggregate, e.g. {"total": "SUM(amount)"}
	Filters    map[string]interface{} // WHERE conditions
	DateRange  *DateRange
	OrderBy    []string
	Limit      int // 0 = no limit
}

// DateRange is a period filter applied to a timestamp column.
type DateRange struct {
	Start time.Time
	End   time.Time
	Field string // column to filter on, e.g. "purchased_at"
}

// StatCard is a single dashboard summary figure.
type StatCard struct {
	Title       string  `json:"title"`
	Value       string  `json:"value"`
	Change      float64 `json:"change"` // percentage vs previous period
	ChangeLabel string  `json:"change_label,omitempty"`
	Trend       string  `json:"trend"` // up, down, neutral
}

// Breakdown is a labeled value split, rendered as a pie or bar chart.
type Breakdown struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// TrendPoint is one bucket of a time series.
type TrendPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}
