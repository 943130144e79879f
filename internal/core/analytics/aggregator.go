package analytics

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// Aggregator runs grouped aggregation queries through GORM.
type Aggregator struct {
	db *gorm.DB
}

// NewAggregator creates a new aggregator
func NewAggregator(db *gorm.DB) *Aggregator {
	return &Aggregator{db: db}
}

// Aggregate executes an AggregateQuery and returns raw rows.
func (a *Aggregator) Aggregate(query AggregateQuery) ([]map[string]interface{}, error) {
	selectParts := append([]string{}, query.GroupBy...)
	for alias, agg := range query.Aggregates {
		selectParts = append(selectParts, fmt.Sprintf("%s AS %s", agg, alias))
	}

	db := a.db.Table(query.Table).Select(strings.Join(selectParts, ", "))

	for condition, value := range query.Filters {
		if strings.Contains(condition, "?") {
			db = db.Where(condition, value)
		} else {
			db = db.Where(fmt.Sprintf("%s = ?", condition), value)
		}
	}

	if query.DateRange != nil {
		db = db.Where(fmt.Sprintf("%s BETWEEN ? AND ?", query.DateRange.Field),
			query.DateRange.Start, query.DateRange.End)
	}

	if len(query.GroupBy) > 0 {
		db = db.Group(strings.Join(query.GroupBy, ", "))
	}

	for _, order := range query.OrderBy {
		db = db.Order(order)
	}

	if query.Limit > 0 {
		db = db.Limit(query.Limit)
	}

	var results []map[string]interface{}
	if err := db.Find(&results).Error; err != nil {
		return nil, fmt.Errorf("aggregate query failed: %w", err)
	}

	return results, nil
}

// Count runs a COUNT with optional filters and date range.
func (a *Aggregator) Count(table string, filters map[string]interface{}, dateRange *DateRange) (int64, error) {
	db := a.db.Table(table)

	for condition, value := range filters {
		if strings.Contains(condition, "?") {
			db = db.Where(condition, value)
		} else {
			db = db.Where(fmt.Sprintf("%s = ?", condition), value)
		}
	}

	if dateRange != nil {
		db = db.Where(fmt.Sprintf("%s BETWEEN ? AND ?", dateRange.Field),
			dateRange.Start, dateRange.End)
	}

	var count int64
	if err := db.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count query failed: %w", err)
	}

	return count, nil
}

// Sum runs a SUM over one column.
func (a *Aggregator) Sum(table, column string, filters map[string]interface{}, dateRange *DateRange) (float64, error) {
	results, err := a.Aggregate(AggregateQuery{
		Table:      table,
		Aggregates: map[string]string{"total": fmt.Sprintf("SUM(%s)", column)},
		Filters:    filters,
		DateRange:  dateRange,
	})
	if err != nil {
		return 0, err
	}

	if len(results) == 0 {
		return 0, nil
	}
	return toFloat(results[0]["total"])
}

// Average runs an AVG over one column.
func (a *Aggregator) Average(table, column string, filters map[string]interface{}, dateRange *DateRange) (float64, error) {
	results, err := a.Aggregate(AggregateQuery{
		Table:      table,
		Aggregates: map[string]string{"avg": fmt.Sprintf("AVG(%s)", column)},
		Filters:    filters,
		DateRange:  dateRange,
	})
	if err != nil {
		return 0, err
	}

	if len(results) == 0 {
		return 0, nil
	}
	return toFloat(results[0]["avg"])
}

func toFloat(v interface{}) (float64, error) {
	switch n := v.(type) {
	case nil:
		return 0, nil
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("unexpected aggregate result type: %T", v)
	}
}

// PercentChange computes the change from previous to current as a percentage.
func PercentChange(current, previous float64) float64 {
	if previous == 0 {
		if current == 0 {
			return 0
		}
		return 100
	}
	return (current - previous) / previous * 100
}

// TrendOf classifies a percentage change for a StatCard.
func TrendOf(change float64) string {
	switch {
	case change > 0.5:
		return "up"
	case change < -0.5:
		return "down"
	default:
		return "neutral"
	}
}
