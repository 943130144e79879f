package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/loyaltyloop/loyalty-crm-be/internal/core/analytics"
	"github.com/loyaltyloop/loyalty-crm-be/internal/modules/loyalty/repositories"
	"gorm.io/gorm"
)

// AtRiskClient is one row of the retention dashboard
type AtRiskClient struct {
	ClientID         string `json:"client_id"`
	Name             string `json:"name"`
	Segment          string `json:"segment"`
	ChurnScore       int    `json:"churn_score"`
	LastPurchaseDays int    `json:"last_purchase_days"`
}

// Dashboard is the aggregate analytics payload for an owner
type Dashboard struct {
	Period           string                 `json:"period"`
	Stats            []analytics.StatCard   `json:"stats"`
	RevenueTrend     []analytics.TrendPoint `json:"revenue_trend"`
	SegmentBreakdown analytics.Breakdown    `json:"segment_breakdown"`
	TopAtRisk        []AtRiskClient         `json:"top_at_risk"`
}

type AnalyticsService struct {
	aggregator *analytics.Aggregator
	churnRepo  repositories.ChurnRepo
	clientRepo repositories.ClientRepo
	now        func() time.Time
}

func NewAnalyticsService(aggregator *analytics.Aggregator, churnRepo repositories.ChurnRepo, clientRepo repositories.ClientRepo) *AnalyticsService {
	return &AnalyticsService{
		aggregator: aggregator,
		churnRepo:  churnRepo,
		clientRepo: clientRepo,
		now:        time.Now,
	}
}

// GetDashboard assembles the analytics dashboard for a period
func (s *AnalyticsService) GetDashboard(ownerID uuid.UUID, period string) (*Dashboard, error) {
	current := analytics.RangeFor(period, s.now())
	current.Field = "purchased_at"
	previous := analytics.PreviousRange(current)

	ownerFilter := map[string]interface{}{"owner_id": ownerID}

	stats, err := s.buildStats(ownerFilter, current, previous)
	if err != nil {
		return nil, err
	}

	trend, err := s.revenueTrend(ownerFilter, current)
	if err != nil {
		return nil, err
	}

	segments, err := s.segmentBreakdown(ownerID)
	if err != nil {
		return nil, err
	}

	atRisk, err := s.topAtRisk(ownerID, 5)
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		Period:           period,
		Stats:            stats,
		RevenueTrend:     trend,
		SegmentBreakdown: segments,
		TopAtRisk:        atRisk,
	}, nil
}

func (s *AnalyticsService) buildStats(filters map[string]interface{}, current, previous *analytics.DateRange) ([]analytics.StatCard, error) {
	revenue, err := s.aggregator.Sum("purchases", "amount", filters, current)
	if err != nil {
		return nil, fmt.Errorf("failed to sum revenue: %w", err)
	}
	prevRevenue, err := s.aggregator.Sum("purchases", "amount", filters, previous)
	if err != nil {
		return nil, fmt.Errorf("failed to sum previous revenue: %w", err)
	}

	purchaseCount, err := s.aggregator.Count("purchases", filters, current)
	if err != nil {
		return nil, fmt.Errorf("failed to count purchases: %w", err)
	}
	prevPurchaseCount, err := s.aggregator.Count("purchases", filters, previous)
	if err != nil {
		return nil, fmt.Errorf("failed to count previous purchases: %w", err)
	}

	avgTicket, err := s.aggregator.Average("purchases", "amount", filters, current)
	if err != nil {
		return nil, fmt.Errorf("failed to average ticket: %w", err)
	}
	prevAvgTicket, err := s.aggregator.Average("purchases", "amount", filters, previous)
	if err != nil {
		return nil, fmt.Errorf("failed to average previous ticket: %w", err)
	}

	activeClients, err := s.aggregator.Count("clients", map[string]interface{}{
		"owner_id":  filters["owner_id"],
		"is_active": true,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to count clients: %w", err)
	}

	revenueChange := analytics.PercentChange(revenue, prevRevenue)
	purchasesChange := analytics.PercentChange(float64(purchaseCount), float64(prevPurchaseCount))
	ticketChange := analytics.PercentChange(avgTicket, prevAvgTicket)

	return []analytics.StatCard{
		{
			Title:       "Ingresos",
			Value:       fmt.Sprintf("$%.2f", revenue),
			Change:      revenueChange,
			ChangeLabel: "vs periodo anterior",
			Trend:       analytics.TrendOf(revenueChange),
		},
		{
			Title:       "Compras",
			Value:       fmt.Sprintf("%d", purchaseCount),
			Change:      purchasesChange,
			ChangeLabel: "vs periodo anterior",
			Trend:       analytics.TrendOf(purchasesChange),
		},
		{
			Title:       "Ticket promedio",
			Value:       fmt.Sprintf("$%.2f", avgTicket),
			Change:      ticketChange,
			ChangeLabel: "vs periodo anterior",
			Trend:       analytics.TrendOf(ticketChange),
		},
		{
			Title: "Clientes activos",
			Value: fmt.Sprintf("%d", activeClients),
			Trend: "neutral",
		},
	}, nil
}

func (s *AnalyticsService) revenueTrend(filters map[string]interface{}, period *analytics.DateRange) ([]analytics.TrendPoint, error) {
	buckets := analytics.MonthlyRanges(period.Start, period.End)
	if len(buckets) <= 1 {
		buckets = analytics.DailyRanges(period.Start, period.End)
	}

	points := make([]analytics.TrendPoint, 0, len(buckets))
	for _, bucket := range buckets {
		bucket.Field = "purchased_at"
		total, err := s.aggregator.Sum("purchases", "amount", filters, &bucket)
		if err != nil {
			return nil, fmt.Errorf("failed to build revenue trend: %w", err)
		}

		label := bucket.Start.Format("2006-01-02")
		if len(buckets) <= 12 && bucket.End.Sub(bucket.Start) > 48*time.Hour {
			label = bucket.Start.Format("2006-01")
		}

		points = append(points, analytics.TrendPoint{Label: label, Value: total})
	}

	return points, nil
}

func (s *AnalyticsService) segmentBreakdown(ownerID uuid.UUID) (analytics.Breakdown, error) {
	rows, err := s.aggregator.Aggregate(analytics.AggregateQuery{
		Table:      "clients",
		GroupBy:    []string{"segment"},
		Aggregates: map[string]string{"total": "COUNT(*)"},
		Filters:    map[string]interface{}{"owner_id": ownerID, "is_active": true},
		OrderBy:    []string{"total DESC"},
	})
	if err != nil {
		return analytics.Breakdown{}, fmt.Errorf("failed to break down segments: %w", err)
	}

	breakdown := analytics.Breakdown{}
	for _, row := range rows {
		segment, _ := row["segment"].(string)
		if segment == "" {
			segment = "general"
		}

		var count float64
		switch v := row["total"].(type) {
		case int64:
			count = float64(v)
		case float64:
			count = v
		}

		breakdown.Labels = append(breakdown.Labels, segment)
		breakdown.Values = append(breakdown.Values, count)
	}

	return breakdown, nil
}

func (s *AnalyticsService) topAtRisk(ownerID uuid.UUID, limit int) ([]AtRiskClient, error) {
	scores, err := s.churnRepo.TopAtRisk(ownerID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load at-risk clients: %w", err)
	}

	atRisk := make([]AtRiskClient, 0, len(scores))
	for _, score := range scores {
		row := AtRiskClient{
			ClientID:         score.ClientID.String(),
			Segment:          score.Segment,
			ChurnScore:       score.Score,
			LastPurchaseDays: score.LastPurchaseDays,
		}

		client, err := s.clientRepo.GetByID(score.ClientID.String())
		if err == nil {
			row.Name = client.Name
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		atRisk = append(atRisk, row)
	}

	return atRisk, nil
}
