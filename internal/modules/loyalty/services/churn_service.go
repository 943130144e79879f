package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/loyaltyloop/loyalty-crm-be/internal/core/churn"
	"github.com/loyaltyloop/loyalty-crm-be/internal/modules/loyalty/models"
	"github.com/loyaltyloop/loyalty-crm-be/internal/modules/loyalty/repositories"
	"github.com/loyaltyloop/loyalty-crm-be/internal/shared/utils"
)

// ChurnService keeps per-client churn scores up to date. Scores are
// recomputed after every purchase and swept nightly by the scheduler.
type ChurnService struct {
	scorer       *churn.Scorer
	clientRepo   repositories.ClientRepo
	purchaseRepo repositories.PurchaseRepo
	churnRepo    repositories.ChurnRepo
	now          func() time.Time
}

func NewChurnService(clientRepo repositories.ClientRepo, purchaseRepo repositories.PurchaseRepo, churnRepo repositories.ChurnRepo) *ChurnService {
	return &ChurnService{
		scorer:       churn.NewScorer(),
		clientRepo:   clientRepo,
		purchaseRepo: purchaseRepo,
		churnRepo:    churnRepo,
		now:          time.Now,
	}
}

// RefreshClient recomputes and stores the churn score for one client
func (s *ChurnService) RefreshClient(client *models.Client) error {
	stats, err := s.purchaseRepo.StatsByClient(client.ID)
	if err != nil {
		return fmt.Errorf("failed to load purchase stats: %w", err)
	}

	lastPurchaseDays := churn.UnknownLastPurchase
	if stats.LastPurchaseAt != nil {
		days := int(s.now().Sub(*stats.LastPurchaseAt).Hours() / 24)
		if days < 0 {
			days = 0
		}
		lastPurchaseDays = days
	}

	avgTicket := 0.0
	if stats.PurchaseCount > 0 {
		avgTicket = stats.TotalSpent / float64(stats.PurchaseCount)
	}

	result := s.scorer.Score(churn.Input{
		PurchaseCount:    int(stats.PurchaseCount),
		LastPurchaseDays: lastPurchaseDays,
		TotalSpent:       stats.TotalSpent,
		AvgTicket:        avgTicket,
	})

	score := &models.ChurnScore{
		OwnerID:          client.OwnerID,
		ClientID:         client.ID,
		Score:            result.Score,
		LastPurchaseDays: result.LastPurchaseDays,
		Segment:          result.Segment,
		ComputedAt:       result.ComputedAt,
	}

	if err := s.churnRepo.Upsert(score); err != nil {
		return fmt.Errorf("failed to store churn score: %w", err)
	}

	// Keep the client's segment aligned with its scored behaviour
	if client.Segment != result.Segment {
		client.Segment = result.Segment
		if err := s.clientRepo.Update(client); err != nil {
			return fmt.Errorf("failed to update client segment: %w", err)
		}
	}

	return nil
}

// RefreshOwner recomputes scores for all active clients of one owner
func (s *ChurnService) RefreshOwner(ownerID uuid.UUID) (int, error) {
	ids, err := s.clientRepo.ListActiveIDs(ownerID)
	if err != nil {
		return 0, fmt.Errorf("failed to list clients: %w", err)
	}

	refreshed := 0
	for _, id := range ids {
		client, err := s.clientRepo.GetByID(id.String())
		if err != nil {
			utils.LogWarn("skipping client during churn sweep", map[string]interface{}{
				"client_id": id.String(),
				"error":     err.Error(),
			})
			continue
		}

		if err := s.RefreshClient(client); err != nil {
			utils.LogWarn("churn refresh failed", map[string]interface{}{
				"client_id": id.String(),
				"error":     err.Error(),
			})
			continue
		}
		refreshed++
	}

	return refreshed, nil
}

// GetScore returns the stored churn score for a client, if any
func (s *ChurnService) GetScore(clientID uuid.UUID) (*models.ChurnScore, error) {
	return s.churnRepo.GetByClient(clientID)
}
