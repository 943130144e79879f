package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/loyaltyloop/loyalty-crm-be/internal/core/recommend"
	"github.com/loyaltyloop/loyalty-crm-be/internal/modules/loyalty/repositories"
	"github.com/loyaltyloop/loyalty-crm-be/internal/shared/utils"
	"gorm.io/gorm"
)

// recentPurchaseWindow bounds the history fed into the recommender.
const recentPurchaseWindow = 20

// AIService feeds stored client data into the recommendation engine.
// Every call returns a usable result: if the LLM path degrades, the
// engine falls back to deterministic rules internally.
type AIService struct {
	orchestrator *recommend.Orchestrator
	clientRepo   repositories.ClientRepo
	purchaseRepo repositories.PurchaseRepo
	churnRepo    repositories.ChurnRepo
	churnService *ChurnService
}

func NewAIService(
	orchestrator *recommend.Orchestrator,
	clientRepo repositories.ClientRepo,
	purchaseRepo repositories.PurchaseRepo,
	churnRepo repositories.ChurnRepo,
	churnService *ChurnService,
) *AIService {
	return &AIService{
		orchestrator: orchestrator,
		clientRepo:   clientRepo,
		purchaseRepo: purchaseRepo,
		churnRepo:    churnRepo,
		churnService: churnService,
	}
}

// RecommendationsForClient generates retention recommendations for one client
func (s *AIService) RecommendationsForClient(ctx context.Context, ownerID uuid.UUID, clientID string) (*recommend.RecommendationResult, error) {
	profile, purchases, err := s.loadClientData(ownerID, clientID)
	if err != nil {
		return nil, err
	}

	return s.orchestrator.Recommendations(ctx, *profile, purchases), nil
}

// RecommendationsBatch generates recommendations for the owner's highest-risk clients
func (s *AIService) RecommendationsBatch(ctx context.Context, ownerID uuid.UUID, limit int) ([]*recommend.RecommendationResult, error) {
	if limit < 1 {
		limit = 5
	}
	if limit > 50 {
		limit = 50
	}

	scores, err := s.churnRepo.TopAtRisk(ownerID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load at-risk clients: %w", err)
	}

	results := make([]*recommend.RecommendationResult, 0, len(scores))
	for _, score := range scores {
		result, err := s.RecommendationsForClient(ctx, ownerID, score.ClientID.String())
		if err != nil {
			utils.LogWarn("skipping client in batch recommendations", map[string]interface{}{
				"client_id": score.ClientID.String(),
				"error":     err.Error(),
			})
			continue
		}
		results = append(results, result)
	}

	return results, nil
}

// SuggestionsForClient generates sales/engagement suggestions for one client
func (s *AIService) SuggestionsForClient(ctx context.Context, ownerID uuid.UUID, clientID string) (*recommend.SuggestionResult, error) {
	profile, purchases, err := s.loadClientData(ownerID, clientID)
	if err != nil {
		return nil, err
	}

	return s.orchestrator.Suggestions(ctx, *profile, purchases), nil
}

// AnalyzeSentiment runs sentiment analysis over free-form feedback text
func (s *AIService) AnalyzeSentiment(ctx context.Context, text string) *recommend.SentimentResult {
	return s.orchestrator.Sentiment(ctx, text)
}

// loadClientData assembles the profile and bounded purchase history the
// engine needs, scoped to the owner.
func (s *AIService) loadClientData(ownerID uuid.UUID, clientID string) (*recommend.ClientProfile, []recommend.PurchaseRecord, error) {
	client, err := s.clientRepo.GetByID(clientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrClientNotFound
		}
		return nil, nil, err
	}
	if client.OwnerID != ownerID {
		return nil, nil, ErrClientNotFound
	}

	score, err := s.churnRepo.GetByClient(client.ID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// First request for this client: compute the score on the spot
		if refreshErr := s.churnService.RefreshClient(client); refreshErr != nil {
			return nil, nil, fmt.Errorf("failed to compute churn score: %w", refreshErr)
		}
		score, err = s.churnRepo.GetByClient(client.ID)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load churn score: %w", err)
	}

	profile := &recommend.ClientProfile{
		ID:               client.ID.String(),
		Name:             client.Name,
		Email:            client.Email,
		Segment:          client.Segment,
		ChurnScore:       score.Score,
		LastPurchaseDays: score.LastPurchaseDays,
	}

	rows, err := s.purchaseRepo.RecentByClient(client.ID, recentPurchaseWindow)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load purchases: %w", err)
	}

	purchases := make([]recommend.PurchaseRecord, 0, len(rows))
	for _, row := range rows {
		record := recommend.PurchaseRecord{
			ClientID:    row.ClientID.String(),
			TotalPrice:  row.Amount,
			PurchasedAt: row.PurchasedAt,
		}

		lines, err := row.Lines()
		if err != nil {
			utils.LogWarn("skipping unreadable purchase lines", map[string]interface{}{
				"purchase_id": row.ID.String(),
				"error":       err.Error(),
			})
		}
		for _, line := range lines {
			record.Items = append(record.Items, recommend.PurchaseItem{
				Name:  line.Name,
				Price: line.Price,
			})
		}

		purchases = append(purchases, record)
	}

	return profile, purchases, nil
}
