package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/loyaltyloop/loyalty-crm-be/internal/modules/loyalty/models"
	"github.com/loyaltyloop/loyalty-crm-be/internal/modules/loyalty/repositories"
	"github.com/loyaltyloop/loyalty-crm-be/internal/shared/utils"
	"gorm.io/gorm"
)

type PurchaseService struct {
	purchaseRepo repositories.PurchaseRepo
	clientRepo   repositories.ClientRepo
	churnService *ChurnService
}

func NewPurchaseService(purchaseRepo repositories.PurchaseRepo, clientRepo repositories.ClientRepo, churnService *ChurnService) *PurchaseService {
	return &PurchaseService{
		purchaseRepo: purchaseRepo,
		clientRepo:   clientRepo,
		churnService: churnService,
	}
}

// CreatePurchase records a sale and refreshes the client's churn score
func (s *PurchaseService) CreatePurchase(ownerID uuid.UUID, req *models.CreatePurchaseRequest) (*models.Purchase, error) {
	if len(req.Items) == 0 {
		return nil, errors.New("purchase must have at least one item")
	}

	clientID, err := uuid.Parse(req.ClientID)
	if err != nil {
		return nil, fmt.Errorf("invalid client_id: %w", err)
	}

	client, err := s.clientRepo.GetByID(req.ClientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	if client.OwnerID != ownerID {
		return nil, ErrClientNotFound
	}

	amount := req.Amount
	if amount == 0 {
		for _, line := range req.Items {
			qty := line.Quantity
			if qty <= 0 {
				qty = 1
			}
			amount += line.Price * float64(qty)
		}
	}
	if amount < 0 {
		return nil, errors.New("amount cannot be negative")
	}

	purchasedAt := time.Now()
	if req.PurchasedAt != nil {
		purchasedAt = *req.PurchasedAt
	}

	purchase := &models.Purchase{
		OwnerID:     ownerID,
		ClientID:    clientID,
		Amount:      amount,
		PurchasedAt: purchasedAt,
	}
	if err := purchase.SetLines(req.Items); err != nil {
		return nil, fmt.Errorf("failed to encode purchase items: %w", err)
	}

	err = s.purchaseRepo.Create(purchase)
	if err != nil {
		return nil, fmt.Errorf("failed to create purchase: %w", err)
	}

	// Refresh the churn score so recommendations see the new purchase
	if s.churnService != nil {
		if err := s.churnService.RefreshClient(client); err != nil {
			utils.LogWarn("churn refresh after purchase failed", map[string]interface{}{
				"client_id": clientID.String(),
				"error":     err.Error(),
			})
		}
	}

	return purchase, nil
}

// GetPurchase retrieves a purchase by ID, scoped to the owner
func (s *PurchaseService) GetPurchase(purchaseID string, ownerID uuid.UUID) (*models.Purchase, error) {
	purchase, err := s.purchaseRepo.GetByID(purchaseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPurchaseNotFound
		}
		return nil, err
	}

	if purchase.OwnerID != ownerID {
		return nil, ErrPurchaseNotFound
	}

	return purchase, nil
}

// ListPurchases lists purchases with filters and pagination
func (s *PurchaseService) ListPurchases(filter models.PurchaseFilter) (*models.PurchaseListResponse, error) {
	purchases, total, err := s.purchaseRepo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list purchases: %w", err)
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 || filter.PageSize > 100 {
		filter.PageSize = 20
	}

	totalPages := int((total + int64(filter.PageSize) - 1) / int64(filter.PageSize))

	return &models.PurchaseListResponse{
		Purchases:  purchases,
		Total:      total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: totalPages,
	}, nil
}

// DeletePurchase soft-deletes a purchase
func (s *PurchaseService) DeletePurchase(purchaseID string, ownerID uuid.UUID) error {
	_, err := s.GetPurchase(purchaseID, ownerID)
	if err != nil {
		return err
	}

	err = s.purchaseRepo.Delete(purchaseID)
	if err != nil {
		return fmt.Errorf("failed to delete purchase: %w", err)
	}

	return nil
}
