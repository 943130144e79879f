package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/loyaltyloop/loyalty-crm-be/internal/core/recommend"
	"github.com/loyaltyloop/loyalty-crm-be/internal/modules/loyalty/models"
	"github.com/loyaltyloop/loyalty-crm-be/internal/modules/loyalty/repositories"
	"gorm.io/gorm"
)

type ItemService struct {
	itemRepo repositories.ItemRepo
}

func NewItemService(itemRepo repositories.ItemRepo) *ItemService {
	return &ItemService{itemRepo: itemRepo}
}

// CreateItem creates a new catalog item
func (s *ItemService) CreateItem(ownerID uuid.UUID, req *models.CreateItemRequest) (*models.Item, error) {
	if req.Name == "" {
		return nil, errors.New("item name is required")
	}
	if req.Price < 0 {
		return nil, errors.New("price cannot be negative")
	}

	category := req.Category
	if category == "" {
		// Derive from the item name when the caller does not set one
		category = recommend.InferCategory(req.Name)
	}

	item := &models.Item{
		OwnerID:  ownerID,
		Name:     req.Name,
		SKU:      req.SKU,
		Category: category,
		Price:    req.Price,
		IsActive: true,
	}

	err := s.itemRepo.Create(item)
	if err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	return item, nil
}

// GetItem retrieves an item by ID, scoped to the owner
func (s *ItemService) GetItem(itemID string, ownerID uuid.UUID) (*models.Item, error) {
	item, err := s.itemRepo.GetByID(itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	if item.OwnerID != ownerID {
		return nil, ErrItemNotFound
	}

	return item, nil
}

// ListItems lists items with filters and pagination
func (s *ItemService) ListItems(filter models.ItemFilter) (*models.ItemListResponse, error) {
	items, total, err := s.itemRepo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 || filter.PageSize > 100 {
		filter.PageSize = 20
	}

	totalPages := int((total + int64(filter.PageSize) - 1) / int64(filter.PageSize))

	return &models.ItemListResponse{
		Items:      items,
		Total:      total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: totalPages,
	}, nil
}

// UpdateItem applies a partial update to an item
func (s *ItemService) UpdateItem(itemID string, ownerID uuid.UUID, req *models.UpdateItemRequest) (*models.Item, error) {
	item, err := s.GetItem(itemID, ownerID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, errors.New("item name cannot be empty")
		}
		item.Name = *req.Name
	}
	if req.SKU != nil {
		item.SKU = *req.SKU
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, errors.New("price cannot be negative")
		}
		item.Price = *req.Price
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}

	err = s.itemRepo.Update(item)
	if err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}

	return item, nil
}

// DeleteItem soft-deletes an item
func (s *ItemService) DeleteItem(itemID string, ownerID uuid.UUID) error {
	_, err := s.GetItem(itemID, ownerID)
	if err != nil {
		return err
	}

	err = s.itemRepo.Delete(itemID)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}

	return nil
}
