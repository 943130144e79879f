package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/loyaltyloop/loyalty-crm-be/internal/modules/loyalty/models"
	"gorm.io/gorm"
)

type ItemRepo interface {
	Create(item *models.Item) error
	GetByID(id string) (*models.Item, error)
	List(filter models.ItemFilter) ([]models.Item, int64, error)
	Update(item *models.Item) error
	Delete(id string) error // Soft delete
}

type itemRepo struct {
	db *gorm.DB
}

func NewItemRepo(db *gorm.DB) ItemRepo {
	return &itemRepo{db: db}
}

func (r *itemRepo) Create(item *models.Item) error {
	return r.db.Create(item).Error
}

func (r *itemRepo) GetByID(id string) (*models.Item, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid item ID: %w", err)
	}

	var item models.Item
	err = r.db.First(&item, "id = ?", uid).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *itemRepo) List(filter models.ItemFilter) ([]models.Item, int64, error) {
	var items []models.Item
	var total int64

	query := r.db.Model(&models.Item{}).Where("owner_id = ?", filter.OwnerID)

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}

	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}

	if filter.SearchTerm != "" {
		searchPattern := "%" + filter.SearchTerm + "%"
		query = query.Where("name ILIKE ? OR sku ILIKE ?", searchPattern, searchPattern)
	}

	err := query.Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 || filter.PageSize > 100 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize

	err = query.Order("name ASC").Offset(offset).Limit(filter.PageSize).Find(&items).Error
	if err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (r *itemRepo) Update(item *models.Item) error {
	return r.db.Save(item).Error
}

func (r *itemRepo) Delete(id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid item ID: %w", err)
	}
	return r.db.Delete(&models.Item{}, "id = ?", uid).Error
}
