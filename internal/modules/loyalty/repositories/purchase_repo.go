package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/loyaltyloop/loyalty-crm-be/internal/modules/loyalty/models"
	"gorm.io/gorm"
)

type PurchaseRepo interface {
	Create(purchase *models.Purchase) error
	GetByID(id string) (*models.Purchase, error)
	List(filter models.PurchaseFilter) ([]models.Purchase, int64, error)
	RecentByClient(clientID uuid.UUID, limit int) ([]models.Purchase, error)
	StatsByClient(clientID uuid.UUID) (*models.PurchaseStats, error)
	Delete(id string) error // Soft delete
}

type purchaseRepo struct {
	db *gorm.DB
}

func NewPurchaseRepo(db *gorm.DB) PurchaseRepo {
	return &purchaseRepo{db: db}
}

func (r *purchaseRepo) Create(purchase *models.Purchase) error {
	return r.db.Create(purchase).Error
}

func (r *purchaseRepo) GetByID(id string) (*models.Purchase, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid purchase ID: %w", err)
	}

	var purchase models.Purchase
	err = r.db.First(&purchase, "id = ?", uid).Error
	if err != nil {
		return nil, err
	}
	return &purchase, nil
}

func (r *purchaseRepo) List(filter models.PurchaseFilter) ([]models.Purchase, int64, error) {
	var purchases []models.Purchase
	var total int64

	query := r.db.Model(&models.Purchase{}).Where("owner_id = ?", filter.OwnerID)

	if filter.ClientID != uuid.Nil {
		query = query.Where("client_id = ?", filter.ClientID)
	}

	if filter.From != nil {
		query = query.Where("purchased_at >= ?", *filter.From)
	}

	if filter.To != nil {
		query = query.Where("purchased_at <= ?", *filter.To)
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

	err = query.Order("purchased_at DESC").Offset(offset).Limit(filter.PageSize).Find(&purchases).Error
	if err != nil {
		return nil, 0, err
	}

	return purchases, total, nil
}

func (r *purchaseRepo) RecentByClient(clientID uuid.UUID, limit int) ([]models.Purchase, error) {
	if limit <= 0 {
		limit = 20
	}

	var purchases []models.Purchase
	err := r.db.Where("client_id = ?", clientID).
		Order("purchased_at DESC").
		Limit(limit).
		Find(&purchases).Error
	if err != nil {
		return nil, err
	}
	return purchases, nil
}

func (r *purchaseRepo) StatsByClient(clientID uuid.UUID) (*models.PurchaseStats, error) {
	var stats models.PurchaseStats
	err := r.db.Model(&models.Purchase{}).
		Select("COUNT(*) AS purchase_count, COALESCE(SUM(amount), 0) AS total_spent, MAX(purchased_at) AS last_purchase_at").
		Where("client_id = ?", clientID).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *purchaseRepo) Delete(id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid purchase ID: %w", err)
	}
	return r.db.Delete(&models.Purchase{}, "id = ?", uid).Error
}
