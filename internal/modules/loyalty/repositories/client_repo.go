package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/loyaltyloop/loyalty-crm-be/internal/modules/loyalty/models"
	"gorm.io/gorm"
)

type ClientRepo interface {
	Create(client *models.Client) error
	GetByID(id string) (*models.Client, error)
	List(filter models.ClientFilter) ([]models.Client, int64, error)
	ListActiveIDs(ownerID uuid.UUID) ([]uuid.UUID, error)
	DistinctOwners() ([]uuid.UUID, error)
	Update(client *models.Client) error
	Delete(id string) error // Soft delete
}

type clientRepo struct {
	db *gorm.DB
}

func NewClientRepo(db *gorm.DB) ClientRepo {
	return &clientRepo{db: db}
}

func (r *clientRepo) Create(client *models.Client) error {
	return r.db.Create(client).Error
}

func (r *clientRepo) GetByID(id string) (*models.Client, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid client ID: %w", err)
	}

	var client models.Client
	err = r.db.First(&client, "id = ?", uid).Error
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *clientRepo) List(filter models.ClientFilter) ([]models.Client, int64, error) {
	var clients []models.Client
	var total int64

	query := r.db.Model(&models.Client{}).Where("owner_id = ?", filter.OwnerID)

	if filter.Segment != "" {
		query = query.Where("segment = ?", filter.Segment)
	}

	if filter.Tag != "" {
		query = query.Where("? = ANY(tags)", filter.Tag)
	}

	if filter.SearchTerm != "" {
		searchPattern := "%" + filter.SearchTerm + "%"
		query = query.Where("name ILIKE ? OR email ILIKE ? OR phone ILIKE ?",
			searchPattern, searchPattern, searchPattern)
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

	err = query.Order("created_at DESC").Offset(offset).Limit(filter.PageSize).Find(&clients).Error
	if err != nil {
		return nil, 0, err
	}

	return clients, total, nil
}

func (r *clientRepo) ListActiveIDs(ownerID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.Model(&models.Client{}).
		Where("owner_id = ? AND is_active = ?", ownerID, true).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *clientRepo) DistinctOwners() ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.Model(&models.Client{}).
		Distinct("owner_id").
		Where("is_active = ?", true).
		Pluck("owner_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *clientRepo) Update(client *models.Client) error {
	return r.db.Save(client).Error
}

func (r *clientRepo) Delete(id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid client ID: %w", err)
	}
	return r.db.Delete(&models.Client{}, "id = ?", uid).Error
}
