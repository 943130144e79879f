package repositories

import (
	"github.com/google/uuid"
	"github.com/loyaltyloop/loyalty-crm-be/internal/modules/loyalty/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ChurnRepo interface {
	Upsert(score *models.ChurnScore) error
	GetByClient(clientID uuid.UUID) (*models.ChurnScore, error)
	TopAtRisk(ownerID uuid.UUID, limit int) ([]models.ChurnScore, error)
}

type churnRepo struct {
	db *gorm.DB
}

func NewChurnRepo(db *gorm.DB) ChurnRepo {
	return &churnRepo{db: db}
}

// Upsert inserts or replaces the score row for a client
func (r *churnRepo) Upsert(score *models.ChurnScore) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "client_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"score", "last_purchase_days", "segment", "computed_at", "updated_at",
		}),
	}).Create(score).Error
}

func (r *churnRepo) GetByClient(clientID uuid.UUID) (*models.ChurnScore, error) {
	var score models.ChurnScore
	err := r.db.Where("client_id = ?", clientID).First(&score).Error
	if err != nil {
		return nil, err
	}
	return &score, nil
}

// TopAtRisk returns the highest-scoring clients for an owner
func (r *churnRepo) TopAtRisk(ownerID uuid.UUID, limit int) ([]models.ChurnScore, error) {
	if limit <= 0 {
		limit = 5
	}

	var scores []models.ChurnScore
	err := r.db.Where("owner_id = ?", ownerID).
		Order("score DESC").
		Limit(limit).
		Find(&scores).Error
	if err != nil {
		return nil, err
	}
	return scores, nil
}
