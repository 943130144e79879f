package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChurnScore is the latest computed churn assessment for a client
type ChurnScore struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OwnerID  uuid.UUID `gorm:"type:uuid;not null;index" json:"owner_id"`
	ClientID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"client_id"`

	Score            int    `gorm:"type:integer;not null;default:0" json:"score"` // 0-100
	LastPurchaseDays int    `gorm:"type:integer;not null;default:999" json:"last_purchase_days"`
	Segment          string `gorm:"type:text;default:'general'" json:"segment"`

	ComputedAt time.Time `gorm:"not null" json:"computed_at"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name
func (ChurnScore) TableName() string {
	return "churn_scores"
}

// BeforeCreate sets UUID before creating
func (s *ChurnScore) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
