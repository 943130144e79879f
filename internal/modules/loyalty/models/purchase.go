package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PurchaseLine is one item line inside a purchase
type PurchaseLine struct {
	ItemID   string  `json:"item_id,omitempty"`
	Name     string  `json:"name"`
	Category string  `json:"category,omitempty"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// Purchase represents a completed sale attributed to a client
type Purchase struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OwnerID  uuid.UUID `gorm:"type:uuid;not null;index" json:"owner_id"`
	ClientID uuid.UUID `gorm:"type:uuid;not null;index" json:"client_id"`

	// Lines are stored as JSONB
	Items datatypes.JSON `gorm:"type:jsonb" json:"items"`

	Amount      float64   `gorm:"type:decimal(12,2);not null;default:0" json:"amount"`
	PurchasedAt time.Time `gorm:"not null;index" json:"purchased_at"`

	// Timestamps
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

// TableName specifies the table name
func (Purchase) TableName() string {
	return "purchases"
}

// BeforeCreate sets UUID before creating
func (p *Purchase) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Lines decodes the JSONB item lines
func (p *Purchase) Lines() ([]PurchaseLine, error) {
	if len(p.Items) == 0 {
		return nil, nil
	}
	var lines []PurchaseLine
	if err := json.Unmarshal(p.Items, &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// SetLines encodes item lines into the JSONB column
func (p *Purchase) SetLines(lines []PurchaseLine) error {
	data, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	p.Items = datatypes.JSON(data)
	return nil
}

// CreatePurchaseRequest represents purchase creation request
type CreatePurchaseRequest struct {
	ClientID    string         `json:"client_id" validate:"required,uuid"`
	Items       []PurchaseLine `json:"items" validate:"required,min=1,dive"`
	Amount      float64        `json:"amount" validate:"gte=0"`
	PurchasedAt *time.Time     `json:"purchased_at,omitempty"`
}

// PurchaseListResponse represents paginated purchase list response
type PurchaseListResponse struct {
	Purchases  []Purchase `json:"purchases"`
	Total      int64      `json:"total"`
	Page       int        `json:"page"`
	PageSize   int        `json:"page_size"`
	TotalPages int        `json:"total_pages"`
}

// PurchaseStats holds per-client purchase aggregates
type PurchaseStats struct {
	PurchaseCount  int64      `json:"purchase_count"`
	TotalSpent     float64    `json:"total_spent"`
	LastPurchaseAt *time.Time `json:"last_purchase_at,omitempty"`
}

// PurchaseFilter represents purchase filtering options
type PurchaseFilter struct {
	OwnerID  uuid.UUID
	ClientID uuid.UUID
	From     *time.Time
	To       *time.Time
	Page     int
	PageSize int
}
