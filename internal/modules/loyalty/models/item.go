package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Item represents a catalog item sold by the store
type Item struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OwnerID uuid.UUID `gorm:"type:uuid;not null;index" json:"owner_id"`

	// Item Info
	Name     string `gorm:"type:text;not null" json:"name"`
	SKU      string `gorm:"type:text" json:"sku,omitempty"`
	Category string `gorm:"type:text" json:"category,omitempty"` // camisas, pantalones, vestidos, ...

	// Pricing
	Price float64 `gorm:"type:decimal(12,2);not null;default:0" json:"price"`

	// Status
	IsActive bool `gorm:"type:boolean;default:true" json:"is_active"`

	// Timestamps
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

// TableName specifies the table name
func (Item) TableName() string {
	return "items"
}

// BeforeCreate sets UUID before creating
func (i *Item) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// CreateItemRequest represents item creation request
type CreateItemRequest struct {
	Name     string  `json:"name" validate:"required,min=1,max=200"`
	SKU      string  `json:"sku,omitempty" validate:"max=100"`
	Category string  `json:"category,omitempty" validate:"max=100"`
	Price    float64 `json:"price" validate:"required,gte=0"`
}

// UpdateItemRequest represents item update request
type UpdateItemRequest struct {
	Name     *string  `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	SKU      *string  `json:"sku,omitempty" validate:"omitempty,max=100"`
	Category *string  `json:"category,omitempty" validate:"omitempty,max=100"`
	Price    *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	IsActive *bool    `json:"is_active,omitempty"`
}

// ItemListResponse represents paginated item list response
type ItemListResponse struct {
	Items      []Item `json:"items"`
	Total      int64  `json:"total"`
	Page       int    `json:"page"`
	PageSize   int    `json:"page_size"`
	TotalPages int    `json:"total_pages"`
}

// ItemFilter represents item filtering options
type ItemFilter struct {
	OwnerID    uuid.UUID
	Category   string
	IsActive   *bool
	SearchTerm string
	Page       int
	PageSize   int
}
