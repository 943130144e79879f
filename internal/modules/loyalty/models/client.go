package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Client represents a retail customer tracked by the loyalty program
type Client struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OwnerID uuid.UUID `gorm:"type:uuid;not null;index" json:"owner_id"`

	// Contact Info
	Name  string `gorm:"type:text;not null" json:"name"`
	Email string `gorm:"type:text" json:"email,omitempty"`
	Phone string `gorm:"type:text" json:"phone,omitempty"`

	// Segmentation
	Segment string         `gorm:"type:text;default:'general'" json:"segment"` // vip, frecuente, nuevo, general
	Tags    pq.StringArray `gorm:"type:text[]" json:"tags,omitempty"`

	// Status
	IsActive bool `gorm:"type:boolean;default:true" json:"is_active"`

	// Timestamps
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

// TableName specifies the table name
func (Client) TableName() string {
	return "clients"
}

// BeforeCreate sets UUID before creating
func (c *Client) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// CreateClientRequest represents client creation request
type CreateClientRequest struct {
	Name    string   `json:"name" validate:"required,min=1,max=200"`
	Email   string   `json:"email,omitempty" validate:"omitempty,email"`
	Phone   string   `json:"phone,omitempty" validate:"max=30"`
	Segment string   `json:"segment,omitempty" validate:"omitempty,oneof=vip frecuente nuevo general"`
	Tags    []string `json:"tags,omitempty"`
}

// UpdateClientRequest represents client update request
type UpdateClientRequest struct {
	Name    *string   `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Email   *string   `json:"email,omitempty" validate:"omitempty,email"`
	Phone   *string   `json:"phone,omitempty" validate:"omitempty,max=30"`
	Segment *string   `json:"segment,omitempty" validate:"omitempty,oneof=vip frecuente nuevo general"`
	Tags    *[]string `json:"tags,omitempty"`
}

// ClientListResponse represents paginated client list response
type ClientListResponse struct {
	Clients    []Client `json:"clients"`
	Total      int64    `json:"total"`
	Page       int      `json:"page"`
	PageSize   int      `json:"page_size"`
	TotalPages int      `json:"total_pages"`
}

// ClientFilter represents client filtering options
type ClientFilter struct {
	OwnerID    uuid.UUID
	Segment    string
	Tag        string
	SearchTerm string // Search in name, email, phone
	Page       int
	PageSize   int
}
