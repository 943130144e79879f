package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/loyaltyloop/loyalty-crm-be/internal/modules/loyalty/models"
	"github.com/loyaltyloop/loyalty-crm-be/internal/modules/loyalty/repositories"
	"gorm.io/gorm"
)

type ClientService struct {
	clientRepo repositories.ClientRepo
}

func NewClientService(clientRepo repositories.ClientRepo) *ClientService {
	return &ClientService{clientRepo: clientRepo}
}

// CreateClient creates a new client
func (s *ClientService) CreateClient(ownerID uuid.UUID, req *models.CreateClientRequest) (*models.Client, error) {
	if req.Name == "" {
		return nil, errors.New("client name is required")
	}

	segment := req.Segment
	if segment == "" {
		segment = "general"
	}

	client := &models.Client{
		OwnerID:  ownerID,
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Segment:  segment,
		Tags:     req.Tags,
		IsActive: true,
	}

	err := s.clientRepo.Create(client)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// GetClient retrieves a client by ID, scoped to the owner
func (s *ClientService) GetClient(clientID string, ownerID uuid.UUID) (*models.Client, error) {
	client, err := s.clientRepo.GetByID(clientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}

	if client.OwnerID != ownerID {
		return nil, ErrClientNotFound
	}

	return client, nil
}

// ListClients lists clients with filters and pagination
func (s *ClientService) ListClients(filter models.ClientFilter) (*models.ClientListResponse, error) {
	clients, total, err := s.clientRepo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 || filter.PageSize > 100 {
		filter.PageSize = 20
	}

	totalPages := int((total + int64(filter.PageSize) - 1) / int64(filter.PageSize))

	return &models.ClientListResponse{
		Clients:    clients,
		Total:      total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: totalPages,
	}, nil
}

// UpdateClient applies a partial update to a client
func (s *ClientService) UpdateClient(clientID string, ownerID uuid.UUID, req *models.UpdateClientRequest) (*models.Client, error) {
	client, err := s.GetClient(clientID, ownerID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, errors.New("client name cannot be empty")
		}
		client.Name = *req.Name
	}
	if req.Email != nil {
		client.Email = *req.Email
	}
	if req.Phone != nil {
		client.Phone = *req.Phone
	}
	if req.Segment != nil {
		client.Segment = *req.Segment
	}
	if req.Tags != nil {
		client.Tags = *req.Tags
	}

	err = s.clientRepo.Update(client)
	if err != nil {
		return nil, fmt.Errorf("failed to update client: %w", err)
	}

	return client, nil
}

// DeleteClient soft-deletes a client
func (s *ClientService) DeleteClient(clientID string, ownerID uuid.UUID) error {
	_, err := s.GetClient(clientID, ownerID)
	if err != nil {
		return err
	}

	err = s.clientRepo.Delete(clientID)
	if err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}

	return nil
}
