package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/loyaltyloop/loyalty-crm-be/internal/modules/loyalty/models"
	"github.com/loyaltyloop/loyalty-crm-be/internal/modules/loyalty/services"
)

type ClientHandler struct {
	clientService *services.ClientService
}

func NewClientHandler(clientService *services.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

// CreateClient godoc
// @Summary Create a client
// @Tags Clients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateClientRequest true "Client details"
// @Success 201 {object} models.Client
// @Failure 400 {object} map[string]interface{}
// @Router /clients [post]
func (h *ClientHandler) CreateClient(c *fiber.Ctx) error {
	owner, err := ownerID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req models.CreateClientRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	client, err := h.clientService.CreateClient(owner, &req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(client)
}

// GetClient godoc
// @Summary Get a client by ID
// @Tags Clients
// @Produce json
// @Security BearerAuth
// @Param id path string true "Client ID"
// @Success 200 {object} models.Client
// @Failure 404 {object} map[string]interface{}
// @Router /clients/{id} [get]
func (h *ClientHandler) GetClient(c *fiber.Ctx) error {
	owner, err := ownerID(c)
	if err != nil {
		return unauthorized(c)
	}

	client, err := h.clientService.GetClient(c.Params("id"), owner)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Client not found",
		})
	}

	return c.JSON(client)
}

// ListClients godoc
// @Summary List clients
// @Tags Clients
// @Produce json
// @Security BearerAuth
// @Param segment query string false "Filter by segment"
// @Param tag query string false "Filter by tag"
// @Param search query string false "Search in name, email, phone"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size (max 100)"
// @Success 200 {object} models.ClientListResponse
// @Router /clients [get]
func (h *ClientHandler) ListClients(c *fiber.Ctx) error {
	owner, err := ownerID(c)
	if err != nil {
		return unauthorized(c)
	}

	filter := models.ClientFilter{
		OwnerID:    owner,
		Segment:    c.Query("segment"),
		Tag:        c.Query("tag"),
		SearchTerm: c.Query("search"),
		Page:       c.QueryInt("page", 1),
		PageSize:   c.QueryInt("page_size", 20),
	}

	response, err := h.clientService.ListClients(filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list clients",
		})
	}

	return c.JSON(response)
}

// UpdateClient godoc
// @Summary Update a client
// @Tags Clients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Client ID"
// @Param request body models.UpdateClientRequest true "Fields to update"
// @Success 200 {object} models.Client
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /clients/{id} [put]
func (h *ClientHandler) UpdateClient(c *fiber.Ctx) error {
	owner, err := ownerID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req models.UpdateClientRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	client, err := h.clientService.UpdateClient(c.Params("id"), owner, &req)
	if err != nil {
		status := fiber.StatusBadRequest
		if errors.Is(err, services.ErrClientNotFound) {
			status = fiber.StatusNotFound
		}
		return c.Status(status).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(client)
}

// DeleteClient godoc
// @Summary Delete a client
// @Tags Clients
// @Produce json
// @Security BearerAuth
// @Param id path string true "Client ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /clients/{id} [delete]
func (h *ClientHandler) DeleteClient(c *fiber.Ctx) error {
	owner, err := ownerID(c)
	if err != nil {
		return unauthorized(c)
	}

	if err := h.clientService.DeleteClient(c.Params("id"), owner); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Client not found",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Client deleted",
	})
}
