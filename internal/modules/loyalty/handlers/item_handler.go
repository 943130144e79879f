package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/loyaltyloop/loyalty-crm-be/internal/modules/loyalty/models"
	"github.com/loyaltyloop/loyalty-crm-be/internal/modules/loyalty/services"
)

type ItemHandler struct {
	itemService *services.ItemService
}

func NewItemHandler(itemService *services.ItemService) *ItemHandler {
	return &ItemHandler{itemService: itemService}
}

// CreateItem godoc
// @Summary Create a catalog item
// @Tags Items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateItemRequest true "Item details"
// @Success 201 {object} models.Item
// @Failure 400 {object} map[string]interface{}
// @Router /items [post]
func (h *ItemHandler) CreateItem(c *fiber.Ctx) error {
	owner, err := ownerID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req models.CreateItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	item, err := h.itemService.CreateItem(owner, &req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}

// GetItem godoc
// @Summary Get an item by ID
// @Tags Items
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Success 200 {object} models.Item
// @Failure 404 {object} map[string]interface{}
// @Router /items/{id} [get]
func (h *ItemHandler) GetItem(c *fiber.Ctx) error {
	owner, err := ownerID(c)
	if err != nil {
		return unauthorized(c)
	}

	item, err := h.itemService.GetItem(c.Params("id"), owner)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Item not found",
		})
	}

	return c.JSON(item)
}

// ListItems godoc
// @Summary List catalog items
// @Tags Items
// @Produce json
// @Security BearerAuth
// @Param category query string false "Filter by category"
// @Param search query string false "Search in name, SKU"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size (max 100)"
// @Success 200 {object} models.ItemListResponse
// @Router /items [get]
func (h *ItemHandler) ListItems(c *fiber.Ctx) error {
	owner, err := ownerID(c)
	if err != nil {
		return unauthorized(c)
	}

	filter := models.ItemFilter{
		OwnerID:    owner,
		Category:   c.Query("category"),
		SearchTerm: c.Query("search"),
		Page:       c.QueryInt("page", 1),
		PageSize:   c.QueryInt("page_size", 20),
	}

	response, err := h.itemService.ListItems(filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list items",
		})
	}

	return c.JSON(response)
}

// UpdateItem godoc
// @Summary Update an item
// @Tags Items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Param request body models.UpdateItemRequest true "Fields to update"
// @Success 200 {object} models.Item
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /items/{id} [put]
func (h *ItemHandler) UpdateItem(c *fiber.Ctx) error {
	owner, err := ownerID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req models.UpdateItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	item, err := h.itemService.UpdateItem(c.Params("id"), owner, &req)
	if err != nil {
		status := fiber.StatusBadRequest
		if errors.Is(err, services.ErrItemNotFound) {
			status = fiber.StatusNotFound
		}
		return c.Status(status).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(item)
}

// DeleteItem godoc
// @Summary Delete an item
// @Tags Items
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /items/{id} [delete]
func (h *ItemHandler) DeleteItem(c *fiber.Ctx) error {
	owner, err := ownerID(c)
	if err != nil {
		return unauthorized(c)
	}

	if err := h.itemService.DeleteItem(c.Params("id"), owner); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Item not found",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Item deleted",
	})
}
