package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/loyaltyloop/loyalty-crm-be/internal/modules/loyalty/models"
	"github.com/loyaltyloop/loyalty-crm-be/internal/modules/loyalty/services"
)

type PurchaseHandler struct {
	purchaseService *services.PurchaseService
}

func NewPurchaseHandler(purchaseService *services.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{purchaseService: purchaseService}
}

// CreatePurchase godoc
// @Summary Record a purchase
// @Description Records a sale for a client and refreshes the client's churn score
// @Tags Purchases
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreatePurchaseRequest true "Purchase details"
// @Success 201 {object} models.Purchase
// @Failure 400 {object} map[string]interface{}
// @Router /purchases [post]
func (h *PurchaseHandler) CreatePurchase(c *fiber.Ctx) error {
	owner, err := ownerID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req models.CreatePurchaseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	purchase, err := h.purchaseService.CreatePurchase(owner, &req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(purchase)
}

// GetPurchase godoc
// @Summary Get a purchase by ID
// @Tags Purchases
// @Produce json
// @Security BearerAuth
// @Param id path string true "Purchase ID"
// @Success 200 {object} models.Purchase
// @Failure 404 {object} map[string]interface{}
// @Router /purchases/{id} [get]
func (h *PurchaseHandler) GetPurchase(c *fiber.Ctx) error {
	owner, err := ownerID(c)
	if err != nil {
		return unauthorized(c)
	}

	purchase, err := h.purchaseService.GetPurchase(c.Params("id"), owner)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Purchase not found",
		})
	}

	return c.JSON(purchase)
}

// ListPurchases godoc
// @Summary List purchases
// @Tags Purchases
// @Produce json
// @Security BearerAuth
// @Param client_id query string false "Filter by client"
// @Param from query string false "From date (RFC3339)"
// @Param to query string false "To date (RFC3339)"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size (max 100)"
// @Success 200 {object} models.PurchaseListResponse
// @Router /purchases [get]
func (h *PurchaseHandler) ListPurchases(c *fiber.Ctx) error {
	owner, err := ownerID(c)
	if err != nil {
		return unauthorized(c)
	}

	filter := models.PurchaseFilter{
		OwnerID:  owner,
		Page:     c.QueryInt("page", 1),
		PageSize: c.QueryInt("page_size", 20),
	}

	if raw := c.Query("client_id"); raw != "" {
		clientID, err := uuid.Parse(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid client_id",
			})
		}
		filter.ClientID = clientID
	}

	if raw := c.Query("from"); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid from date, use RFC3339",
			})
		}
		filter.From = &from
	}

	if raw := c.Query("to"); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid to date, use RFC3339",
			})
		}
		filter.To = &to
	}

	response, err := h.purchaseService.ListPurchases(filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list purchases",
		})
	}

	return c.JSON(response)
}

// DeletePurchase godoc
// @Summary Delete a purchase
// @Tags Purchases
// @Produce json
// @Security BearerAuth
// @Param id path string true "Purchase ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /purchases/{id} [delete]
func (h *PurchaseHandler) DeletePurchase(c *fiber.Ctx) error {
	owner, err := ownerID(c)
	if err != nil {
		return unauthorized(c)
	}

	if err := h.purchaseService.DeletePurchase(c.Params("id"), owner); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Purchase not found",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Purchase deleted",
	})
}
