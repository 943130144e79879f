package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/loyaltyloop/loyalty-crm-be/internal/modules/loyalty/services"
)

type CardHandler struct {
	cardService   *services.CardService
	clientService *services.ClientService
}

func NewCardHandler(cardService *services.CardService, clientService *services.ClientService) *CardHandler {
	return &CardHandler{
		cardService:   cardService,
		clientService: clientService,
	}
}

// GetCard godoc
// @Summary Get a client's loyalty card
// @Description Returns the client's loyalty card with its QR code as base64 PNG
// @Tags Loyalty
// @Produce json
// @Security BearerAuth
// @Param id path string true "Client ID"
// @Success 200 {object} services.LoyaltyCard
// @Failure 404 {object} map[string]interface{}
// @Router /clients/{id}/card [get]
func (h *CardHandler) GetCard(c *fiber.Ctx) error {
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

	card, err := h.cardService.GenerateCard(client.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate loyalty card",
		})
	}

	return c.JSON(card)
}

// GetCardImage godoc
// @Summary Get a client's loyalty card QR as PNG
// @Tags Loyalty
// @Produce png
// @Security BearerAuth
// @Param id path string true "Client ID"
// @Param size query int false "Image size in pixels (64-1024, default 256)"
// @Success 200 {file} binary
// @Failure 404 {object} map[string]interface{}
// @Router /clients/{id}/card.png [get]
func (h *CardHandler) GetCardImage(c *fiber.Ctx) error {
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

	data, err := h.cardService.GenerateCardPNG(client.ID, c.QueryInt("size", 256))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate loyalty card",
		})
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(data)
}
