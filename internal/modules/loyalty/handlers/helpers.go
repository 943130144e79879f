package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ownerID extracts the authenticated user's ID set by the auth middleware
func ownerID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("userID").(string)
	if !ok {
		return uuid.Nil, errors.New("missing user in context")
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.New("invalid user in context")
	}
	return id, nil
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": "Unauthorized",
	})
}
