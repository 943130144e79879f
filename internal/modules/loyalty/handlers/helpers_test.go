package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ownerApp routes through ownerID with whatever the middleware stored
// under the userID local.
func ownerApp(userID interface{}) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if userID != nil {
			c.Locals("userID", userID)
		}
		return c.Next()
	})
	app.Get("/whoami", func(c *fiber.Ctx) error {
		id, err := ownerID(c)
		if err != nil {
			return unauthorized(c)
		}
		return c.JSON(fiber.Map{"id": id.String()})
	})
	return app
}

func TestOwnerIDValid(t *testing.T) {
	id := uuid.New()
	app := ownerApp(id.String())

	resp, err := app.Test(httptest.NewRequest("GET", "/whoami", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestOwnerIDMissing(t *testing.T) {
	app := ownerApp(nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/whoami", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestOwnerIDNonStringDoesNotPanic(t *testing.T) {
	// A middleware storing the wrong type must yield 401, not crash the request
	app := ownerApp(uuid.New())

	resp, err := app.Test(httptest.NewRequest("GET", "/whoami", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestOwnerIDMalformed(t *testing.T) {
	app := ownerApp("not-a-uuid")

	resp, err := app.Test(httptest.NewRequest("GET", "/whoami", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
