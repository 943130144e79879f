package handlers

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loyaltyloop/loyalty-crm-be/internal/core/churn"
	"github.com/loyaltyloop/loyalty-crm-be/internal/core/llm"
)

func TestGetHealthReportsScheduledJobs(t *testing.T) {
	gateway := llm.NewGateway(&llm.ProviderConfig{Type: llm.ProviderOpenAI})
	scheduler := churn.NewScheduler()
	require.NoError(t, scheduler.AddJob("churn-sweep", "0 3 * * *", func() {}))

	app := fiber.New()
	app.Get("/health", NewHealthHandler(gateway, scheduler).GetHealth)

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"churn-sweep"`)
	assert.Contains(t, string(body), `"ai_available":false`)
}
