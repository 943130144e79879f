package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loyaltyloop/loyalty-crm-be/internal/core/llm"
	"github.com/loyaltyloop/loyalty-crm-be/internal/core/recommend"
	"github.com/loyaltyloop/loyalty-crm-be/internal/modules/loyalty/services"
)

// sentimentApp wires an AI handler behind a stub auth middleware. The
// gateway is unconfigured, so the engine answers from its rules path.
func sentimentApp(t *testing.T) *fiber.App {
	t.Helper()

	gateway := llm.NewGateway(&llm.ProviderConfig{Type: llm.ProviderOpenAI})
	kb := recommend.NewKnowledgeBase()
	builder := recommend.NewContextBuilder(kb, recommend.ClimateTropical)
	orchestrator := recommend.NewOrchestrator(gateway, builder)

	aiService := services.NewAIService(orchestrator, nil, nil, nil, nil)
	handler := NewAIHandler(aiService)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("userID", uuid.New().String())
		return c.Next()
	})
	app.Post("/ai/sentiment", handler.AnalyzeSentiment)
	return app
}

func TestAnalyzeSentimentEmptyText(t *testing.T) {
	app := sentimentApp(t)

	req := httptest.NewRequest("POST", "/ai/sentiment", strings.NewReader(`{"text":"   "}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestAnalyzeSentimentTooLong(t *testing.T) {
	app := sentimentApp(t)

	long := strings.Repeat("a", 2100)
	req := httptest.NewRequest("POST", "/ai/sentiment", strings.NewReader(`{"text":"`+long+`"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestAnalyzeSentimentCountsCharactersNotBytes(t *testing.T) {
	app := sentimentApp(t)

	// 1500 characters but 3000 bytes: accented feedback must stay under
	// the 2000-character limit.
	accented := strings.Repeat("á", 1500)
	req := httptest.NewRequest("POST", "/ai/sentiment", strings.NewReader(`{"text":"`+accented+`"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAnalyzeSentimentTooManyCharactersMultibyte(t *testing.T) {
	app := sentimentApp(t)

	accented := strings.Repeat("á", 2100)
	req := httptest.NewRequest("POST", "/ai/sentiment", strings.NewReader(`{"text":"`+accented+`"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestAnalyzeSentimentFallsBackToNeutral(t *testing.T) {
	app := sentimentApp(t)

	req := httptest.NewRequest("POST", "/ai/sentiment", strings.NewReader(`{"text":"El servicio fue excelente"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"sentiment":"neutral"`)
	assert.Contains(t, string(body), `"ai_powered":false`)
}

func TestAnalyzeSentimentRequiresUser(t *testing.T) {
	gateway := llm.NewGateway(&llm.ProviderConfig{Type: llm.ProviderOpenAI})
	kb := recommend.NewKnowledgeBase()
	builder := recommend.NewContextBuilder(kb, recommend.ClimateTropical)
	aiService := services.NewAIService(recommend.NewOrchestrator(gateway, builder), nil, nil, nil, nil)

	app := fiber.New()
	app.Post("/ai/sentiment", NewAIHandler(aiService).AnalyzeSentiment)

	req := httptest.NewRequest("POST", "/ai/sentiment", strings.NewReader(`{"text":"hola"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestStatusForMapsLookupErrors(t *testing.T) {
	assert.Equal(t, fiber.StatusNotFound, statusFor(services.ErrClientNotFound))
	assert.Equal(t, fiber.StatusNotFound, statusFor(fmt.Errorf("load client data: %w", services.ErrClientNotFound)))
	assert.Equal(t, fiber.StatusInternalServerError, statusFor(errors.New("connection reset")))
}
