package handlers

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"
	"github.com/loyaltyloop/loyalty-crm-be/internal/modules/loyalty/services"
)

// maxSentimentLength bounds the feedback text accepted for analysis, in
// characters rather than bytes so accented Spanish feedback is not
// penalized for its encoding.
const maxSentimentLength = 2000

type AIHandler struct {
	aiService *services.AIService
}

func NewAIHandler(aiService *services.AIService) *AIHandler {
	return &AIHandler{aiService: aiService}
}

// GetRecommendations godoc
// @Summary Get retention recommendations
// @Description Generates recommendations for one client, or for the highest-risk clients when client_id is omitted. Falls back to rule-based recommendations when the AI provider is unavailable.
// @Tags AI
// @Produce json
// @Security BearerAuth
// @Param client_id query string false "Client ID (omit for batch over top at-risk clients)"
// @Param limit query int false "Batch size, 1-50 (default 5)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /ai/recommendations [get]
func (h *AIHandler) GetRecommendations(c *fiber.Ctx) error {
	owner, err := ownerID(c)
	if err != nil {
		return unauthorized(c)
	}

	clientID := c.Query("client_id")
	if clientID != "" {
		result, err := h.aiService.RecommendationsForClient(c.Context(), owner, clientID)
		if err != nil {
			return c.Status(statusFor(err)).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.JSON(result)
	}

	limit := c.QueryInt("limit", 5)
	if limit < 1 || limit > 50 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "limit must be between 1 and 50",
		})
	}

	results, err := h.aiService.RecommendationsBatch(c.Context(), owner, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to generate recommendations",
		})
	}

	return c.JSON(fiber.Map{
		"results": results,
		"count":   len(results),
	})
}

// GetSuggestions godoc
// @Summary Get sales suggestions for a client
// @Description Generates cross-sell and engagement suggestions. Falls back to rule-based suggestions when the AI provider is unavailable.
// @Tags AI
// @Produce json
// @Security BearerAuth
// @Param client_id path string true "Client ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /ai/suggestions/{client_id} [get]
func (h *AIHandler) GetSuggestions(c *fiber.Ctx) error {
	owner, err := ownerID(c)
	if err != nil {
		return unauthorized(c)
	}

	result, err := h.aiService.SuggestionsForClient(c.Context(), owner, c.Params("client_id"))
	if err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(result)
}

// SentimentRequest carries the feedback text to analyze
type SentimentRequest struct {
	Text string `json:"text" validate:"required,max=2000"`
}

// AnalyzeSentiment godoc
// @Summary Analyze feedback sentiment
// @Description Classifies free-form customer feedback. Returns a neutral baseline when the AI provider is unavailable.
// @Tags AI
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SentimentRequest true "Feedback text (max 2000 characters)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /ai/sentiment [post]
func (h *AIHandler) AnalyzeSentiment(c *fiber.Ctx) error {
	if _, err := ownerID(c); err != nil {
		return unauthorized(c)
	}

	var req SentimentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "text is required",
		})
	}
	if utf8.RuneCountInString(text) > maxSentimentLength {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "text must be at most 2000 characters",
		})
	}

	result := h.aiService.AnalyzeSentiment(c.Context(), text)
	return c.JSON(result)
}

func statusFor(err error) int {
	if errors.Is(err, services.ErrClientNotFound) {
		return fiber.StatusNotFound
	}
	return fiber.StatusInternalServerError
}
