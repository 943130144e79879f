package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/loyaltyloop/loyalty-crm-be/internal/core/churn"
	"github.com/loyaltyloop/loyalty-crm-be/internal/core/llm"
)

type HealthHandler struct {
	gateway   *llm.Gateway
	scheduler *churn.Scheduler
}

func NewHealthHandler(gateway *llm.Gateway, scheduler *churn.Scheduler) *HealthHandler {
	return &HealthHandler{gateway: gateway, scheduler: scheduler}
}

// GetHealth godoc
// @Summary Service health check
// @Description Check if API is alive, whether the AI provider is configured, and which background jobs are scheduled
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *HealthHandler) GetHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":         "ok",
		"service":        "loyalty-crm-api",
		"ai_provider":    h.gateway.ProviderName(),
		"ai_available":   h.gateway.Available(),
		"scheduled_jobs": h.scheduler.JobNames(),
	})
}
