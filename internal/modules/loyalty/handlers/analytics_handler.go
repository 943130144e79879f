package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/loyaltyloop/loyalty-crm-be/internal/modules/loyalty/services"
)

type AnalyticsHandler struct {
	analyticsService *services.AnalyticsService
	churnService     *services.ChurnService
}

func NewAnalyticsHandler(analyticsService *services.AnalyticsService, churnService *services.ChurnService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
		churnService:     churnService,
	}
}

// GetDashboard godoc
// @Summary Get analytics dashboard
// @Description Returns revenue stats, trends, segment breakdown and top at-risk clients
// @Tags Analytics
// @Produce json
// @Security BearerAuth
// @Param period query string false "Period: today, this_week, this_month, last_month, this_year, last_30_days, last_90_days"
// @Success 200 {object} services.Dashboard
// @Router /analytics/dashboard [get]
func (h *AnalyticsHandler) GetDashboard(c *fiber.Ctx) error {
	owner, err := ownerID(c)
	if err != nil {
		return unauthorized(c)
	}

	period := c.Query("period", "last_30_days")

	dashboard, err := h.analyticsService.GetDashboard(owner, period)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to build dashboard",
		})
	}

	return c.JSON(dashboard)
}

// RefreshChurnScores godoc
// @Summary Refresh churn scores
// @Description Recomputes churn scores for all of the owner's active clients
// @Tags Analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /analytics/churn/refresh [post]
func (h *AnalyticsHandler) RefreshChurnScores(c *fiber.Ctx) error {
	owner, err := ownerID(c)
	if err != nil {
		return unauthorized(c)
	}

	refreshed, err := h.churnService.RefreshOwner(owner)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to refresh churn scores",
		})
	}

	return c.JSON(fiber.Map{
		"refreshed": refreshed,
	})
}
