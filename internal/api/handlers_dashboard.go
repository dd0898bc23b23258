package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// GetDashboardSummary returns every derived figure the dashboard renders,
// recomputed from a fresh snapshot of today's records.
func (handler *Handler) GetDashboardSummary(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	summary, err := handler.dashboardService.SummaryForToday(user.ID, time.Now(), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build dashboard summary")
	}
	return c.JSON(summary)
}
