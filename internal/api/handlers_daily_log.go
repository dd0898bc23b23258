package api

import (
	"errors"
	"time"

	"github.com/arodena/fitdash/internal/services"
	"github.com/gofiber/fiber/v2"
)

// GetDailyLogs returns the full per-day history, newest first, which backs the
// client's weight and activity trend views.
func (handler *Handler) GetDailyLogs(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	logs, err := handler.dayService.ListForUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load daily logs")
	}
	return c.JSON(fiber.Map{"logs": logs})
}

func (handler *Handler) GetTodayLog(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	entry, err := handler.dayService.LogForDate(user.ID, time.Now(), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load daily log")
	}
	return c.JSON(entry)
}

// UpdateTodayLog upserts a single scalar metric (steps, water_ml, weight_kg)
// for the current day, mirroring the dashboard's quick-entry tiles.
func (handler *Handler) UpdateTodayLog(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := dayLogUpdateInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	entry, err := handler.dayService.UpsertScalar(user.ID, time.Now(), services.DayLogUpdate{
		Field: input.Field,
		Value: input.Value,
	}, handler.location)
	if err != nil {
		if errors.Is(err, services.ErrUnknownDayLogField) || errors.Is(err, services.ErrNegativeDayLogValue) {
			return apiError(c, fiber.StatusBadRequest, err.Error())
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to update daily log")
	}
	return c.JSON(entry)
}
