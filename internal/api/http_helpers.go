package api

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	raw := strings.TrimSpace(c.Params(name))
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || value == 0 {
		return 0, fiber.ErrBadRequest
	}
	return uint(value), nil
}

// parseDateQuery reads an optional YYYY-MM-DD query value, defaulting to now.
func parseDateQuery(c *fiber.Ctx, name string, now time.Time, location *time.Location) (time.Time, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return now, nil
	}
	day, err := time.ParseInLocation("2006-01-02", raw, location)
	if err != nil {
		return time.Time{}, fiber.ErrBadRequest
	}
	return day, nil
}
