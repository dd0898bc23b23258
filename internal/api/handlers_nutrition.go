package api

import (
	"errors"
	"time"

	"github.com/arodena/fitdash/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) GetNutritionDay(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	day, err := parseDateQuery(c, "date", time.Now(), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	nutritionDay, err := handler.nutritionService.DayForUser(user.ID, day, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load nutrition entries")
	}

	return c.JSON(fiber.Map{
		"date":    services.DateAtLocation(day, handler.location).Format("2006-01-02"),
		"entries": nutritionDay.Entries,
		"meals":   nutritionDay.Meals,
		"totals":  nutritionDay.Totals,
	})
}

func (handler *Handler) CreateNutritionEntry(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := nutritionEntryInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	day := time.Now()
	if input.Date != "" {
		parsed, err := time.ParseInLocation("2006-01-02", input.Date, handler.location)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid date")
		}
		day = parsed
	}

	entry, err := handler.nutritionService.AddEntry(user.ID, day, services.NutritionEntryInput{
		MealType: input.MealType,
		Name:     input.Name,
		Calories: input.Calories,
		Protein:  input.Protein,
		Carbs:    input.Carbs,
		Fat:      input.Fat,
	}, handler.location)
	if err != nil {
		if errors.Is(err, services.ErrInvalidMealType) || errors.Is(err, services.ErrInvalidNutritionValues) {
			return apiError(c, fiber.StatusBadRequest, err.Error())
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to create nutrition entry")
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

func (handler *Handler) DeleteNutritionEntry(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	entryID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	if err := handler.nutritionService.DeleteEntry(user.ID, entryID); err != nil {
		if errors.Is(err, services.ErrNutritionEntryNotFound) {
			return apiError(c, fiber.StatusNotFound, "nutrition entry not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to delete nutrition entry")
	}
	return c.JSON(fiber.Map{"ok": true})
}
