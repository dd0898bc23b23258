package api

import (
	"errors"

	"github.com/arodena/fitdash/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) GetProfile(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	return c.JSON(fiber.Map{
		"profile":     user,
		"needs_setup": services.NeedsSetup(user),
	})
}

// UpdateBiometrics handles the setup form: it persists the raw biometrics and
// every derived field in one shot, so readers never observe a half-updated
// calorie plan.
func (handler *Handler) UpdateBiometrics(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := biometricsInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	derived, err := handler.profileService.SaveBiometrics(user.ID, services.BiometricsInput{
		HeightCm:       input.HeightCm,
		WeightKg:       input.WeightKg,
		Age:            input.Age,
		Gender:         input.Gender,
		Goal:           input.Goal,
		TargetWeightKg: input.TargetWeightKg,
	})
	if err != nil {
		if isBiometricsValidationError(err) {
			return apiError(c, fiber.StatusBadRequest, err.Error())
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to update profile")
	}

	updated, err := handler.profileService.FindByID(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load profile")
	}

	return c.JSON(fiber.Map{
		"profile":     updated,
		"derived":     derived,
		"needs_setup": services.NeedsSetup(&updated),
	})
}

func (handler *Handler) UpdateGoals(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := goalsInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	err := handler.profileService.UpdateGoals(user.ID, services.GoalsInput{
		DisplayName:       input.DisplayName,
		DailyStepsGoal:    input.DailyStepsGoal,
		DailyWaterGoalML:  input.DailyWaterGoalML,
		WeeklyWorkoutGoal: input.WeeklyWorkoutGoal,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidTrackingGoal) || errors.Is(err, services.ErrDisplayNameTooLong) {
			return apiError(c, fiber.StatusBadRequest, err.Error())
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to update goals")
	}

	updated, err := handler.profileService.FindByID(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load profile")
	}
	return c.JSON(fiber.Map{"profile": updated})
}

func isBiometricsValidationError(err error) bool {
	return errors.Is(err, services.ErrInvalidHeight) ||
		errors.Is(err, services.ErrInvalidWeight) ||
		errors.Is(err, services.ErrInvalidAge) ||
		errors.Is(err, services.ErrInvalidGender) ||
		errors.Is(err, services.ErrInvalidGoal) ||
		errors.Is(err, services.ErrInvalidTargetWeight)
}
