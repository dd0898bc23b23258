package api

import (
	"errors"
	"time"

	"github.com/arodena/fitdash/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) GetWorkouts(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	workouts, err := handler.workoutService.ListForUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load workouts")
	}
	return c.JSON(fiber.Map{"workouts": workouts})
}

func (handler *Handler) GetTodayWorkouts(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	now := time.Now()
	workouts, err := handler.workoutService.ListForDay(user.ID, now, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load workouts")
	}

	return c.JSON(fiber.Map{
		"workouts": workouts,
		"summary":  services.SumWorkouts(workouts),
	})
}

func (handler *Handler) CreateWorkout(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input, parseErr := parseWorkoutInput(c, handler.location)
	if parseErr != "" {
		return apiError(c, fiber.StatusBadRequest, parseErr)
	}

	workout, err := handler.workoutService.Add(user.ID, input, handler.location)
	if err != nil {
		if errors.Is(err, services.ErrWorkoutNameRequired) || errors.Is(err, services.ErrInvalidWorkoutValues) {
			return apiError(c, fiber.StatusBadRequest, err.Error())
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to create workout")
	}
	return c.Status(fiber.StatusCreated).JSON(workout)
}

func (handler *Handler) UpdateWorkout(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	workoutID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	input, parseErr := parseWorkoutInput(c, handler.location)
	if parseErr != "" {
		return apiError(c, fiber.StatusBadRequest, parseErr)
	}

	workout, updateErr := handler.workoutService.Update(user.ID, workoutID, input, handler.location)
	if updateErr != nil {
		switch {
		case errors.Is(updateErr, services.ErrWorkoutNotFound):
			return apiError(c, fiber.StatusNotFound, "workout not found")
		case errors.Is(updateErr, services.ErrWorkoutNameRequired), errors.Is(updateErr, services.ErrInvalidWorkoutValues):
			return apiError(c, fiber.StatusBadRequest, updateErr.Error())
		default:
			return apiError(c, fiber.StatusInternalServerError, "failed to update workout")
		}
	}
	return c.JSON(workout)
}

func (handler *Handler) DeleteWorkout(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	workoutID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	if err := handler.workoutService.Delete(user.ID, workoutID); err != nil {
		if errors.Is(err, services.ErrWorkoutNotFound) {
			return apiError(c, fiber.StatusNotFound, "workout not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to delete workout")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func parseWorkoutInput(c *fiber.Ctx, location *time.Location) (services.WorkoutInput, string) {
	input := workoutInput{}
	if err := c.BodyParser(&input); err != nil {
		return services.WorkoutInput{}, "invalid input"
	}

	day := time.Now()
	if input.Date != "" {
		parsed, err := time.ParseInLocation("2006-01-02", input.Date, location)
		if err != nil {
			return services.WorkoutInput{}, "invalid date"
		}
		day = parsed
	}

	return services.WorkoutInput{
		Date:            day,
		Name:            input.Name,
		WorkoutType:     input.WorkoutType,
		CaloriesBurned:  input.CaloriesBurned,
		DurationMinutes: input.DurationMinutes,
		Notes:           input.Notes,
	}, ""
}
