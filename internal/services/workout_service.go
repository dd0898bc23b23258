package services

import (
	"errors"
	"strings"
	"time"

	"github.com/arodena/fitdash/internal/models"
)

var (
	ErrWorkoutNameRequired  = errors.New("workout name required")
	ErrInvalidWorkoutValues = errors.New("invalid workout values")
	ErrWorkoutNotFound      = errors.New("workout not found")
)

type WorkoutInput struct {
	Date            time.Time
	Name            string
	WorkoutType     string
	CaloriesBurned  int
	DurationMinutes int
	Notes           string
}

// WorkoutSummary sums a set of workout records; calories and minutes are
// accumulated independently.
type WorkoutSummary struct {
	CaloriesBurned  int `json:"calories_burned"`
	DurationMinutes int `json:"duration_minutes"`
	Count           int `json:"count"`
}

func SumWorkouts(workouts []models.Workout) WorkoutSummary {
	summary := WorkoutSummary{Count: len(workouts)}
	for _, workout := range workouts {
		summary.CaloriesBurned += workout.CaloriesBurned
		summary.DurationMinutes += workout.DurationMinutes
	}
	return summary
}

type WorkoutRepository interface {
	ListByUser(userID uint) ([]models.Workout, error)
	ListByUserDayRange(userID uint, dayStart time.Time, dayEnd time.Time) ([]models.Workout, error)
	FindByIDForUser(workoutID uint, userID uint) (models.Workout, bool, error)
	Create(workout *models.Workout) error
	Save(workout *models.Workout) error
	DeleteByIDForUser(workoutID uint, userID uint) (int64, error)
}

type WorkoutService struct {
	workouts WorkoutRepository
}

func NewWorkoutService(workouts WorkoutRepository) *WorkoutService {
	return &WorkoutService{workouts: workouts}
}

func (service *WorkoutService) ListForUser(userID uint) ([]models.Workout, error) {
	return service.workouts.ListByUser(userID)
}

func (service *WorkoutService) ListForDay(userID uint, day time.Time, location *time.Location) ([]models.Workout, error) {
	dayStart, dayEnd := DayRange(day, location)
	return service.workouts.ListByUserDayRange(userID, dayStart, dayEnd)
}

// TodaySummary aggregates the workouts whose date falls on the current
// calendar day in the given location.
func (service *WorkoutService) TodaySummary(userID uint, now time.Time, location *time.Location) (WorkoutSummary, error) {
	workouts, err := service.ListForDay(userID, now, location)
	if err != nil {
		return WorkoutSummary{}, err
	}
	return SumWorkouts(workouts), nil
}

func (service *WorkoutService) Add(userID uint, input WorkoutInput, location *time.Location) (models.Workout, error) {
	normalized, err := normalizeWorkoutInput(input, location)
	if err != nil {
		return models.Workout{}, err
	}

	workout := models.Workout{
		UserID:          userID,
		Date:            normalized.Date,
		Name:            normalized.Name,
		WorkoutType:     normalized.WorkoutType,
		CaloriesBurned:  normalized.CaloriesBurned,
		DurationMinutes: normalized.DurationMinutes,
		Notes:           normalized.Notes,
	}
	if err := service.workouts.Create(&workout); err != nil {
		return models.Workout{}, err
	}
	return workout, nil
}

func (service *WorkoutService) Update(userID uint, workoutID uint, input WorkoutInput, location *time.Location) (models.Workout, error) {
	normalized, err := normalizeWorkoutInput(input, location)
	if err != nil {
		return models.Workout{}, err
	}

	workout, found, err := service.workouts.FindByIDForUser(workoutID, userID)
	if err != nil {
		return models.Workout{}, err
	}
	if !found {
		return models.Workout{}, ErrWorkoutNotFound
	}

	workout.Date = normalized.Date
	workout.Name = normalized.Name
	workout.WorkoutType = normalized.WorkoutType
	workout.CaloriesBurned = normalized.CaloriesBurned
	workout.DurationMinutes = normalized.DurationMinutes
	workout.Notes = normalized.Notes
	if err := service.workouts.Save(&workout); err != nil {
		return models.Workout{}, err
	}
	return workout, nil
}

func (service *WorkoutService) Delete(userID uint, workoutID uint) error {
	deleted, err := service.workouts.DeleteByIDForUser(workoutID, userID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrWorkoutNotFound
	}
	return nil
}

func normalizeWorkoutInput(input WorkoutInput, location *time.Location) (WorkoutInput, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return WorkoutInput{}, ErrWorkoutNameRequired
	}
	if input.CaloriesBurned < 0 || input.DurationMinutes < 0 {
		return WorkoutInput{}, ErrInvalidWorkoutValues
	}
	if input.Date.IsZero() {
		return WorkoutInput{}, ErrInvalidWorkoutValues
	}
	input.Date = DateAtLocation(input.Date, location)
	input.WorkoutType = strings.TrimSpace(input.WorkoutType)
	input.Notes = strings.TrimSpace(input.Notes)
	return input, nil
}
