package services

import (
	"errors"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/arodena/fitdash/internal/models"
)

var (
	ErrInvalidHeight       = errors.New("invalid height")
	ErrInvalidWeight       = errors.New("invalid weight")
	ErrInvalidAge          = errors.New("invalid age")
	ErrInvalidGender       = errors.New("invalid gender")
	ErrInvalidGoal         = errors.New("invalid fitness goal")
	ErrInvalidTargetWeight = errors.New("invalid target weight")
	ErrInvalidTrackingGoal = errors.New("invalid tracking goal")
	ErrDisplayNameTooLong  = errors.New("display name too long")
)

const maxDisplayNameLength = 64

type BiometricsInput struct {
	HeightCm       float64
	WeightKg       float64
	Age            int
	Gender         string
	Goal           string
	TargetWeightKg *float64
}

// DerivedBiometrics bundles every formula output so the profile is always
// updated as one unit; a BMI without a matching BMR never gets persisted.
type DerivedBiometrics struct {
	BMI               float64 `json:"bmi"`
	BMICategory       string  `json:"bmi_category"`
	BMR               int     `json:"bmr"`
	DailyCaloriesGoal int     `json:"daily_calories_goal"`
}

type GoalsInput struct {
	DisplayName       string
	DailyStepsGoal    int
	DailyWaterGoalML  int
	WeeklyWorkoutGoal int
}

type ProfileUserRepository interface {
	FindByID(userID uint) (models.User, error)
	UpdateByID(userID uint, updates map[string]any) error
}

type ProfileService struct {
	users ProfileUserRepository
}

func NewProfileService(users ProfileUserRepository) *ProfileService {
	return &ProfileService{users: users}
}

// NeedsSetup reports whether the profile is missing the biometrics the
// formulas need. While true the client must prompt for setup instead of
// rendering derived figures.
func NeedsSetup(user *models.User) bool {
	if user == nil {
		return true
	}
	return user.HeightCm <= 0 || user.WeightKg <= 0 || user.Age <= 0 || !user.CaloriesCalculated
}

func ValidateBiometrics(input BiometricsInput) error {
	if input.HeightCm <= 0 {
		return ErrInvalidHeight
	}
	if input.WeightKg <= 0 {
		return ErrInvalidWeight
	}
	if input.Age <= 0 {
		return ErrInvalidAge
	}
	if !models.IsValidGender(input.Gender) {
		return ErrInvalidGender
	}
	if !models.IsValidGoal(input.Goal) {
		return ErrInvalidGoal
	}
	if input.TargetWeightKg != nil && *input.TargetWeightKg <= 0 {
		return ErrInvalidTargetWeight
	}
	return nil
}

// ComputeDerived evaluates every biometric formula against one input
// snapshot. Pure: computing twice from the same input yields identical
// values.
func ComputeDerived(input BiometricsInput) DerivedBiometrics {
	bmi := BMI(input.WeightKg, input.HeightCm)
	bmr := BMR(input.WeightKg, input.HeightCm, input.Age, input.Gender)
	return DerivedBiometrics{
		BMI:               bmi,
		BMICategory:       BMICategory(bmi),
		BMR:               int(math.Round(bmr)),
		DailyCaloriesGoal: DailyCalorieGoal(bmr, input.Goal),
	}
}

func (service *ProfileService) FindByID(userID uint) (models.User, error) {
	return service.users.FindByID(userID)
}

// SaveBiometrics validates the setup form input, recomputes all derived
// fields, and persists raw plus derived values in a single update.
func (service *ProfileService) SaveBiometrics(userID uint, input BiometricsInput) (DerivedBiometrics, error) {
	if err := ValidateBiometrics(input); err != nil {
		return DerivedBiometrics{}, err
	}

	derived := ComputeDerived(input)
	updates := map[string]any{
		"height_cm":           input.HeightCm,
		"weight_kg":           input.WeightKg,
		"age":                 input.Age,
		"gender":              input.Gender,
		"goal":                input.Goal,
		"bmi":                 derived.BMI,
		"bmi_category":        derived.BMICategory,
		"bmr":                 derived.BMR,
		"daily_calories_goal": derived.DailyCaloriesGoal,
		"calories_calculated": true,
	}
	if input.TargetWeightKg != nil {
		updates["target_weight_kg"] = *input.TargetWeightKg
	}

	if err := service.users.UpdateByID(userID, updates); err != nil {
		return DerivedBiometrics{}, err
	}
	return derived, nil
}

func (service *ProfileService) UpdateGoals(userID uint, input GoalsInput) error {
	displayName := strings.TrimSpace(input.DisplayName)
	if utf8.RuneCountInString(displayName) > maxDisplayNameLength {
		return ErrDisplayNameTooLong
	}
	if input.DailyStepsGoal <= 0 || input.DailyWaterGoalML <= 0 || input.WeeklyWorkoutGoal <= 0 {
		return ErrInvalidTrackingGoal
	}

	return service.users.UpdateByID(userID, map[string]any{
		"display_name":        displayName,
		"daily_steps_goal":    input.DailyStepsGoal,
		"daily_water_goal_ml": input.DailyWaterGoalML,
		"weekly_workout_goal": input.WeeklyWorkoutGoal,
	})
}
