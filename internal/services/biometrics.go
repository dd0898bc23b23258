package services

import (
	"math"

	"github.com/arodena/fitdash/internal/models"
)

// Fixed heuristics carried over from the dashboard's calorie plan. The
// sedentary multiplier and the per-goal adjustments are intentionally not
// configurable; the derived figures must stay reproducible from raw inputs.
const (
	sedentaryActivityMultiplier = 1.2
	loseWeightCalorieDeficit    = 500
	gainWeightCalorieSurplus    = 300
)

// BMI returns weight (kg) divided by height (m) squared, rounded to one
// decimal place. A non-positive height means "unset" and yields 0.
func BMI(weightKg float64, heightCm float64) float64 {
	heightM := heightCm / 100
	if heightM <= 0 {
		return 0
	}
	return math.Round(weightKg/(heightM*heightM)*10) / 10
}

// BMICategory classifies a BMI value. Bands are inclusive on their lower
// bound: [0), [18.5, 25), [25, 30), [30, inf).
func BMICategory(bmi float64) string {
	switch {
	case bmi <= 0:
		return models.BMICategoryUnknown
	case bmi < 18.5:
		return models.BMICategoryUnderweight
	case bmi < 25:
		return models.BMICategoryNormal
	case bmi < 30:
		return models.BMICategoryOverweight
	default:
		return models.BMICategoryObese
	}
}

// BMR computes the Mifflin-St Jeor basal metabolic rate in kcal/day. Any
// missing input yields 0. An unrecognized gender uses the male constant.
func BMR(weightKg float64, heightCm float64, ageYears int, gender string) float64 {
	if weightKg <= 0 || heightCm <= 0 || ageYears <= 0 {
		return 0
	}

	bmr := 10*weightKg + 6.25*heightCm - 5*float64(ageYears)
	if gender == models.GenderFemale {
		return bmr - 161
	}
	return bmr + 5
}

// DailyCalorieGoal derives the daily intake target from BMR and the stated
// fitness goal: sedentary TDEE minus 500 to lose weight, plus 300 to gain.
// An unrecognized goal applies no adjustment, same as maintain.
func DailyCalorieGoal(bmr float64, goal string) int {
	if bmr <= 0 {
		return 0
	}

	calories := bmr * sedentaryActivityMultiplier
	switch goal {
	case models.GoalLoseWeight:
		calories -= loseWeightCalorieDeficit
	case models.GoalGainWeight:
		calories += gainWeightCalorieSurplus
	}
	return int(math.Round(calories))
}
