package services

import "math"

// stepCaloriesPerStep is a fixed linear estimate, not adjusted for gender or
// weight. Kept as-is so logged history keeps producing the same figures.
const stepCaloriesPerStep = 0.04

// StepCaloriesBurned estimates the calorie burn contribution of a step count.
func StepCaloriesBurned(steps int) int {
	if steps <= 0 {
		return 0
	}
	return int(math.Round(float64(steps) * stepCaloriesPerStep))
}

// GoalProgress returns value as a percentage of goal, rounded and clamped to
// [0, 100]. A non-positive goal reads as "no goal set" and yields 0. The same
// formula backs the calorie progress bar and the steps/water/burned rings.
func GoalProgress(value float64, goal float64) int {
	if goal <= 0 {
		return 0
	}
	pct := int(math.Round(value / goal * 100))
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// RemainingBudget returns how many more calories fit before reaching the
// daily goal, never negative.
func RemainingBudget(eaten float64, goal int) int {
	remaining := goal - int(math.Round(eaten))
	if remaining < 0 {
		return 0
	}
	return remaining
}
