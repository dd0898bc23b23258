package services

import (
	"math"
	"time"

	"github.com/arodena/fitdash/internal/models"
)

// DashboardFigures are the display-ready derived values for one day. Every
// field is recomputed from the latest snapshot on each call; nothing here is
// incremental.
type DashboardFigures struct {
	Eaten           int `json:"eaten"`
	WorkoutBurn     int `json:"workout_burn"`
	StepBurn        int `json:"step_burn"`
	TotalBurned     int `json:"total_burned"`
	Net             int `json:"net"`
	CalorieGoal     int `json:"calorie_goal"`
	ProgressPct     int `json:"progress_pct"`
	RemainingBudget int `json:"remaining_budget"`
	StepsRingPct    int `json:"steps_ring_pct"`
	WaterRingPct    int `json:"water_ring_pct"`
	BurnedRingPct   int `json:"burned_ring_pct"`
}

// BuildDashboardFigures combines one day's aggregates with the profile goals.
// Pure; the service methods only gather the snapshot it consumes.
func BuildDashboardFigures(user *models.User, totals NutritionTotals, workoutBurn int, todayLog models.DailyLog) DashboardFigures {
	calorieGoal := 0
	stepsGoal := 0
	waterGoal := 0
	if user != nil {
		calorieGoal = user.DailyCaloriesGoal
		stepsGoal = user.DailyStepsGoal
		waterGoal = user.DailyWaterGoalML
	}

	stepBurn := StepCaloriesBurned(todayLog.Steps)
	totalBurned := workoutBurn + stepBurn
	eaten := int(math.Round(totals.Calories))

	return DashboardFigures{
		Eaten:           eaten,
		WorkoutBurn:     workoutBurn,
		StepBurn:        stepBurn,
		TotalBurned:     totalBurned,
		Net:             eaten - totalBurned,
		CalorieGoal:     calorieGoal,
		ProgressPct:     GoalProgress(totals.Calories, float64(calorieGoal)),
		RemainingBudget: RemainingBudget(totals.Calories, calorieGoal),
		StepsRingPct:    GoalProgress(float64(todayLog.Steps), float64(stepsGoal)),
		WaterRingPct:    GoalProgress(float64(todayLog.WaterML), float64(waterGoal)),
		BurnedRingPct:   GoalProgress(float64(totalBurned), float64(calorieGoal)),
	}
}

// DashboardSummary is the full payload behind the dashboard page: setup gate,
// profile snapshot, today's raw metrics, the figure block, and the macro
// totals and workout summary feeding it.
type DashboardSummary struct {
	NeedsSetup bool             `json:"needs_setup"`
	Date       string           `json:"date"`
	Profile    models.User      `json:"profile"`
	Figures    DashboardFigures `json:"figures"`
	Nutrition  NutritionTotals  `json:"nutrition_totals"`
	Workouts   WorkoutSummary   `json:"workouts"`
	Steps      int              `json:"steps"`
	WaterML    int              `json:"water_ml"`
}

type DashboardProfileReader interface {
	FindByID(userID uint) (models.User, error)
}

type DashboardService struct {
	users     DashboardProfileReader
	days      *DayService
	nutrition *NutritionService
	workouts  *WorkoutService
}

func NewDashboardService(users DashboardProfileReader, days *DayService, nutrition *NutritionService, workouts *WorkoutService) *DashboardService {
	return &DashboardService{
		users:     users,
		days:      days,
		nutrition: nutrition,
		workouts:  workouts,
	}
}

// SummaryForToday loads fresh per-day snapshots and evaluates the figures.
// The engine keeps no state between calls; two racing profile writes are
// resolved by the database's write ordering, last snapshot wins.
func (service *DashboardService) SummaryForToday(userID uint, now time.Time, location *time.Location) (DashboardSummary, error) {
	user, err := service.users.FindByID(userID)
	if err != nil {
		return DashboardSummary{}, err
	}

	todayLog, err := service.days.LogForDate(userID, now, location)
	if err != nil {
		return DashboardSummary{}, err
	}

	nutritionDay, err := service.nutrition.DayForUser(userID, now, location)
	if err != nil {
		return DashboardSummary{}, err
	}

	workoutSummary, err := service.workouts.TodaySummary(userID, now, location)
	if err != nil {
		return DashboardSummary{}, err
	}

	return DashboardSummary{
		NeedsSetup: NeedsSetup(&user),
		Date:       DateAtLocation(now, location).Format("2006-01-02"),
		Profile:    user,
		Figures:    BuildDashboardFigures(&user, nutritionDay.Totals, workoutSummary.CaloriesBurned, todayLog),
		Nutrition:  nutritionDay.Totals,
		Workouts:   workoutSummary,
		Steps:      todayLog.Steps,
		WaterML:    todayLog.WaterML,
	}, nil
}
