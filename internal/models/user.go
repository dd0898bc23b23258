package models

import "time"

const (
	GenderMale   = "male"
	GenderFemale = "female"
)

const (
	GoalLoseWeight = "lose_weight"
	GoalGainWeight = "gain_weight"
	GoalMaintain   = "maintain"
)

const (
	BMICategoryUnknown     = "Unknown"
	BMICategoryUnderweight = "Underweight"
	BMICategoryNormal      = "Normal"
	BMICategoryOverweight  = "Overweight"
	BMICategoryObese       = "Obese"
)

const (
	DefaultDailyStepsGoal    = 10000
	DefaultDailyWaterGoalML  = 2000
	DefaultWeeklyWorkoutGoal = 5

	// Shown until the first biometric calculation replaces it.
	PlaceholderDailyCaloriesGoal = 500
)

type User struct {
	ID               uint   `gorm:"primaryKey" json:"id"`
	Email            string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash     string `gorm:"not null" json:"-"`
	RecoveryCodeHash string `json:"-"`
	DisplayName      string `json:"display_name"`

	HeightCm       float64  `json:"height_cm"`
	WeightKg       float64  `json:"weight_kg"`
	Age            int      `json:"age"`
	Gender         string   `json:"gender"`
	Goal           string   `json:"goal"`
	TargetWeightKg *float64 `json:"target_weight_kg,omitempty"`

	BMI                float64 `json:"bmi"`
	BMICategory        string  `gorm:"column:bmi_category" json:"bmi_category"`
	BMR                int     `json:"bmr"`
	DailyCaloriesGoal  int     `gorm:"not null;default:500" json:"daily_calories_goal"`
	CaloriesCalculated bool    `gorm:"not null;default:false" json:"calories_calculated"`

	DailyStepsGoal    int `gorm:"not null;default:10000" json:"daily_steps_goal"`
	DailyWaterGoalML  int `gorm:"column:daily_water_goal_ml;not null;default:2000" json:"daily_water_goal_ml"`
	WeeklyWorkoutGoal int `gorm:"not null;default:5" json:"weekly_workout_goal"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func IsValidGender(value string) bool {
	return value == GenderMale || value == GenderFemale
}

func IsValidGoal(value string) bool {
	return value == GoalLoseWeight || value == GoalGainWeight || value == GoalMaintain
}
