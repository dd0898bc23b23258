package api

type credentialsInput struct {
	Email      string `json:"email" form:"email"`
	Password   string `json:"password" form:"password"`
	RememberMe bool   `json:"remember_me" form:"remember_me"`
}

type biometricsInput struct {
	HeightCm       float64  `json:"height_cm"`
	WeightKg       float64  `json:"weight_kg"`
	Age            int      `json:"age"`
	Gender         string   `json:"gender"`
	Goal           string   `json:"goal"`
	TargetWeightKg *float64 `json:"target_weight_kg"`
}

type goalsInput struct {
	DisplayName       string `json:"display_name"`
	DailyStepsGoal    int    `json:"daily_steps_goal"`
	DailyWaterGoalML  int    `json:"daily_water_goal_ml"`
	WeeklyWorkoutGoal int    `json:"weekly_workout_goal"`
}

type dayLogUpdateInput struct {
	Field string  `json:"field"`
	Value float64 `json:"value"`
}

type nutritionEntryInput struct {
	Date     string  `json:"date"`
	MealType string  `json:"meal_type"`
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

type workoutInput struct {
	Date            string `json:"date"`
	Name            string `json:"name"`
	WorkoutType     string `json:"workout_type"`
	CaloriesBurned  int    `json:"calories_burned"`
	DurationMinutes int    `json:"duration_minutes"`
	Notes           string `json:"notes"`
}

type resetPasswordInput struct {
	Email        string `json:"email" form:"email"`
	RecoveryCode string `json:"recovery_code" form:"recovery_code"`
	NewPassword  string `json:"new_password" form:"new_password"`
}

type changePasswordInput struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

type accountPasswordInput struct {
	Password string `json:"password"`
}
