package db

import "gorm.io/gorm"

type Repositories struct {
	Users            *UserRepository
	DailyLogs        *DailyLogRepository
	NutritionEntries *NutritionEntryRepository
	Workouts         *WorkoutRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:            NewUserRepository(database),
		DailyLogs:        NewDailyLogRepository(database),
		NutritionEntries: NewNutritionEntryRepository(database),
		Workouts:         NewWorkoutRepository(database),
	}
}
