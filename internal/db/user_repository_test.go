package db

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/arodena/fitdash/internal/models"
	"gorm.io/gorm"
)

func newTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "fitdash-repo-test.db")
	database, err := OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return database
}

func seedUser(t *testing.T, database *gorm.DB, email string) models.User {
	t.Helper()

	user := models.User{
		Email:             email,
		PasswordHash:      "hash",
		BMICategory:       models.BMICategoryUnknown,
		DailyCaloriesGoal: models.PlaceholderDailyCaloriesGoal,
		DailyStepsGoal:    models.DefaultDailyStepsGoal,
		DailyWaterGoalML:  models.DefaultDailyWaterGoalML,
		WeeklyWorkoutGoal: models.DefaultWeeklyWorkoutGoal,
		CreatedAt:         time.Now().UTC(),
	}
	if err := database.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func TestUserRepositoryNormalizedEmailLookup(t *testing.T) {
	database := newTestDatabase(t)
	repo := NewUserRepository(database)
	seeded := seedUser(t, database, "Mixed.Case@Example.com")

	found, err := repo.FindByNormalizedEmail("mixed.case@example.com")
	if err != nil {
		t.Fatalf("FindByNormalizedEmail: %v", err)
	}
	if found.ID != seeded.ID {
		t.Fatalf("found user %d, want %d", found.ID, seeded.ID)
	}

	exists, err := repo.ExistsByNormalizedEmail("mixed.case@example.com")
	if err != nil {
		t.Fatalf("ExistsByNormalizedEmail: %v", err)
	}
	if !exists {
		t.Error("expected normalized email to match")
	}

	exists, err = repo.ExistsByNormalizedEmail("other@example.com")
	if err != nil {
		t.Fatalf("ExistsByNormalizedEmail: %v", err)
	}
	if exists {
		t.Error("unexpected match for unknown email")
	}
}

func TestClearAllDataAndResetGoals(t *testing.T) {
	database := newTestDatabase(t)
	repo := NewUserRepository(database)
	user := seedUser(t, database, "clear@example.com")

	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	if err := database.Create(&models.DailyLog{UserID: user.ID, Date: day, Steps: 5000}).Error; err != nil {
		t.Fatalf("seed log: %v", err)
	}
	if err := database.Create(&models.NutritionEntry{UserID: user.ID, EntryDate: day, MealType: models.MealLunch, Calories: 300}).Error; err != nil {
		t.Fatalf("seed entry: %v", err)
	}
	if err := database.Create(&models.Workout{UserID: user.ID, Date: day, Name: "run"}).Error; err != nil {
		t.Fatalf("seed workout: %v", err)
	}
	if err := repo.UpdateByID(user.ID, map[string]any{"daily_steps_goal": 12000, "weight_kg": 70.0}); err != nil {
		t.Fatalf("customize goals: %v", err)
	}

	if err := repo.ClearAllDataAndResetGoals(user.ID); err != nil {
		t.Fatalf("ClearAllDataAndResetGoals: %v", err)
	}

	for _, model := range []any{&models.DailyLog{}, &models.NutritionEntry{}, &models.Workout{}} {
		var count int64
		if err := database.Model(model).Where("user_id = ?", user.ID).Count(&count).Error; err != nil {
			t.Fatalf("count records: %v", err)
		}
		if count != 0 {
			t.Errorf("expected no %T records after clear, got %d", model, count)
		}
	}

	reloaded, err := repo.FindByID(user.ID)
	if err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if reloaded.DailyStepsGoal != models.DefaultDailyStepsGoal {
		t.Errorf("steps goal = %d, want default %d", reloaded.DailyStepsGoal, models.DefaultDailyStepsGoal)
	}
	if reloaded.WeightKg != 70 {
		t.Errorf("biometrics must survive a data clear, weight = %v", reloaded.WeightKg)
	}
}

func TestDeleteAccountAndRelatedData(t *testing.T) {
	database := newTestDatabase(t)
	repo := NewUserRepository(database)
	user := seedUser(t, database, "delete@example.com")

	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	if err := database.Create(&models.Workout{UserID: user.ID, Date: day, Name: "run"}).Error; err != nil {
		t.Fatalf("seed workout: %v", err)
	}

	if err := repo.DeleteAccountAndRelatedData(user.ID); err != nil {
		t.Fatalf("DeleteAccountAndRelatedData: %v", err)
	}

	if _, err := repo.FindByID(user.ID); err == nil {
		t.Error("expected user lookup to fail after deletion")
	}
	var count int64
	if err := database.Model(&models.Workout{}).Where("user_id = ?", user.ID).Count(&count).Error; err != nil {
		t.Fatalf("count workouts: %v", err)
	}
	if count != 0 {
		t.Errorf("expected workouts removed with the account, got %d", count)
	}
}

func TestDailyLogRepositoryDayRange(t *testing.T) {
	database := newTestDatabase(t)
	repo := NewDailyLogRepository(database)
	user := seedUser(t, database, "days@example.com")

	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	nextDay := day.AddDate(0, 0, 1)
	if err := repo.Create(&models.DailyLog{UserID: user.ID, Date: day, Steps: 5000}); err != nil {
		t.Fatalf("create log: %v", err)
	}

	entry, found, err := repo.FindByUserAndDayRange(user.ID, day, nextDay)
	if err != nil {
		t.Fatalf("FindByUserAndDayRange: %v", err)
	}
	if !found || entry.Steps != 5000 {
		t.Fatalf("expected the day's log, got found=%v entry=%+v", found, entry)
	}

	// The interval is half-open: the next day's start is excluded.
	_, found, err = repo.FindByUserAndDayRange(user.ID, nextDay, nextDay.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("FindByUserAndDayRange: %v", err)
	}
	if found {
		t.Error("expected no log outside the day range")
	}
}
