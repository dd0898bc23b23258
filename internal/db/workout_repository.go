package db

import (
	"time"

	"github.com/arodena/fitdash/internal/models"
	"gorm.io/gorm"
)

type WorkoutRepository struct {
	database *gorm.DB
}

func NewWorkoutRepository(database *gorm.DB) *WorkoutRepository {
	return &WorkoutRepository{database: database}
}

func (repo *WorkoutRepository) ListByUser(userID uint) ([]models.Workout, error) {
	workouts := make([]models.Workout, 0)
	if err := repo.database.Where("user_id = ?", userID).Order("date DESC, id DESC").Find(&workouts).Error; err != nil {
		return nil, err
	}
	return workouts, nil
}

func (repo *WorkoutRepository) ListByUserDayRange(userID uint, dayStart time.Time, dayEnd time.Time) ([]models.Workout, error) {
	workouts := make([]models.Workout, 0)
	if err := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart, dayEnd).
		Order("id ASC").
		Find(&workouts).Error; err != nil {
		return nil, err
	}
	return workouts, nil
}

func (repo *WorkoutRepository) FindByIDForUser(workoutID uint, userID uint) (models.Workout, bool, error) {
	workout := models.Workout{}
	result := repo.database.
		Where("id = ? AND user_id = ?", workoutID, userID).
		Limit(1).
		Find(&workout)
	if result.Error != nil {
		return models.Workout{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Workout{}, false, nil
	}
	return workout, true, nil
}

func (repo *WorkoutRepository) Create(workout *models.Workout) error {
	return repo.database.Create(workout).Error
}

func (repo *WorkoutRepository) Save(workout *models.Workout) error {
	return repo.database.Save(workout).Error
}

func (repo *WorkoutRepository) DeleteByIDForUser(workoutID uint, userID uint) (int64, error) {
	result := repo.database.Where("id = ? AND user_id = ?", workoutID, userID).Delete(&models.Workout{})
	return result.RowsAffected, result.Error
}
