package db

import (
	"time"

	"github.com/arodena/fitdash/internal/models"
	"gorm.io/gorm"
)

type NutritionEntryRepository struct {
	database *gorm.DB
}

func NewNutritionEntryRepository(database *gorm.DB) *NutritionEntryRepository {
	return &NutritionEntryRepository{database: database}
}

// ListByUserAndDayRange returns the entries for one calendar day ordered by
// creation time, which is the display order the client expects.
func (repo *NutritionEntryRepository) ListByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) ([]models.NutritionEntry, error) {
	entries := make([]models.NutritionEntry, 0)
	if err := repo.database.
		Where("user_id = ? AND entry_date >= ? AND entry_date < ?", userID, dayStart, dayEnd).
		Order("created_at ASC, id ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *NutritionEntryRepository) Create(entry *models.NutritionEntry) error {
	return repo.database.Create(entry).Error
}

func (repo *NutritionEntryRepository) DeleteByIDForUser(entryID uint, userID uint) (int64, error) {
	result := repo.database.Where("id = ? AND user_id = ?", entryID, userID).Delete(&models.NutritionEntry{})
	return result.RowsAffected, result.Error
}
