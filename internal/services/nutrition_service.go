package services

import (
	"errors"
	"strings"
	"time"

	"github.com/arodena/fitdash/internal/models"
)

var (
	ErrInvalidMealType         = errors.New("invalid meal type")
	ErrInvalidNutritionValues  = errors.New("invalid nutrition values")
	ErrNutritionEntryNotFound  = errors.New("nutrition entry not found")
	ErrNutritionEntryLoadError = errors.New("load nutrition entries failed")
)

// NutritionTotals are a day's macro sums across all entries, regardless of
// meal category.
type NutritionTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// SumNutrition adds up each macro field across the entries. Fields default to
// zero at the storage layer, so missing values contribute nothing.
func SumNutrition(entries []models.NutritionEntry) NutritionTotals {
	totals := NutritionTotals{}
	for _, entry := range entries {
		totals.Calories += entry.Calories
		totals.Protein += entry.Protein
		totals.Carbs += entry.Carbs
		totals.Fat += entry.Fat
	}
	return totals
}

// GroupEntriesByMeal partitions entries into the four fixed meal categories.
// An entry with an unrecognized category lands in no group; it still counts
// toward SumNutrition. That fall-through is intentional, not a repair site.
func GroupEntriesByMeal(entries []models.NutritionEntry) map[string][]models.NutritionEntry {
	groups := make(map[string][]models.NutritionEntry, 4)
	for _, mealType := range models.MealTypes() {
		groups[mealType] = []models.NutritionEntry{}
	}
	for _, entry := range entries {
		if _, known := groups[entry.MealType]; !known {
			continue
		}
		groups[entry.MealType] = append(groups[entry.MealType], entry)
	}
	return groups
}

type NutritionEntryInput struct {
	MealType string
	Name     string
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
}

type NutritionEntryRepository interface {
	ListByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) ([]models.NutritionEntry, error)
	Create(entry *models.NutritionEntry) error
	DeleteByIDForUser(entryID uint, userID uint) (int64, error)
}

type NutritionService struct {
	entries NutritionEntryRepository
}

func NewNutritionService(entries NutritionEntryRepository) *NutritionService {
	return &NutritionService{entries: entries}
}

// NutritionDay is the display-ready snapshot for one date: the raw entries in
// creation order, the per-meal grouping, and the macro totals.
type NutritionDay struct {
	Entries []models.NutritionEntry
	Meals   map[string][]models.NutritionEntry
	Totals  NutritionTotals
}

func (service *NutritionService) DayForUser(userID uint, day time.Time, location *time.Location) (NutritionDay, error) {
	dayStart, dayEnd := DayRange(day, location)
	entries, err := service.entries.ListByUserAndDayRange(userID, dayStart, dayEnd)
	if err != nil {
		return NutritionDay{}, ErrNutritionEntryLoadError
	}
	return NutritionDay{
		Entries: entries,
		Meals:   GroupEntriesByMeal(entries),
		Totals:  SumNutrition(entries),
	}, nil
}

func (service *NutritionService) AddEntry(userID uint, day time.Time, input NutritionEntryInput, location *time.Location) (models.NutritionEntry, error) {
	if !models.IsValidMealType(input.MealType) {
		return models.NutritionEntry{}, ErrInvalidMealType
	}
	if input.Calories < 0 || input.Protein < 0 || input.Carbs < 0 || input.Fat < 0 {
		return models.NutritionEntry{}, ErrInvalidNutritionValues
	}

	dayStart := DateAtLocation(day, location)
	entry := models.NutritionEntry{
		UserID:    userID,
		EntryDate: dayStart,
		MealType:  input.MealType,
		Name:      strings.TrimSpace(input.Name),
		Calories:  input.Calories,
		Protein:   input.Protein,
		Carbs:     input.Carbs,
		Fat:       input.Fat,
	}
	if err := service.entries.Create(&entry); err != nil {
		return models.NutritionEntry{}, err
	}
	return entry, nil
}

func (service *NutritionService) DeleteEntry(userID uint, entryID uint) error {
	deleted, err := service.entries.DeleteByIDForUser(entryID, userID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrNutritionEntryNotFound
	}
	return nil
}
