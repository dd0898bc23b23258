package models

import "time"

const (
	MealBreakfast = "Breakfast"
	MealLunch     = "Lunch"
	MealDinner    = "Dinner"
	MealSnacks    = "Snacks"
)

// MealTypes returns the fixed display order of the meal categories.
func MealTypes() []string {
	return []string{MealBreakfast, MealLunch, MealDinner, MealSnacks}
}

func IsValidMealType(value string) bool {
	for _, mealType := range MealTypes() {
		if value == mealType {
			return true
		}
	}
	return false
}

type NutritionEntry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index:idx_nutrition_user_date" json:"user_id"`
	EntryDate time.Time `gorm:"type:date;not null;index:idx_nutrition_user_date" json:"entry_date"`
	MealType  string    `gorm:"not null" json:"meal_type"`
	Name      string    `json:"name"`
	Calories  float64   `gorm:"not null;default:0" json:"calories"`
	Protein   float64   `gorm:"not null;default:0" json:"protein"`
	Carbs     float64   `gorm:"not null;default:0" json:"carbs"`
	Fat       float64   `gorm:"not null;default:0" json:"fat"`
	CreatedAt time.Time `json:"created_at"`
}
