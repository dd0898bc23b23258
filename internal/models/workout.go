package models

import "time"

type Workout struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	UserID          uint      `gorm:"not null;index:idx_workout_user_date" json:"user_id"`
	Date            time.Time `gorm:"type:date;not null;index:idx_workout_user_date" json:"date"`
	Name            string    `gorm:"not null" json:"name"`
	WorkoutType     string    `json:"workout_type"`
	CaloriesBurned  int       `gorm:"not null;default:0" json:"calories_burned"`
	DurationMinutes int       `gorm:"not null;default:0" json:"duration_minutes"`
	Notes           string    `json:"notes"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
