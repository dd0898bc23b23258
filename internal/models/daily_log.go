package models

import "time"

// DailyLog holds the quick-entry metrics for one user and one calendar day.
// At most one row exists per (user, date); it is created lazily on the first
// metric write for that day.
type DailyLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:uidx_daily_log_user_date" json:"user_id"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:uidx_daily_log_user_date" json:"date"`
	Steps     int       `gorm:"not null;default:0" json:"steps"`
	WaterML   int       `gorm:"column:water_ml;not null;default:0" json:"water_ml"`
	WeightKg  *float64  `json:"weight_kg,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
