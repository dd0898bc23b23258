package services

import (
	"errors"
	"time"

	"github.com/arodena/fitdash/internal/models"
)

var (
	ErrDayLogLoadFailed    = errors.New("load daily log failed")
	ErrDayLogCreateFailed  = errors.New("create daily log failed")
	ErrDayLogUpdateFailed  = errors.New("update daily log failed")
	ErrUnknownDayLogField  = errors.New("unknown daily log field")
	ErrNegativeDayLogValue = errors.New("daily log value must not be negative")
)

// Scalar fields of a daily log that the client may upsert one at a time, the
// same way the dashboard's quick-entry tiles write them.
const (
	DayLogFieldSteps    = "steps"
	DayLogFieldWaterML  = "water_ml"
	DayLogFieldWeightKg = "weight_kg"
)

type DayLogUpdate struct {
	Field string
	Value float64
}

type DayLogRepository interface {
	FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.DailyLog, bool, error)
	ListByUser(userID uint) ([]models.DailyLog, error)
	Create(entry *models.DailyLog) error
	Save(entry *models.DailyLog) error
}

type DayService struct {
	logs DayLogRepository
}

func NewDayService(logs DayLogRepository) *DayService {
	return &DayService{logs: logs}
}

// LogForDate returns the day's log, or a zero-valued placeholder when none
// exists yet. Aggregation treats the two identically.
func (service *DayService) LogForDate(userID uint, day time.Time, location *time.Location) (models.DailyLog, error) {
	dayStart, dayEnd := DayRange(day, location)
	entry, found, err := service.logs.FindByUserAndDayRange(userID, dayStart, dayEnd)
	if err != nil {
		return models.DailyLog{}, ErrDayLogLoadFailed
	}
	if !found {
		return models.DailyLog{UserID: userID, Date: dayStart}, nil
	}
	return entry, nil
}

func (service *DayService) ListForUser(userID uint) ([]models.DailyLog, error) {
	return service.logs.ListByUser(userID)
}

// UpsertScalar writes a single metric for the given day, creating the row on
// the first write so a day without entries costs nothing.
func (service *DayService) UpsertScalar(userID uint, day time.Time, update DayLogUpdate, location *time.Location) (models.DailyLog, error) {
	if update.Field != DayLogFieldSteps && update.Field != DayLogFieldWaterML && update.Field != DayLogFieldWeightKg {
		return models.DailyLog{}, ErrUnknownDayLogField
	}
	if update.Value < 0 {
		return models.DailyLog{}, ErrNegativeDayLogValue
	}

	dayStart, dayEnd := DayRange(day, location)
	entry, found, err := service.logs.FindByUserAndDayRange(userID, dayStart, dayEnd)
	if err != nil {
		return models.DailyLog{}, ErrDayLogLoadFailed
	}

	if !found {
		entry = models.DailyLog{UserID: userID, Date: dayStart}
		applyDayLogUpdate(&entry, update)
		if err := service.logs.Create(&entry); err != nil {
			return models.DailyLog{}, ErrDayLogCreateFailed
		}
		return entry, nil
	}

	applyDayLogUpdate(&entry, update)
	if err := service.logs.Save(&entry); err != nil {
		return models.DailyLog{}, ErrDayLogUpdateFailed
	}
	return entry, nil
}

func applyDayLogUpdate(entry *models.DailyLog, update DayLogUpdate) {
	switch update.Field {
	case DayLogFieldSteps:
		entry.Steps = int(update.Value)
	case DayLogFieldWaterML:
		entry.WaterML = int(update.Value)
	case DayLogFieldWeightKg:
		weight := update.Value
		entry.WeightKg = &weight
	}
}
