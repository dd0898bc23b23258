package services

import (
	"errors"
	"testing"
	"time"

	"github.com/arodena/fitdash/internal/models"
)

type stubDayLogRepository struct {
	logs      []models.DailyLog
	findErr   error
	createErr error
	saveErr   error
	creates   int
	saves     int
	nextID    uint
}

func (stub *stubDayLogRepository) FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.DailyLog, bool, error) {
	if stub.findErr != nil {
		return models.DailyLog{}, false, stub.findErr
	}
	for _, entry := range stub.logs {
		if entry.UserID != userID {
			continue
		}
		if entry.Date.Before(dayStart) || !entry.Date.Before(dayEnd) {
			continue
		}
		return entry, true, nil
	}
	return models.DailyLog{}, false, nil
}

func (stub *stubDayLogRepository) ListByUser(userID uint) ([]models.DailyLog, error) {
	return stub.logs, nil
}

func (stub *stubDayLogRepository) Create(entry *models.DailyLog) error {
	if stub.createErr != nil {
		return stub.createErr
	}
	stub.creates++
	stub.nextID++
	entry.ID = stub.nextID
	stub.logs = append(stub.logs, *entry)
	return nil
}

func (stub *stubDayLogRepository) Save(entry *models.DailyLog) error {
	if stub.saveErr != nil {
		return stub.saveErr
	}
	stub.saves++
	for i := range stub.logs {
		if stub.logs[i].ID == entry.ID {
			stub.logs[i] = *entry
			return nil
		}
	}
	return nil
}

func TestDayRangeHalfOpen(t *testing.T) {
	moment := time.Date(2026, 3, 14, 23, 59, 59, 0, time.UTC)
	start, end := DayRange(moment, time.UTC)

	if !start.Equal(time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("start = %v", start)
	}
	if !end.Equal(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("end = %v", end)
	}
}

func TestDateAtLocationNilDefaultsToUTC(t *testing.T) {
	moment := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	got := DateAtLocation(moment, nil)
	if got.Location() != time.UTC {
		t.Fatalf("expected UTC, got %v", got.Location())
	}
}

func TestLogForDatePlaceholderWhenAbsent(t *testing.T) {
	service := NewDayService(&stubDayLogRepository{})
	day := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	entry, err := service.LogForDate(7, day, time.UTC)
	if err != nil {
		t.Fatalf("LogForDate: %v", err)
	}
	if entry.ID != 0 || entry.Steps != 0 || entry.WaterML != 0 || entry.WeightKg != nil {
		t.Fatalf("expected zero placeholder, got %+v", entry)
	}
	if entry.UserID != 7 {
		t.Errorf("placeholder user id = %d, want 7", entry.UserID)
	}
	if !entry.Date.Equal(time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("placeholder date = %v", entry.Date)
	}
}

func TestUpsertScalarCreatesOnFirstWrite(t *testing.T) {
	repo := &stubDayLogRepository{}
	service := NewDayService(repo)
	day := time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)

	entry, err := service.UpsertScalar(7, day, DayLogUpdate{Field: DayLogFieldSteps, Value: 5000}, time.UTC)
	if err != nil {
		t.Fatalf("UpsertScalar: %v", err)
	}
	if entry.Steps != 5000 {
		t.Errorf("steps = %d, want 5000", entry.Steps)
	}
	if repo.creates != 1 || repo.saves != 0 {
		t.Fatalf("creates = %d saves = %d, want 1 and 0", repo.creates, repo.saves)
	}
}

func TestUpsertScalarUpdatesExistingRow(t *testing.T) {
	repo := &stubDayLogRepository{}
	service := NewDayService(repo)
	day := time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)

	if _, err := service.UpsertScalar(7, day, DayLogUpdate{Field: DayLogFieldSteps, Value: 5000}, time.UTC); err != nil {
		t.Fatalf("first write: %v", err)
	}
	entry, err := service.UpsertScalar(7, day, DayLogUpdate{Field: DayLogFieldWaterML, Value: 1500}, time.UTC)
	if err != nil {
		t.Fatalf("second write: %v", err)
	}

	if repo.creates != 1 || repo.saves != 1 {
		t.Fatalf("creates = %d saves = %d, want 1 and 1", repo.creates, repo.saves)
	}
	if entry.Steps != 5000 {
		t.Errorf("steps lost on second write: %d", entry.Steps)
	}
	if entry.WaterML != 1500 {
		t.Errorf("water = %d, want 1500", entry.WaterML)
	}
}

func TestUpsertScalarWeight(t *testing.T) {
	service := NewDayService(&stubDayLogRepository{})
	entry, err := service.UpsertScalar(7, time.Now(), DayLogUpdate{Field: DayLogFieldWeightKg, Value: 71.4}, time.UTC)
	if err != nil {
		t.Fatalf("UpsertScalar: %v", err)
	}
	if entry.WeightKg == nil || *entry.WeightKg != 71.4 {
		t.Fatalf("weight = %v, want 71.4", entry.WeightKg)
	}
}

func TestUpsertScalarValidation(t *testing.T) {
	service := NewDayService(&stubDayLogRepository{})

	if _, err := service.UpsertScalar(7, time.Now(), DayLogUpdate{Field: "calories"}, time.UTC); !errors.Is(err, ErrUnknownDayLogField) {
		t.Errorf("expected ErrUnknownDayLogField, got %v", err)
	}
	if _, err := service.UpsertScalar(7, time.Now(), DayLogUpdate{Field: DayLogFieldSteps, Value: -1}, time.UTC); !errors.Is(err, ErrNegativeDayLogValue) {
		t.Errorf("expected ErrNegativeDayLogValue, got %v", err)
	}
}

func TestUpsertScalarLoadError(t *testing.T) {
	service := NewDayService(&stubDayLogRepository{findErr: errors.New("boom")})
	if _, err := service.UpsertScalar(7, time.Now(), DayLogUpdate{Field: DayLogFieldSteps, Value: 1}, time.UTC); !errors.Is(err, ErrDayLogLoadFailed) {
		t.Fatalf("expected ErrDayLogLoadFailed, got %v", err)
	}
}
