package services

import "time"

// DateAtLocation truncates a moment to midnight of its calendar day in the
// given location. The location defaults to UTC so day math never depends on
// the process-wide time.Local.
func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

// DayRange returns the half-open [start, end) interval covering the calendar
// day of value. All per-day queries use this interval.
func DayRange(value time.Time, location *time.Location) (time.Time, time.Time) {
	start := DateAtLocation(value, location)
	return start, start.AddDate(0, 0, 1)
}
