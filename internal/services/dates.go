package services

import "time"

const dayLayout = "2006-01-02"

// DateAtLocation strips the time of day, pinning the value to midnight in
// the given location. Every engine comparison goes through this first;
// leaving time-of-day in place produces off-by-one errors at window edges.
func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

// DayRange returns the half-open [start, next-midnight) interval covering
// the calendar day of value.
func DayRange(value time.Time, location *time.Location) (time.Time, time.Time) {
	start := DateAtLocation(value, location)
	return start, start.AddDate(0, 0, 1)
}

// daysBetween counts civil calendar days from a to b. Both ends are
// re-anchored to UTC midnight before subtracting so that 23- and 25-hour
// days around DST transitions still count as exactly one day.
func daysBetween(a time.Time, b time.Time) int {
	aYear, aMonth, aDay := a.Date()
	bYear, bMonth, bDay := b.Date()
	start := time.Date(aYear, aMonth, aDay, 0, 0, 0, 0, time.UTC)
	end := time.Date(bYear, bMonth, bDay, 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start).Hours() / 24)
}

func sameCalendarDay(a time.Time, b time.Time) bool {
	return a.Format(dayLayout) == b.Format(dayLayout)
}

func betweenCalendarDaysInclusive(day time.Time, start time.Time, end time.Time) bool {
	if start.IsZero() || end.IsZero() {
		return false
	}
	return (day.Equal(start) || day.After(start)) && (day.Equal(end) || day.Before(end))
}

func roundToInt(value float64) int {
	if value < 0 {
		return -int(-value + 0.5)
	}
	return int(value + 0.5)
}
