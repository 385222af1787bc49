package services

import (
	"time"

	"github.com/selene-app/selene/internal/models"
)

const (
	lutealPhaseDays     = 14
	fertileWindowBefore = 5
	fertileWindowAfter  = 1
	predictedPeriodSpan = 5
)

// CyclePrediction is a derived value object, recomputed whenever the cycle
// history changes and never persisted.
type CyclePrediction struct {
	NextPeriodDate     time.Time `json:"next_period_date"`
	OvulationDate      time.Time `json:"ovulation_date"`
	FertileWindowStart time.Time `json:"fertile_window_start"`
	FertileWindowEnd   time.Time `json:"fertile_window_end"`
	DaysUntilNext      int       `json:"days_until_next"`
	CurrentCycleDay    int       `json:"current_cycle_day"`
}

// Predict derives the forward-looking prediction from the profile baseline
// and the full cycle history. It returns nil when no profile exists or the
// history is empty; callers treat that as "no prediction available", not an
// error. Pure function of its inputs plus the injected now.
func Predict(profile *models.UserProfile, cycles []models.CycleRecord, now time.Time, location *time.Location) *CyclePrediction {
	if profile == nil || len(cycles) == 0 {
		return nil
	}
	if location == nil {
		location = time.UTC
	}

	lastStart := DateAtLocation(mostRecentCycle(cycles).StartDate, location)
	cycleLength := AverageCycleLength(cycles, profile.CycleLengthOrDefault())

	nextPeriodDate := lastStart.AddDate(0, 0, cycleLength)
	ovulationDate := nextPeriodDate.AddDate(0, 0, -lutealPhaseDays)

	today := DateAtLocation(now, location)
	currentCycleDay := daysBetween(lastStart, today) + 1
	if currentCycleDay < 1 {
		currentCycleDay = 1
	}

	return &CyclePrediction{
		NextPeriodDate:     nextPeriodDate,
		OvulationDate:      ovulationDate,
		FertileWindowStart: ovulationDate.AddDate(0, 0, -fertileWindowBefore),
		FertileWindowEnd:   ovulationDate.AddDate(0, 0, fertileWindowAfter),
		DaysUntilNext:      daysBetween(today, nextPeriodDate),
		CurrentCycleDay:    currentCycleDay,
	}
}

// mostRecentCycle selects the record with the maximum start date. The
// store keeps history in descending order, but the engine never relies on
// input ordering.
func mostRecentCycle(cycles []models.CycleRecord) models.CycleRecord {
	latest := cycles[0]
	for _, cycle := range cycles[1:] {
		if cycle.StartDate.After(latest.StartDate) {
			latest = cycle
		}
	}
	return latest
}
