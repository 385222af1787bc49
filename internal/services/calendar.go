package services

import (
	"time"

	"github.com/selene-app/selene/internal/models"
)

type DayState string

const (
	DayStatePeriod          DayState = "period"
	DayStateFertile         DayState = "fertile"
	DayStatePredictedPeriod DayState = "predicted_period"
	DayStateNone            DayState = "none"
)

// Classify maps a date to its calendar state for rendering. Logged period
// days win over the fertile window, and the fertile window wins over the
// predicted period when ranges overlap. Open-ended periods are assumed to
// span five days; that assumption is display-only and never feeds
// prediction or analytics.
func Classify(date time.Time, cycles []models.CycleRecord, prediction *CyclePrediction, location *time.Location) DayState {
	if location == nil {
		location = time.UTC
	}
	day := DateAtLocation(date, location)

	for _, cycle := range cycles {
		start := DateAtLocation(cycle.StartDate, location)
		end := start.AddDate(0, 0, models.DefaultPeriodLength)
		if !cycle.Ongoing() {
			end = DateAtLocation(*cycle.EndDate, location)
		}
		if betweenCalendarDaysInclusive(day, start, end) {
			return DayStatePeriod
		}
	}

	if prediction == nil {
		return DayStateNone
	}

	fertileStart := DateAtLocation(prediction.FertileWindowStart, location)
	fertileEnd := DateAtLocation(prediction.FertileWindowEnd, location)
	if betweenCalendarDaysInclusive(day, fertileStart, fertileEnd) {
		return DayStateFertile
	}

	predictedStart := DateAtLocation(prediction.NextPeriodDate, location)
	predictedEnd := predictedStart.AddDate(0, 0, predictedPeriodSpan)
	if betweenCalendarDaysInclusive(day, predictedStart, predictedEnd) {
		return DayStatePredictedPeriod
	}

	return DayStateNone
}

type CalendarDayState struct {
	Date       time.Time `json:"date"`
	DateString string    `json:"date_string"`
	Day        int       `json:"day"`
	InMonth    bool      `json:"in_month"`
	IsToday    bool      `json:"is_today"`
	State      DayState  `json:"state"`
	HasSymptom bool      `json:"has_symptom"`
}

// BuildCalendarDayStates classifies every cell of the month grid shown by
// the calendar view, padded to full weeks starting on Sunday.
func BuildCalendarDayStates(monthStart time.Time, cycles []models.CycleRecord, symptoms []models.SymptomRecord, prediction *CyclePrediction, now time.Time, location *time.Location) []CalendarDayState {
	if location == nil {
		location = time.UTC
	}

	monthStart = DateAtLocation(monthStart, location)
	monthEnd := monthStart.AddDate(0, 1, -1)
	gridStart := monthStart.AddDate(0, 0, -int(monthStart.Weekday()))
	gridEnd := monthEnd.AddDate(0, 0, 6-int(monthEnd.Weekday()))

	symptomDays := make(map[string]bool, len(symptoms))
	for _, symptom := range symptoms {
		symptomDays[DateAtLocation(symptom.Date, location).Format(dayLayout)] = true
	}

	todayKey := DateAtLocation(now, location).Format(dayLayout)

	days := make([]CalendarDayState, 0, 42)
	for day := gridStart; !day.After(gridEnd); day = day.AddDate(0, 0, 1) {
		key := day.Format(dayLayout)
		days = append(days, CalendarDayState{
			Date:       day,
			DateString: key,
			Day:        day.Day(),
			InMonth:    day.Month() == monthStart.Month(),
			IsToday:    key == todayKey,
			State:      Classify(day, cycles, prediction, location),
			HasSymptom: symptomDays[key],
		})
	}

	return days
}
