package services

import (
	"testing"
	"time"

	"github.com/selene-app/selene/internal/models"
)

func mustParseDay(t *testing.T, value string) time.Time {
	t.Helper()

	day, err := time.ParseInLocation("2006-01-02", value, time.UTC)
	if err != nil {
		t.Fatalf("parse day %q: %v", value, err)
	}
	return day
}

func cycleStarting(t *testing.T, start string) models.CycleRecord {
	t.Helper()

	return models.CycleRecord{
		StartDate:     mustParseDay(t, start),
		FlowIntensity: models.FlowMedium,
	}
}

func cycleBetween(t *testing.T, start string, end string) models.CycleRecord {
	t.Helper()

	endDate := mustParseDay(t, end)
	record := cycleStarting(t, start)
	record.EndDate = &endDate
	return record
}

func defaultTestProfile() *models.UserProfile {
	return &models.UserProfile{
		AverageCycleLength:  28,
		AveragePeriodLength: 5,
	}
}
