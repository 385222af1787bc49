package services

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

const (
	periodReminderLeadDays = 2
	pmsAlertLeadDays       = 3
)

// ReminderService recomputes the prediction once a day and surfaces
// upcoming period, ovulation and PMS reminders, honoring the profile's
// notification preference flags. Reminders are log lines; delivery
// channels are out of scope.
type ReminderService struct {
	tracker  *TrackerService
	location *time.Location
	logf     func(format string, args ...any)
}

func NewReminderService(tracker *TrackerService, location *time.Location) *ReminderService {
	if location == nil {
		location = time.UTC
	}
	return &ReminderService{
		tracker:  tracker,
		location: location,
		logf:     log.Printf,
	}
}

// Start schedules the daily check at the given hour and returns the
// running cron instance; callers stop it on shutdown.
func (service *ReminderService) Start(hour int) *cron.Cron {
	if hour < 0 || hour > 23 {
		hour = 8
	}

	scheduler := cron.New(cron.WithLocation(service.location))
	_, err := scheduler.AddFunc(fmt.Sprintf("0 %d * * *", hour), func() {
		if err := service.RunDaily(time.Now()); err != nil {
			service.logf("reminder run failed: %v", err)
		}
	})
	if err != nil {
		service.logf("reminder schedule failed: %v", err)
		return scheduler
	}
	scheduler.Start()
	return scheduler
}

// RunDaily emits every reminder due on the calendar day of now.
func (service *ReminderService) RunDaily(now time.Time) error {
	snapshot, err := service.tracker.Snapshot()
	if err != nil {
		return err
	}
	for _, reminder := range DueReminders(snapshot, now, service.location) {
		service.logf("reminder: %s", reminder)
	}
	return nil
}

// DueReminders is the pure part of the reminder check, split out so tests
// can drive it with a fixed now.
func DueReminders(snapshot Snapshot, now time.Time, location *time.Location) []string {
	prediction := Predict(snapshot.Profile, snapshot.Cycles, now, location)
	if prediction == nil || snapshot.Profile == nil {
		return nil
	}

	today := DateAtLocation(now, location)
	reminders := make([]string, 0, 3)

	if snapshot.Profile.PeriodReminder {
		periodHeadsUp := prediction.NextPeriodDate.AddDate(0, 0, -periodReminderLeadDays)
		if sameCalendarDay(today, periodHeadsUp) {
			reminders = append(reminders, fmt.Sprintf("period expected in %d days (%s)",
				periodReminderLeadDays, prediction.NextPeriodDate.Format(dayLayout)))
		}
	}

	if snapshot.Profile.OvulationReminder && sameCalendarDay(today, prediction.OvulationDate) {
		reminders = append(reminders, "predicted ovulation today")
	}

	if snapshot.Profile.PMSAlert {
		pmsHeadsUp := prediction.NextPeriodDate.AddDate(0, 0, -pmsAlertLeadDays)
		if sameCalendarDay(today, pmsHeadsUp) {
			reminders = append(reminders, "PMS window approaching")
		}
	}

	return reminders
}
