package services

import (
	"errors"
	"testing"
	"time"

	"github.com/selene-app/selene/internal/models"
)

type fakeStore struct {
	cycles   []models.CycleRecord
	symptoms []models.SymptomRecord
	profile  *models.UserProfile
	nextID   uint
}

func (store *fakeStore) ListAll() ([]models.CycleRecord, error) {
	return store.cycles, nil
}

func (store *fakeStore) ListRange(from *time.Time, to *time.Time) ([]models.CycleRecord, error) {
	matched := make([]models.CycleRecord, 0, len(store.cycles))
	for _, cycle := range store.cycles {
		if from != nil && cycle.StartDate.Before(*from) {
			continue
		}
		if to != nil && !cycle.StartDate.Before(*to) {
			continue
		}
		matched = append(matched, cycle)
	}
	return matched, nil
}

func (store *fakeStore) Create(record *models.CycleRecord) error {
	store.nextID++
	record.ID = store.nextID
	store.cycles = append(store.cycles, *record)
	return nil
}

type fakeSymptomStore struct {
	store *fakeStore
}

func (symptoms *fakeSymptomStore) ListAll() ([]models.SymptomRecord, error) {
	return symptoms.store.symptoms, nil
}

func (symptoms *fakeSymptomStore) ListByDayRange(dayStart time.Time, dayEnd time.Time) ([]models.SymptomRecord, error) {
	matched := make([]models.SymptomRecord, 0, len(symptoms.store.symptoms))
	for _, symptom := range symptoms.store.symptoms {
		if symptom.Date.Before(dayStart) || !symptom.Date.Before(dayEnd) {
			continue
		}
		matched = append(matched, symptom)
	}
	return matched, nil
}

func (symptoms *fakeSymptomStore) Create(record *models.SymptomRecord) error {
	symptoms.store.nextID++
	record.ID = symptoms.store.nextID
	symptoms.store.symptoms = append(symptoms.store.symptoms, *record)
	return nil
}

type fakeProfileStore struct {
	store *fakeStore
}

func (profiles *fakeProfileStore) Load() (*models.UserProfile, error) {
	return profiles.store.profile, nil
}

func (profiles *fakeProfileStore) Create(profile *models.UserProfile) error {
	profile.ID = 1
	profiles.store.profile = profile
	return nil
}

func (profiles *fakeProfileStore) Save(profile *models.UserProfile) error {
	profiles.store.profile = profile
	return nil
}

func (store *fakeStore) ClearAll() error {
	store.cycles = nil
	store.symptoms = nil
	store.profile = nil
	return nil
}

func newTestTracker() (*TrackerService, *fakeStore) {
	store := &fakeStore{}
	tracker := NewTrackerService(store, &fakeSymptomStore{store: store}, &fakeProfileStore{store: store}, store, time.UTC)
	return tracker, store
}

func TestAppendCycle_BootstrapsProfileOnFirstLog(t *testing.T) {
	t.Parallel()

	tracker, store := newTestTracker()
	now := mustParseDay(t, "2024-01-10")

	record, prediction, err := tracker.AppendCycle(CycleInput{
		StartDate:     mustParseDay(t, "2024-01-01"),
		FlowIntensity: "Medium",
	}, now)
	if err != nil {
		t.Fatalf("append cycle: %v", err)
	}

	if record.FlowIntensity != models.FlowMedium {
		t.Fatalf("expected normalized flow intensity, got %q", record.FlowIntensity)
	}
	if store.profile == nil {
		t.Fatal("expected profile bootstrap on first log")
	}
	if store.profile.AverageCycleLength != models.DefaultCycleLength {
		t.Fatalf("expected default cycle length %d, got %d", models.DefaultCycleLength, store.profile.AverageCycleLength)
	}
	if store.profile.LastPeriodDate == nil || !sameCalendarDay(*store.profile.LastPeriodDate, record.StartDate) {
		t.Fatalf("expected last period date set from first log, got %v", store.profile.LastPeriodDate)
	}
	if prediction == nil {
		t.Fatal("expected prediction after first log")
	}
	if got := prediction.NextPeriodDate.Format("2006-01-02"); got != "2024-01-29" {
		t.Fatalf("expected next period 2024-01-29, got %s", got)
	}
}

func TestAppendCycle_ValidationErrors(t *testing.T) {
	t.Parallel()

	endBeforeStart := mustParseDay(t, "2024-01-01")

	cases := []struct {
		name    string
		input   CycleInput
		wantErr error
	}{
		{
			name: "unknown flow intensity",
			input: CycleInput{
				StartDate:     mustParseDay(t, "2024-01-05"),
				FlowIntensity: "torrential",
			},
			wantErr: ErrInvalidFlowIntensity,
		},
		{
			name: "end date before start date",
			input: CycleInput{
				StartDate:     mustParseDay(t, "2024-01-05"),
				EndDate:       &endBeforeStart,
				FlowIntensity: models.FlowLight,
			},
			wantErr: ErrEndBeforeStart,
		},
	}

	for _, testCase := range cases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			tracker, store := newTestTracker()
			_, _, err := tracker.AppendCycle(testCase.input, mustParseDay(t, "2024-01-10"))
			if !errors.Is(err, testCase.wantErr) {
				t.Fatalf("expected %v, got %v", testCase.wantErr, err)
			}
			if len(store.cycles) != 0 {
				t.Fatalf("expected rejected record not to be stored, got %d records", len(store.cycles))
			}
		})
	}
}

func TestAppendCycle_DeduplicatesTags(t *testing.T) {
	t.Parallel()

	tracker, _ := newTestTracker()
	record, _, err := tracker.AppendCycle(CycleInput{
		StartDate:     mustParseDay(t, "2024-01-01"),
		FlowIntensity: models.FlowHeavy,
		Tags:          []string{"travel", " travel ", "", "stress"},
	}, mustParseDay(t, "2024-01-10"))
	if err != nil {
		t.Fatalf("append cycle: %v", err)
	}

	if len(record.Tags) != 2 {
		t.Fatalf("expected 2 deduplicated tags, got %v", record.Tags)
	}
}

func TestAppendSymptom_Validation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		input   SymptomInput
		wantErr error
	}{
		{
			name:    "blank type",
			input:   SymptomInput{Date: time.Now(), Type: "   ", Intensity: 3},
			wantErr: ErrInvalidSymptomType,
		},
		{
			name:    "intensity below range",
			input:   SymptomInput{Date: time.Now(), Type: "Cramps", Intensity: 0},
			wantErr: ErrInvalidSymptomIntensity,
		},
		{
			name:    "intensity above range",
			input:   SymptomInput{Date: time.Now(), Type: "Cramps", Intensity: 6},
			wantErr: ErrInvalidSymptomIntensity,
		},
	}

	for _, testCase := range cases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			tracker, _ := newTestTracker()
			_, err := tracker.AppendSymptom(testCase.input)
			if !errors.Is(err, testCase.wantErr) {
				t.Fatalf("expected %v, got %v", testCase.wantErr, err)
			}
		})
	}
}

func TestUpdateProfile_RequiresExistingProfile(t *testing.T) {
	t.Parallel()

	tracker, _ := newTestTracker()
	_, err := tracker.UpdateProfile(ProfileUpdate{AverageCycleLength: 30, AveragePeriodLength: 5})
	if !errors.Is(err, ErrProfileMissing) {
		t.Fatalf("expected ErrProfileMissing before first log, got %v", err)
	}
}

func TestUpdateProfile_PersistsSettings(t *testing.T) {
	t.Parallel()

	tracker, store := newTestTracker()
	if _, _, err := tracker.AppendCycle(CycleInput{
		StartDate:     mustParseDay(t, "2024-01-01"),
		FlowIntensity: models.FlowMedium,
	}, mustParseDay(t, "2024-01-10")); err != nil {
		t.Fatalf("append cycle: %v", err)
	}

	profile, err := tracker.UpdateProfile(ProfileUpdate{
		AverageCycleLength:  31,
		AveragePeriodLength: 6,
		Theme:               models.ThemeDark,
		PeriodReminder:      true,
		OvulationReminder:   false,
		PMSAlert:            false,
	})
	if err != nil {
		t.Fatalf("update profile: %v", err)
	}

	if profile.AverageCycleLength != 31 || profile.AveragePeriodLength != 6 {
		t.Fatalf("expected updated lengths 31/6, got %d/%d", profile.AverageCycleLength, profile.AveragePeriodLength)
	}
	if store.profile.Theme != models.ThemeDark {
		t.Fatalf("expected dark theme persisted, got %q", store.profile.Theme)
	}
	if store.profile.OvulationReminder {
		t.Fatal("expected ovulation reminder disabled")
	}
}

func TestClearAll_WipesEverything(t *testing.T) {
	t.Parallel()

	tracker, store := newTestTracker()
	now := mustParseDay(t, "2024-01-10")
	if _, _, err := tracker.AppendCycle(CycleInput{
		StartDate:     mustParseDay(t, "2024-01-01"),
		FlowIntensity: models.FlowLight,
	}, now); err != nil {
		t.Fatalf("append cycle: %v", err)
	}
	if _, err := tracker.AppendSymptom(SymptomInput{
		Date:      mustParseDay(t, "2024-01-02"),
		Type:      "Cramps",
		Intensity: 3,
	}); err != nil {
		t.Fatalf("append symptom: %v", err)
	}

	if err := tracker.ClearAll(); err != nil {
		t.Fatalf("clear all: %v", err)
	}

	if len(store.cycles) != 0 || len(store.symptoms) != 0 || store.profile != nil {
		t.Fatal("expected empty store after clear")
	}

	prediction, err := tracker.CurrentPrediction(now)
	if err != nil {
		t.Fatalf("current prediction: %v", err)
	}
	if prediction != nil {
		t.Fatalf("expected nil prediction after clear, got %+v", prediction)
	}
}
