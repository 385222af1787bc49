package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/selene-app/selene/internal/models"
)

var (
	ErrInvalidFlowIntensity    = errors.New("invalid flow intensity")
	ErrEndBeforeStart          = errors.New("end date before start date")
	ErrInvalidSymptomType      = errors.New("invalid symptom type")
	ErrInvalidSymptomIntensity = errors.New("invalid symptom intensity")
	ErrInvalidCycleLength      = errors.New("invalid cycle length")
	ErrInvalidPeriodLength     = errors.New("invalid period length")
	ErrProfileMissing          = errors.New("profile missing")
)

type CycleStore interface {
	ListAll() ([]models.CycleRecord, error)
	ListRange(from *time.Time, to *time.Time) ([]models.CycleRecord, error)
	Create(record *models.CycleRecord) error
}

type SymptomStore interface {
	ListAll() ([]models.SymptomRecord, error)
	ListByDayRange(dayStart time.Time, dayEnd time.Time) ([]models.SymptomRecord, error)
	Create(record *models.SymptomRecord) error
}

type ProfileStore interface {
	Load() (*models.UserProfile, error)
	Create(profile *models.UserProfile) error
	Save(profile *models.UserProfile) error
}

type DataWiper interface {
	ClearAll() error
}

// TrackerService owns the record store on behalf of the host. Mutators
// validate input, persist, and hand back a fresh snapshot plus the
// recomputed prediction; the engine itself stays pure and is re-invoked
// after every write.
type TrackerService struct {
	cycles   CycleStore
	symptoms SymptomStore
	profiles ProfileStore
	wiper    DataWiper
	location *time.Location
}

// Snapshot is a consistent, already-materialized read of the store that
// engine calls operate on. Derived values hold no references back into it.
type Snapshot struct {
	Cycles   []models.CycleRecord
	Symptoms []models.SymptomRecord
	Profile  *models.UserProfile
}

func NewTrackerService(cycles CycleStore, symptoms SymptomStore, profiles ProfileStore, wiper DataWiper, location *time.Location) *TrackerService {
	if location == nil {
		location = time.UTC
	}
	return &TrackerService{
		cycles:   cycles,
		symptoms: symptoms,
		profiles: profiles,
		wiper:    wiper,
		location: location,
	}
}

func (service *TrackerService) Snapshot() (Snapshot, error) {
	cycles, err := service.cycles.ListAll()
	if err != nil {
		return Snapshot{}, fmt.Errorf("list cycles: %w", err)
	}
	symptoms, err := service.symptoms.ListAll()
	if err != nil {
		return Snapshot{}, fmt.Errorf("list symptoms: %w", err)
	}
	profile, err := service.profiles.Load()
	if err != nil {
		return Snapshot{}, fmt.Errorf("load profile: %w", err)
	}
	return Snapshot{Cycles: cycles, Symptoms: symptoms, Profile: profile}, nil
}

type CycleInput struct {
	StartDate     time.Time
	EndDate       *time.Time
	FlowIntensity string
	Tags          []string
	Notes         string
}

// AppendCycle validates and persists one logged period, bootstrapping the
// profile on the very first log, then returns the stored record and the
// prediction recomputed from the new history.
func (service *TrackerService) AppendCycle(input CycleInput, now time.Time) (models.CycleRecord, *CyclePrediction, error) {
	flow := strings.ToLower(strings.TrimSpace(input.FlowIntensity))
	if !models.ValidFlowIntensity(flow) {
		return models.CycleRecord{}, nil, ErrInvalidFlowIntensity
	}

	startDate := DateAtLocation(input.StartDate, service.location)
	var endDate *time.Time
	if input.EndDate != nil {
		normalized := DateAtLocation(*input.EndDate, service.location)
		if normalized.Before(startDate) {
			return models.CycleRecord{}, nil, ErrEndBeforeStart
		}
		endDate = &normalized
	}

	if err := service.ensureProfile(startDate, now); err != nil {
		return models.CycleRecord{}, nil, err
	}

	record := models.CycleRecord{
		StartDate:     startDate,
		EndDate:       endDate,
		FlowIntensity: flow,
		Tags:          dedupeTags(input.Tags),
		Notes:         strings.TrimSpace(input.Notes),
	}
	if err := service.cycles.Create(&record); err != nil {
		return models.CycleRecord{}, nil, fmt.Errorf("create cycle: %w", err)
	}

	prediction, err := service.CurrentPrediction(now)
	if err != nil {
		return models.CycleRecord{}, nil, err
	}
	return record, prediction, nil
}

// CyclesInMonth lists the cycles starting inside the calendar month of
// monthStart.
func (service *TrackerService) CyclesInMonth(monthStart time.Time) ([]models.CycleRecord, error) {
	from := DateAtLocation(monthStart, service.location)
	from = time.Date(from.Year(), from.Month(), 1, 0, 0, 0, 0, service.location)
	to := from.AddDate(0, 1, 0)

	cycles, err := service.cycles.ListRange(&from, &to)
	if err != nil {
		return nil, fmt.Errorf("list cycles in month: %w", err)
	}
	return cycles, nil
}

// SymptomsOn lists the symptoms logged on the calendar day of date.
func (service *TrackerService) SymptomsOn(date time.Time) ([]models.SymptomRecord, error) {
	dayStart, dayEnd := DayRange(date, service.location)
	symptoms, err := service.symptoms.ListByDayRange(dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("list symptoms on day: %w", err)
	}
	return symptoms, nil
}

type SymptomInput struct {
	Date      time.Time
	Type      string
	Intensity int
	Notes     string
}

func (service *TrackerService) AppendSymptom(input SymptomInput) (models.SymptomRecord, error) {
	symptomType := strings.TrimSpace(input.Type)
	if symptomType == "" {
		return models.SymptomRecord{}, ErrInvalidSymptomType
	}
	if !models.ValidSymptomIntensity(input.Intensity) {
		return models.SymptomRecord{}, ErrInvalidSymptomIntensity
	}

	record := models.SymptomRecord{
		Date:      DateAtLocation(input.Date, service.location),
		Type:      symptomType,
		Intensity: input.Intensity,
		Notes:     strings.TrimSpace(input.Notes),
	}
	if err := service.symptoms.Create(&record); err != nil {
		return models.SymptomRecord{}, fmt.Errorf("create symptom: %w", err)
	}
	return record, nil
}

// CurrentPrediction recomputes the prediction from the full history
// snapshot. Nil means "no prediction available".
func (service *TrackerService) CurrentPrediction(now time.Time) (*CyclePrediction, error) {
	cycles, err := service.cycles.ListAll()
	if err != nil {
		return nil, fmt.Errorf("list cycles: %w", err)
	}
	profile, err := service.profiles.Load()
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	return Predict(profile, cycles, now, service.location), nil
}

func (service *TrackerService) Analytics() (AnalyticsSummary, error) {
	snapshot, err := service.Snapshot()
	if err != nil {
		return AnalyticsSummary{}, err
	}
	return Summarize(snapshot.Cycles, snapshot.Symptoms, snapshot.Profile.CycleLengthOrDefault()), nil
}

type ProfileUpdate struct {
	AverageCycleLength  int
	AveragePeriodLength int
	LastPeriodDateSet   bool
	LastPeriodDate      *time.Time
	Theme               string
	PeriodReminder      bool
	OvulationReminder   bool
	PMSAlert            bool
}

func (service *TrackerService) UpdateProfile(update ProfileUpdate) (*models.UserProfile, error) {
	if update.AverageCycleLength <= 0 || update.AverageCycleLength > 90 {
		return nil, ErrInvalidCycleLength
	}
	if update.AveragePeriodLength <= 0 || update.AveragePeriodLength > 14 {
		return nil, ErrInvalidPeriodLength
	}

	profile, err := service.profiles.Load()
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if profile == nil {
		return nil, ErrProfileMissing
	}

	profile.AverageCycleLength = update.AverageCycleLength
	profile.AveragePeriodLength = update.AveragePeriodLength
	if update.LastPeriodDateSet {
		if update.LastPeriodDate == nil {
			profile.LastPeriodDate = nil
		} else {
			normalized := DateAtLocation(*update.LastPeriodDate, service.location)
			profile.LastPeriodDate = &normalized
		}
	}
	if update.Theme == models.ThemeLight || update.Theme == models.ThemeDark {
		profile.Theme = update.Theme
	}
	profile.PeriodReminder = update.PeriodReminder
	profile.OvulationReminder = update.OvulationReminder
	profile.PMSAlert = update.PMSAlert

	if err := service.profiles.Save(profile); err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}
	return profile, nil
}

// ClearAll destroys every record and the profile. The only operation that
// ever removes data.
func (service *TrackerService) ClearAll() error {
	return service.wiper.ClearAll()
}

// ensureProfile creates the installation profile with defaults on the
// first cycle log; later logs leave it untouched.
func (service *TrackerService) ensureProfile(startDate time.Time, now time.Time) error {
	profile, err := service.profiles.Load()
	if err != nil {
		return fmt.Errorf("load profile: %w", err)
	}
	if profile != nil {
		return nil
	}

	created := models.DefaultProfile(now)
	created.LastPeriodDate = &startDate
	if err := service.profiles.Create(&created); err != nil {
		return fmt.Errorf("create profile: %w", err)
	}
	return nil
}

func dedupeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	deduped := make([]string, 0, len(tags))
	for _, tag := range tags {
		trimmed := strings.TrimSpace(tag)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		deduped = append(deduped, trimmed)
	}
	return deduped
}
