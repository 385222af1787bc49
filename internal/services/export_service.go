package services

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/selene-app/selene/internal/models"
)

const exportDateLayout = "2006-01-02"

var ExportCycleCSVHeaders = []string{
	"Start date",
	"End date",
	"Flow",
	"Duration (days)",
	"Tags",
	"Notes",
}

var ExportSymptomCSVHeaders = []string{
	"Date",
	"Type",
	"Intensity",
	"Notes",
}

type ExportCycleReader interface {
	ListAll() ([]models.CycleRecord, error)
}

type ExportSymptomReader interface {
	ListAll() ([]models.SymptomRecord, error)
}

type ExportService struct {
	cycles   ExportCycleReader
	symptoms ExportSymptomReader
	location *time.Location
}

type ExportSummary struct {
	CycleCount   int    `json:"cycle_count"`
	SymptomCount int    `json:"symptom_count"`
	HasData      bool   `json:"has_data"`
	DateFrom     string `json:"date_from"`
	DateTo       string `json:"date_to"`
}

type ExportCycleEntry struct {
	StartDate string   `json:"start_date"`
	EndDate   string   `json:"end_date,omitempty"`
	Flow      string   `json:"flow"`
	Duration  int      `json:"duration_days,omitempty"`
	Tags      []string `json:"tags"`
	Notes     string   `json:"notes,omitempty"`
}

type ExportSymptomEntry struct {
	Date      string `json:"date"`
	Type      string `json:"type"`
	Intensity int    `json:"intensity"`
	Notes     string `json:"notes,omitempty"`
}

type ExportPayload struct {
	ExportedAt string               `json:"exported_at"`
	Cycles     []ExportCycleEntry   `json:"cycles"`
	Symptoms   []ExportSymptomEntry `json:"symptoms"`
}

func NewExportService(cycles ExportCycleReader, symptoms ExportSymptomReader, location *time.Location) *ExportService {
	if location == nil {
		location = time.UTC
	}
	return &ExportService{
		cycles:   cycles,
		symptoms: symptoms,
		location: location,
	}
}

func (service *ExportService) BuildSummary() (ExportSummary, error) {
	cycles, err := service.cycles.ListAll()
	if err != nil {
		return ExportSummary{}, err
	}
	symptoms, err := service.symptoms.ListAll()
	if err != nil {
		return ExportSummary{}, err
	}
	if len(cycles) == 0 && len(symptoms) == 0 {
		return ExportSummary{}, nil
	}

	var first, last time.Time
	track := func(value time.Time) {
		day := DateAtLocation(value, service.location)
		if first.IsZero() || day.Before(first) {
			first = day
		}
		if last.IsZero() || day.After(last) {
			last = day
		}
	}
	for _, cycle := range cycles {
		track(cycle.StartDate)
		if cycle.EndDate != nil {
			track(*cycle.EndDate)
		}
	}
	for _, symptom := range symptoms {
		track(symptom.Date)
	}

	return ExportSummary{
		CycleCount:   len(cycles),
		SymptomCount: len(symptoms),
		HasData:      true,
		DateFrom:     first.Format(exportDateLayout),
		DateTo:       last.Format(exportDateLayout),
	}, nil
}

func (service *ExportService) BuildPayload(now time.Time) (ExportPayload, error) {
	cycleEntries, err := service.BuildCycleEntries()
	if err != nil {
		return ExportPayload{}, err
	}
	symptomEntries, err := service.BuildSymptomEntries()
	if err != nil {
		return ExportPayload{}, err
	}
	return ExportPayload{
		ExportedAt: DateAtLocation(now, service.location).Format(exportDateLayout),
		Cycles:     cycleEntries,
		Symptoms:   symptomEntries,
	}, nil
}

func (service *ExportService) BuildCycleEntries() ([]ExportCycleEntry, error) {
	cycles, err := service.cycles.ListAll()
	if err != nil {
		return nil, err
	}

	sorted := sortCyclesMostRecentFirst(cycles)
	entries := make([]ExportCycleEntry, 0, len(sorted))
	for _, cycle := range sorted {
		entry := ExportCycleEntry{
			StartDate: DateAtLocation(cycle.StartDate, service.location).Format(exportDateLayout),
			Flow:      cycle.FlowIntensity,
			Tags:      sortedTags(cycle.Tags),
			Notes:     cycle.Notes,
		}
		if !cycle.Ongoing() {
			start := DateAtLocation(cycle.StartDate, service.location)
			end := DateAtLocation(*cycle.EndDate, service.location)
			entry.EndDate = end.Format(exportDateLayout)
			entry.Duration = daysBetween(start, end) + 1
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (service *ExportService) BuildSymptomEntries() ([]ExportSymptomEntry, error) {
	symptoms, err := service.symptoms.ListAll()
	if err != nil {
		return nil, err
	}

	entries := make([]ExportSymptomEntry, 0, len(symptoms))
	for _, symptom := range symptoms {
		entries = append(entries, ExportSymptomEntry{
			Date:      DateAtLocation(symptom.Date, service.location).Format(exportDateLayout),
			Type:      symptom.Type,
			Intensity: symptom.Intensity,
			Notes:     symptom.Notes,
		})
	}
	return entries, nil
}

func (entry ExportCycleEntry) Columns() []string {
	duration := ""
	if entry.Duration > 0 {
		duration = strconv.Itoa(entry.Duration)
	}
	return []string{
		entry.StartDate,
		entry.EndDate,
		csvFlowLabel(entry.Flow),
		duration,
		strings.Join(entry.Tags, "; "),
		entry.Notes,
	}
}

func (entry ExportSymptomEntry) Columns() []string {
	return []string{
		entry.Date,
		entry.Type,
		strconv.Itoa(entry.Intensity),
		entry.Notes,
	}
}

func csvFlowLabel(flow string) string {
	switch strings.ToLower(strings.TrimSpace(flow)) {
	case models.FlowLight:
		return "Light"
	case models.FlowMedium:
		return "Medium"
	case models.FlowHeavy:
		return "Heavy"
	default:
		return ""
	}
}

func sortedTags(tags []string) []string {
	sorted := make([]string, 0, len(tags))
	sorted = append(sorted, tags...)
	sort.Strings(sorted)
	return sorted
}
