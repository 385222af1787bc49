package services

import (
	"sort"
	"time"

	"github.com/selene-app/selene/internal/models"
)

const recentCycleCount = 6

// AnalyticsSummary is a derived value object, recomputed on demand and
// never persisted.
type AnalyticsSummary struct {
	AverageCycleLength int                  `json:"average_cycle_length"`
	CycleRegularity    int                  `json:"cycle_regularity"`
	CommonSymptoms     map[string]int       `json:"common_symptoms"`
	PeriodDuration     int                  `json:"period_duration"`
	RecentCycles       []models.CycleRecord `json:"recent_cycles"`
}

// AverageCycleLength walks consecutive start-date gaps in most-recent-first
// order and averages the usable ones. A gap is usable only when it lands in
// (0, 45] days; anything else is treated as a mis-logged or missing cycle
// and silently excluded. With no usable gap the fallback wins.
func AverageCycleLength(cycles []models.CycleRecord, fallback int) int {
	gaps := usableCycleGaps(cycles)
	if len(gaps) == 0 {
		return fallback
	}

	total := 0
	for _, gap := range gaps {
		total += gap
	}
	return roundToInt(float64(total) / float64(len(gaps)))
}

// Summarize computes backward-looking analytics over the full history.
// Pure function; tolerates empty inputs.
func Summarize(cycles []models.CycleRecord, symptoms []models.SymptomRecord, fallbackCycleLength int) AnalyticsSummary {
	sorted := sortCyclesMostRecentFirst(cycles)
	averageLength := AverageCycleLength(sorted, fallbackCycleLength)

	return AnalyticsSummary{
		AverageCycleLength: averageLength,
		CycleRegularity:    regularityScore(sorted, averageLength),
		CommonSymptoms:     countSymptomTypes(symptoms),
		PeriodDuration:     averagePeriodDuration(sorted),
		RecentCycles:       headCycles(sorted, recentCycleCount),
	}
}

// regularityScore is the heuristic penalty 100 - 2*variance clamped to
// [0, 100], where variance is the mean squared deviation of usable gaps
// from the average cycle length. It is not a statistical confidence
// measure and its scaling is part of the observable behavior.
func regularityScore(cycles []models.CycleRecord, averageLength int) int {
	gaps := usableCycleGaps(cycles)

	variance := 0.0
	if len(gaps) > 1 {
		total := 0.0
		for _, gap := range gaps {
			deviation := float64(gap - averageLength)
			total += deviation * deviation
		}
		variance = total / float64(len(gaps))
	}

	score := 100 - variance*2
	if score < 0 {
		score = 0
	}
	return roundToInt(score)
}

func countSymptomTypes(symptoms []models.SymptomRecord) map[string]int {
	counts := make(map[string]int, len(symptoms))
	for _, symptom := range symptoms {
		counts[symptom.Type]++
	}
	return counts
}

// averagePeriodDuration averages the inclusive day count of every cycle
// with a known end date. Open-ended periods contribute nothing; with no
// completed period at all the default period length stands in.
func averagePeriodDuration(cycles []models.CycleRecord) int {
	total := 0
	counted := 0
	for _, cycle := range cycles {
		if cycle.EndDate == nil {
			continue
		}
		start := DateAtLocation(cycle.StartDate, cycle.StartDate.Location())
		end := DateAtLocation(*cycle.EndDate, cycle.StartDate.Location())
		total += daysBetween(start, end) + 1
		counted++
	}
	if counted == 0 {
		return models.DefaultPeriodLength
	}
	return roundToInt(float64(total) / float64(counted))
}

// usableCycleGaps returns start-to-start differences between consecutive
// cycles ordered by descending start date, keeping only gaps in (0, 45].
func usableCycleGaps(cycles []models.CycleRecord) []int {
	if len(cycles) < 2 {
		return nil
	}

	sorted := sortCyclesMostRecentFirst(cycles)
	gaps := make([]int, 0, len(sorted)-1)
	for i := 0; i < len(sorted)-1; i++ {
		later := DateAtLocation(sorted[i].StartDate, time.UTC)
		earlier := DateAtLocation(sorted[i+1].StartDate, time.UTC)
		gap := daysBetween(earlier, later)
		if gap > 0 && gap <= models.MaxUsableCycleGap {
			gaps = append(gaps, gap)
		}
	}
	return gaps
}

func sortCyclesMostRecentFirst(cycles []models.CycleRecord) []models.CycleRecord {
	sorted := make([]models.CycleRecord, 0, len(cycles))
	sorted = append(sorted, cycles...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].StartDate.Equal(sorted[j].StartDate) {
			return sorted[i].ID > sorted[j].ID
		}
		return sorted[i].StartDate.After(sorted[j].StartDate)
	})
	return sorted
}

func headCycles(cycles []models.CycleRecord, n int) []models.CycleRecord {
	if len(cycles) <= n {
		return cycles
	}
	return cycles[:n]
}
