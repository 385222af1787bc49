package services

import (
	"testing"

	"github.com/selene-app/selene/internal/models"
)

func TestAverageCycleLength_UsableGap(t *testing.T) {
	t.Parallel()

	cycles := []models.CycleRecord{
		cycleStarting(t, "2024-01-01"),
		cycleStarting(t, "2024-01-30"),
	}

	if got := AverageCycleLength(cycles, 28); got != 29 {
		t.Fatalf("expected average 29 from a 29-day gap, got %d", got)
	}
}

func TestAverageCycleLength_FallbackCases(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		cycles   []models.CycleRecord
		fallback int
		want     int
	}{
		{
			name:     "no cycles",
			cycles:   nil,
			fallback: 28,
			want:     28,
		},
		{
			name:     "single cycle",
			cycles:   []models.CycleRecord{cycleStarting(t, "2024-01-01")},
			fallback: 30,
			want:     30,
		},
		{
			name: "gap exceeds 45 days",
			cycles: []models.CycleRecord{
				cycleStarting(t, "2024-01-01"),
				cycleStarting(t, "2024-02-20"),
			},
			fallback: 31,
			want:     31,
		},
		{
			name: "duplicate start dates produce zero gap",
			cycles: []models.CycleRecord{
				cycleStarting(t, "2024-01-01"),
				cycleStarting(t, "2024-01-01"),
			},
			fallback: 27,
			want:     27,
		},
	}

	for _, testCase := range cases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			if got := AverageCycleLength(testCase.cycles, testCase.fallback); got != testCase.want {
				t.Fatalf("expected %d, got %d", testCase.want, got)
			}
		})
	}
}

func TestAverageCycleLength_OutOfRangeGapsNeverInfluenceResult(t *testing.T) {
	t.Parallel()

	// 28-day and 29-day gaps are usable; the 50-day gap in the middle is
	// excluded rather than averaged in.
	cycles := []models.CycleRecord{
		cycleStarting(t, "2024-01-01"),
		cycleStarting(t, "2024-01-29"),
		cycleStarting(t, "2024-03-19"),
		cycleStarting(t, "2024-04-17"),
	}

	if got := AverageCycleLength(cycles, 99); got != 29 {
		t.Fatalf("expected rounded mean 29 of usable gaps {28, 29}, got %d", got)
	}
}

func TestSummarize_RegularityWithZeroUsableGaps(t *testing.T) {
	t.Parallel()

	// A 50-day gap exceeds the usable range: average falls back to the
	// profile value and zero usable gaps mean zero variance, a perfect
	// regularity score.
	cycles := []models.CycleRecord{
		cycleStarting(t, "2024-01-01"),
		cycleStarting(t, "2024-02-20"),
	}

	summary := Summarize(cycles, nil, 30)
	if summary.AverageCycleLength != 30 {
		t.Fatalf("expected fallback average 30, got %d", summary.AverageCycleLength)
	}
	if summary.CycleRegularity != 100 {
		t.Fatalf("expected regularity 100 with zero usable gaps, got %d", summary.CycleRegularity)
	}
}

func TestSummarize_RegularityPenalizesVariance(t *testing.T) {
	t.Parallel()

	// Gaps 26 and 32 around their mean of 29: variance 9, score 82.
	cycles := []models.CycleRecord{
		cycleStarting(t, "2024-01-01"),
		cycleStarting(t, "2024-01-27"),
		cycleStarting(t, "2024-02-28"),
	}

	summary := Summarize(cycles, nil, 28)
	if summary.AverageCycleLength != 29 {
		t.Fatalf("expected average 29, got %d", summary.AverageCycleLength)
	}
	if summary.CycleRegularity != 82 {
		t.Fatalf("expected regularity 82, got %d", summary.CycleRegularity)
	}
}

func TestSummarize_RegularityClampedAtZero(t *testing.T) {
	t.Parallel()

	// Wildly uneven gaps (10 and 45, mean 28 rounded) push the variance
	// penalty past 100; the score clamps instead of going negative.
	cycles := []models.CycleRecord{
		cycleStarting(t, "2024-01-01"),
		cycleStarting(t, "2024-01-11"),
		cycleStarting(t, "2024-02-25"),
	}

	summary := Summarize(cycles, nil, 28)
	if summary.CycleRegularity != 0 {
		t.Fatalf("expected regularity clamped to 0, got %d", summary.CycleRegularity)
	}
}

func TestSummarize_CommonSymptomCounts(t *testing.T) {
	t.Parallel()

	symptoms := []models.SymptomRecord{
		{Date: mustParseDay(t, "2024-01-02"), Type: "Cramps", Intensity: 3},
		{Date: mustParseDay(t, "2024-01-03"), Type: "Cramps", Intensity: 5},
		{Date: mustParseDay(t, "2024-01-04"), Type: "Headache", Intensity: 2},
	}

	summary := Summarize(nil, symptoms, 28)
	if got := summary.CommonSymptoms["Cramps"]; got != 2 {
		t.Fatalf("expected 2 cramps occurrences, got %d", got)
	}
	if got := summary.CommonSymptoms["Headache"]; got != 1 {
		t.Fatalf("expected 1 headache occurrence, got %d", got)
	}
	if len(summary.CommonSymptoms) != 2 {
		t.Fatalf("expected 2 distinct symptom types, got %d", len(summary.CommonSymptoms))
	}
}

func TestSummarize_PeriodDuration(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		cycles []models.CycleRecord
		want   int
	}{
		{
			name: "inclusive day count",
			cycles: []models.CycleRecord{
				cycleBetween(t, "2024-01-01", "2024-01-05"),
			},
			want: 5,
		},
		{
			name: "averaged across completed periods",
			cycles: []models.CycleRecord{
				cycleBetween(t, "2024-01-01", "2024-01-04"),
				cycleBetween(t, "2024-01-29", "2024-02-04"),
				cycleStarting(t, "2024-02-26"),
			},
			want: 6,
		},
		{
			name: "default when no period has an end date",
			cycles: []models.CycleRecord{
				cycleStarting(t, "2024-01-01"),
				cycleStarting(t, "2024-01-29"),
			},
			want: 5,
		},
	}

	for _, testCase := range cases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			summary := Summarize(testCase.cycles, nil, 28)
			if summary.PeriodDuration != testCase.want {
				t.Fatalf("expected period duration %d, got %d", testCase.want, summary.PeriodDuration)
			}
		})
	}
}

func TestSummarize_RecentCyclesMostRecentFirstCappedAtSix(t *testing.T) {
	t.Parallel()

	starts := []string{
		"2024-01-01", "2024-01-29", "2024-02-26", "2024-03-25",
		"2024-04-22", "2024-05-20", "2024-06-17", "2024-07-15",
	}
	cycles := make([]models.CycleRecord, 0, len(starts))
	for _, start := range starts {
		cycles = append(cycles, cycleStarting(t, start))
	}

	summary := Summarize(cycles, nil, 28)
	if len(summary.RecentCycles) != 6 {
		t.Fatalf("expected 6 recent cycles, got %d", len(summary.RecentCycles))
	}
	if got := summary.RecentCycles[0].StartDate.Format("2006-01-02"); got != "2024-07-15" {
		t.Fatalf("expected most recent cycle first, got %s", got)
	}
	if got := summary.RecentCycles[5].StartDate.Format("2006-01-02"); got != "2024-02-26" {
		t.Fatalf("expected sixth recent cycle 2024-02-26, got %s", got)
	}
}

func TestSummarize_ToleratesEmptyInputs(t *testing.T) {
	t.Parallel()

	summary := Summarize(nil, nil, 28)
	if summary.AverageCycleLength != 28 {
		t.Fatalf("expected fallback average, got %d", summary.AverageCycleLength)
	}
	if summary.CycleRegularity != 100 {
		t.Fatalf("expected regularity 100 for empty history, got %d", summary.CycleRegularity)
	}
	if summary.PeriodDuration != 5 {
		t.Fatalf("expected default period duration 5, got %d", summary.PeriodDuration)
	}
	if len(summary.CommonSymptoms) != 0 {
		t.Fatalf("expected no symptom counts, got %v", summary.CommonSymptoms)
	}
	if len(summary.RecentCycles) != 0 {
		t.Fatalf("expected no recent cycles, got %d", len(summary.RecentCycles))
	}
}
