package models

import "time"

const (
	FlowLight  = "light"
	FlowMedium = "medium"
	FlowHeavy  = "heavy"
)

const (
	DefaultCycleLength  = 28
	DefaultPeriodLength = 5

	// MaxUsableCycleGap bounds the start-to-start gap (in days) that feeds
	// average and regularity calculations. Larger gaps are treated as
	// mis-logged or missing cycles and excluded.
	MaxUsableCycleGap = 45
)

// CycleRecord is one logged menstrual period. Records are append-only:
// corrections happen through new entries, never edits.
type CycleRecord struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	StartDate     time.Time  `gorm:"type:date;not null;index" json:"start_date"`
	EndDate       *time.Time `gorm:"type:date" json:"end_date,omitempty"`
	FlowIntensity string     `gorm:"not null;default:medium" json:"flow_intensity"`
	Tags          []string   `gorm:"serializer:json" json:"tags"`
	Notes         string     `json:"notes,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// Ongoing reports whether the period has no logged end date yet.
func (record CycleRecord) Ongoing() bool {
	return record.EndDate == nil
}

func ValidFlowIntensity(flow string) bool {
	switch flow {
	case FlowLight, FlowMedium, FlowHeavy:
		return true
	default:
		return false
	}
}
