package models

import "time"

const (
	MinSymptomIntensity = 1
	MaxSymptomIntensity = 5
)

// SymptomRecord is one symptom observation on a calendar day. One record
// per (date, type) pair is expected but not enforced.
type SymptomRecord struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Date      time.Time `gorm:"type:date;not null;index" json:"date"`
	Type      string    `gorm:"not null" json:"type"`
	Intensity int       `gorm:"not null" json:"intensity"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func ValidSymptomIntensity(intensity int) bool {
	return intensity >= MinSymptomIntensity && intensity <= MaxSymptomIntensity
}

// BuiltinSymptomTypes lists the symptom labels offered by the logging UI.
// Free-text types are accepted as well; the list only seeds pickers.
func BuiltinSymptomTypes() []string {
	return []string{
		"Cramps",
		"Headache",
		"Mood swings",
		"Bloating",
		"Fatigue",
		"Breast tenderness",
		"Acne",
		"Back pain",
		"Nausea",
		"Spotting",
		"Irritability",
		"Insomnia",
		"Food cravings",
	}
}
