package models

import "time"

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// UserProfile holds the prediction baseline and presentation preferences.
// At most one profile exists per installation; it is created on the first
// cycle log and updated through settings edits.
type UserProfile struct {
	ID                  uint       `gorm:"primaryKey" json:"id"`
	AverageCycleLength  int        `gorm:"not null;default:28" json:"average_cycle_length"`
	AveragePeriodLength int        `gorm:"not null;default:5" json:"average_period_length"`
	LastPeriodDate      *time.Time `gorm:"type:date" json:"last_period_date,omitempty"`
	Theme               string     `gorm:"not null;default:light" json:"theme"`
	PeriodReminder      bool       `gorm:"not null;default:true" json:"period_reminder"`
	OvulationReminder   bool       `gorm:"not null;default:true" json:"ovulation_reminder"`
	PMSAlert            bool       `gorm:"not null;default:true" json:"pms_alert"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// CycleLengthOrDefault is the fallback cycle length used when too few
// logged cycles exist to derive an empirical average.
func (profile *UserProfile) CycleLengthOrDefault() int {
	if profile == nil || profile.AverageCycleLength <= 0 {
		return DefaultCycleLength
	}
	return profile.AverageCycleLength
}

func DefaultProfile(now time.Time) UserProfile {
	return UserProfile{
		AverageCycleLength:  DefaultCycleLength,
		AveragePeriodLength: DefaultPeriodLength,
		Theme:               ThemeLight,
		PeriodReminder:      true,
		OvulationReminder:   true,
		PMSAlert:            true,
		CreatedAt:           now,
	}
}
