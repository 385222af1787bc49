package db

import "gorm.io/gorm"

type Repositories struct {
	Cycles   *CycleRepository
	Symptoms *SymptomRepository
	Profiles *ProfileRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Cycles:   NewCycleRepository(database),
		Symptoms: NewSymptomRepository(database),
		Profiles: NewProfileRepository(database),
	}
}

// ClearAll wipes every record and the profile in one transaction. Used by
// the bulk data-clear operation only.
func (repos *Repositories) ClearAll() error {
	return repos.Cycles.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`DELETE FROM cycle_records`).Error; err != nil {
			return err
		}
		if err := tx.Exec(`DELETE FROM symptom_records`).Error; err != nil {
			return err
		}
		return tx.Exec(`DELETE FROM user_profiles`).Error
	})
}
