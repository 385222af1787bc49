package db

import (
	"time"

	"github.com/selene-app/selene/internal/models"
	"gorm.io/gorm"
)

type CycleRepository struct {
	database *gorm.DB
}

func NewCycleRepository(database *gorm.DB) *CycleRepository {
	return &CycleRepository{database: database}
}

// ListAll returns every cycle record, most recent start date first. The
// engine re-derives the maximum start date itself and never depends on
// this ordering; it exists for presentation.
func (repo *CycleRepository) ListAll() ([]models.CycleRecord, error) {
	cycles := make([]models.CycleRecord, 0)
	if err := repo.database.Order("start_date DESC, id DESC").Find(&cycles).Error; err != nil {
		return nil, err
	}
	return cycles, nil
}

func (repo *CycleRepository) ListRange(from *time.Time, to *time.Time) ([]models.CycleRecord, error) {
	query := repo.database.Model(&models.CycleRecord{})
	if from != nil {
		query = query.Where("start_date >= ?", *from)
	}
	if to != nil {
		query = query.Where("start_date < ?", *to)
	}

	cycles := make([]models.CycleRecord, 0)
	if err := query.Order("start_date DESC, id DESC").Find(&cycles).Error; err != nil {
		return nil, err
	}
	return cycles, nil
}

func (repo *CycleRepository) Create(record *models.CycleRecord) error {
	return repo.database.Create(record).Error
}

func (repo *CycleRepository) Count() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.CycleRecord{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
