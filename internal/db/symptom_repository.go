package db

import (
	"time"

	"github.com/selene-app/selene/internal/models"
	"gorm.io/gorm"
)

type SymptomRepository struct {
	database *gorm.DB
}

func NewSymptomRepository(database *gorm.DB) *SymptomRepository {
	return &SymptomRepository{database: database}
}

func (repo *SymptomRepository) ListAll() ([]models.SymptomRecord, error) {
	symptoms := make([]models.SymptomRecord, 0)
	if err := repo.database.Order("date DESC, id DESC").Find(&symptoms).Error; err != nil {
		return nil, err
	}
	return symptoms, nil
}

func (repo *SymptomRepository) ListByDayRange(dayStart time.Time, dayEnd time.Time) ([]models.SymptomRecord, error) {
	symptoms := make([]models.SymptomRecord, 0)
	if err := repo.database.
		Where("date >= ? AND date < ?", dayStart, dayEnd).
		Order("date DESC, id DESC").
		Find(&symptoms).Error; err != nil {
		return nil, err
	}
	return symptoms, nil
}

func (repo *SymptomRepository) Create(record *models.SymptomRecord) error {
	return repo.database.Create(record).Error
}
