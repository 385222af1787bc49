package db

import (
	"errors"

	"github.com/selene-app/selene/internal/models"
	"gorm.io/gorm"
)

type ProfileRepository struct {
	database *gorm.DB
}

func NewProfileRepository(database *gorm.DB) *ProfileRepository {
	return &ProfileRepository{database: database}
}

// Load returns the installation's profile, or nil when none has been
// created yet. A missing profile is an expected state, not an error.
func (repo *ProfileRepository) Load() (*models.UserProfile, error) {
	var profile models.UserProfile
	err := repo.database.Order("id ASC").First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (repo *ProfileRepository) Create(profile *models.UserProfile) error {
	return repo.database.Create(profile).Error
}

func (repo *ProfileRepository) Save(profile *models.UserProfile) error {
	return repo.database.Save(profile).Error
}
