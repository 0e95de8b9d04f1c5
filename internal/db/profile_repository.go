package db

import (
	"github.com/bloom-app/bloom-server/internal/models"
	"gorm.io/gorm"
)

type ProfileRepository struct {
	database *gorm.DB
}

func NewProfileRepository(database *gorm.DB) *ProfileRepository {
	return &ProfileRepository{database: database}
}

func (repo *ProfileRepository) FindByUserID(userID string) (models.UserProfile, bool, error) {
	profile := models.UserProfile{}
	result := repo.database.Where("user_id = ?", userID).Limit(1).Find(&profile)
	if result.Error != nil {
		return models.UserProfile{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.UserProfile{}, false, nil
	}
	return profile, true, nil
}

func (repo *ProfileRepository) Create(profile *models.UserProfile) error {
	return repo.database.Create(profile).Error
}

func (repo *ProfileRepository) Save(profile *models.UserProfile) error {
	return repo.database.Save(profile).Error
}

func (repo *ProfileRepository) DeleteByUserID(userID string) error {
	return repo.database.Where("user_id = ?", userID).Delete(&models.UserProfile{}).Error
}
