package db

import (
	"time"

	"github.com/bloom-app/bloom-server/internal/models"
	"gorm.io/gorm"
)

type MealLogRepository struct {
	database *gorm.DB
}

func NewMealLogRepository(database *gorm.DB) *MealLogRepository {
	return &MealLogRepository{database: database}
}

func (repo *MealLogRepository) Create(entry *models.MealLog) error {
	return repo.database.Create(entry).Error
}

func (repo *MealLogRepository) ListByUserDayRange(userID string, dayStart time.Time, dayEnd time.Time) ([]models.MealLog, error) {
	logs := make([]models.MealLog, 0)
	if err := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart, dayEnd).
		Order("date ASC, id ASC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
