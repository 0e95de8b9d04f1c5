package db

import (
	"time"

	"github.com/bloom-app/bloom-server/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WeightLogRepository struct {
	database *gorm.DB
}

func NewWeightLogRepository(database *gorm.DB) *WeightLogRepository {
	return &WeightLogRepository{database: database}
}

func (repo *WeightLogRepository) FindByUserAndDayRange(userID string, dayStart time.Time, dayEnd time.Time) (models.WeightLog, bool, error) {
	entry := models.WeightLog{}
	result := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart, dayEnd).
		Order("date DESC, id DESC").
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.WeightLog{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.WeightLog{}, false, nil
	}
	return entry, true, nil
}

// Create inserts a log for the day. On a (user, date) collision every
// recorded field is replaced; the row keeps its original id.
func (repo *WeightLogRepository) Create(entry *models.WeightLog) error {
	return repo.database.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"weight", "unit", "notes", "updated_at"}),
	}).Create(entry).Error
}

func (repo *WeightLogRepository) Save(entry *models.WeightLog) error {
	return repo.database.Save(entry).Error
}

func (repo *WeightLogRepository) ListByUserRange(userID string, rangeStart time.Time, rangeEnd time.Time) ([]models.WeightLog, error) {
	logs := make([]models.WeightLog, 0)
	if err := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, rangeStart, rangeEnd).
		Order("date DESC, id DESC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
