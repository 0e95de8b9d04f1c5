package db

import (
	"time"

	"github.com/bloom-app/bloom-server/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MoodLogRepository struct {
	database *gorm.DB
}

func NewMoodLogRepository(database *gorm.DB) *MoodLogRepository {
	return &MoodLogRepository{database: database}
}

func (repo *MoodLogRepository) FindByUserAndDayRange(userID string, dayStart time.Time, dayEnd time.Time) (models.MoodLog, bool, error) {
	entry := models.MoodLog{}
	result := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart, dayEnd).
		Order("date DESC, id DESC").
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.MoodLog{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.MoodLog{}, false, nil
	}
	return entry, true, nil
}

// Create inserts a log for the day. On a (user, date) collision every
// recorded field is replaced; the row keeps its original id.
func (repo *MoodLogRepository) Create(entry *models.MoodLog) error {
	return repo.database.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"mood", "energy_level", "notes", "updated_at"}),
	}).Create(entry).Error
}

func (repo *MoodLogRepository) Save(entry *models.MoodLog) error {
	return repo.database.Save(entry).Error
}
