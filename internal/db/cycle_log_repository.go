package db

import (
	"time"

	"github.com/bloom-app/bloom-server/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CycleLogRepository struct {
	database *gorm.DB
}

func NewCycleLogRepository(database *gorm.DB) *CycleLogRepository {
	return &CycleLogRepository{database: database}
}

func (repo *CycleLogRepository) FindByUserAndDayRange(userID string, dayStart time.Time, dayEnd time.Time) (models.CycleLog, bool, error) {
	entry := models.CycleLog{}
	result := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart, dayEnd).
		Order("date DESC, id DESC").
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.CycleLog{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.CycleLog{}, false, nil
	}
	return entry, true, nil
}

// Create inserts a log for the day. If another writer already claimed the
// (user, date) slot, the merge columns are folded onto the existing row so
// the day stays a single record. day_of_cycle is deliberately excluded:
// the first write of the day owns it.
func (repo *CycleLogRepository) Create(entry *models.CycleLog) error {
	return repo.database.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"phase", "flow_intensity", "notes", "updated_at"}),
	}).Create(entry).Error
}

func (repo *CycleLogRepository) Save(entry *models.CycleLog) error {
	return repo.database.Save(entry).Error
}

func (repo *CycleLogRepository) ListByUserRange(userID string, rangeStart time.Time, rangeEnd time.Time) ([]models.CycleLog, error) {
	logs := make([]models.CycleLog, 0)
	if err := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, rangeStart, rangeEnd).
		Order("date DESC, id DESC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *CycleLogRepository) ListLatestByUser(userID string, limit int) ([]models.CycleLog, error) {
	logs := make([]models.CycleLog, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("date DESC, id DESC").
		Limit(limit).
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
