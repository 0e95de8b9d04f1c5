package db

import (
	"time"

	"github.com/bloom-app/bloom-server/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DailyGoalRepository struct {
	database *gorm.DB
}

func NewDailyGoalRepository(database *gorm.DB) *DailyGoalRepository {
	return &DailyGoalRepository{database: database}
}

func (repo *DailyGoalRepository) FindByUserAndDayRange(userID string, dayStart time.Time, dayEnd time.Time) (models.DailyGoal, bool, error) {
	entry := models.DailyGoal{}
	result := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart, dayEnd).
		Order("date DESC, id DESC").
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.DailyGoal{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.DailyGoal{}, false, nil
	}
	return entry, true, nil
}

// Create inserts the day's goal record. A concurrent first write for the
// same (user, date) folds onto the winner's row instead of failing.
func (repo *DailyGoalRepository) Create(entry *models.DailyGoal) error {
	return repo.database.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"water_glasses", "water_goal", "steps", "steps_goal", "updated_at"}),
	}).Create(entry).Error
}

func (repo *DailyGoalRepository) Save(entry *models.DailyGoal) error {
	return repo.database.Save(entry).Error
}
