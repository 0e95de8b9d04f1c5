package services

import (
	"errors"
	"time"

	"github.com/bloom-app/bloom-server/internal/models"
)

var (
	ErrMealLoadFailed = errors.New("load meal logs failed")
	ErrMealSaveFailed = errors.New("save meal log failed")
)

type MealEntryInput struct {
	Date        time.Time
	MealType    string
	Description string
	Calories    *int
	PhotoURL    string
	Notes       string
}

type MealLogRepository interface {
	Create(entry *models.MealLog) error
	ListByUserDayRange(userID string, dayStart time.Time, dayEnd time.Time) ([]models.MealLog, error)
}

type MealService struct {
	logs MealLogRepository
}

func NewMealService(logs MealLogRepository) *MealService {
	return &MealService{logs: logs}
}

// Log appends a meal entry. Meals are not day-singletons.
func (service *MealService) Log(userID string, input MealEntryInput) (models.MealLog, error) {
	entry, err := models.NewMealLog(userID, input.Date, input.MealType, input.Description, input.Calories, input.PhotoURL, input.Notes)
	if err != nil {
		return models.MealLog{}, err
	}
	if err := service.logs.Create(&entry); err != nil {
		return models.MealLog{}, ErrMealSaveFailed
	}
	return entry, nil
}

// ByDate returns the day's entries, oldest first.
func (service *MealService) ByDate(userID string, day time.Time, location *time.Location) ([]models.MealLog, error) {
	dayStart, dayEnd := DayRange(day, location)
	logs, err := service.logs.ListByUserDayRange(userID, dayStart, dayEnd)
	if err != nil {
		return nil, ErrMealLoadFailed
	}
	return logs, nil
}
