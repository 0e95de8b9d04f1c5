package services

import (
	"errors"
	"strings"
	"time"

	"github.com/bloom-app/bloom-server/internal/models"
)

var (
	ErrWeightLoadFailed = errors.New("load weight log failed")
	ErrWeightSaveFailed = errors.New("save weight log failed")
)

type WeightEntryInput struct {
	Date   time.Time
	Weight float64
	Unit   string
	Notes  string
}

type WeightLogRepository interface {
	FindByUserAndDayRange(userID string, dayStart time.Time, dayEnd time.Time) (models.WeightLog, bool, error)
	Create(entry *models.WeightLog) error
	Save(entry *models.WeightLog) error
	ListByUserRange(userID string, rangeStart time.Time, rangeEnd time.Time) ([]models.WeightLog, error)
}

type WeightService struct {
	logs WeightLogRepository
}

func NewWeightService(logs WeightLogRepository) *WeightService {
	return &WeightService{logs: logs}
}

// Log reconciles the input onto the user's record for the input's calendar
// day. A repeat write replaces every recorded field but keeps the row.
func (service *WeightService) Log(userID string, input WeightEntryInput, location *time.Location) (models.WeightLog, error) {
	dayStart, dayEnd := DayRange(input.Date, location)

	candidate, err := models.NewWeightLog(userID, dayStart, input.Weight, input.Unit, input.Notes)
	if err != nil {
		return models.WeightLog{}, err
	}

	existing, found, err := service.logs.FindByUserAndDayRange(userID, dayStart, dayEnd)
	if err != nil {
		return models.WeightLog{}, ErrWeightLoadFailed
	}
	if found {
		existing.Weight = input.Weight
		existing.Unit = input.Unit
		existing.Notes = strings.TrimSpace(input.Notes)
		if err := service.logs.Save(&existing); err != nil {
			return models.WeightLog{}, ErrWeightSaveFailed
		}
		return existing, nil
	}

	if err := service.logs.Create(&candidate); err != nil {
		return models.WeightLog{}, ErrWeightSaveFailed
	}
	return candidate, nil
}

// History returns logs whose day falls inside [startDate, endDate], newest
// first. An inverted range yields an empty slice.
func (service *WeightService) History(userID string, startDate time.Time, endDate time.Time, location *time.Location) ([]models.WeightLog, error) {
	rangeStart, _ := DayRange(startDate, location)
	_, rangeEnd := DayRange(endDate, location)
	logs, err := service.logs.ListByUserRange(userID, rangeStart, rangeEnd)
	if err != nil {
		return nil, ErrWeightLoadFailed
	}
	return logs, nil
}
