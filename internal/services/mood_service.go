package services

import (
	"errors"
	"strings"
	"time"

	"github.com/bloom-app/bloom-server/internal/models"
)

var (
	ErrMoodLoadFailed = errors.New("load mood log failed")
	ErrMoodSaveFailed = errors.New("save mood log failed")
)

type MoodEntryInput struct {
	Date        time.Time
	Mood        string
	EnergyLevel int
	Notes       string
}

type MoodLogRepository interface {
	FindByUserAndDayRange(userID string, dayStart time.Time, dayEnd time.Time) (models.MoodLog, bool, error)
	Create(entry *models.MoodLog) error
	Save(entry *models.MoodLog) error
}

type MoodService struct {
	logs MoodLogRepository
}

func NewMoodService(logs MoodLogRepository) *MoodService {
	return &MoodService{logs: logs}
}

// Log reconciles the input onto the user's record for the input's calendar
// day. A repeat write replaces every recorded field but keeps the row.
func (service *MoodService) Log(userID string, input MoodEntryInput, location *time.Location) (models.MoodLog, error) {
	dayStart, dayEnd := DayRange(input.Date, location)

	candidate, err := models.NewMoodLog(userID, dayStart, input.Mood, input.EnergyLevel, input.Notes)
	if err != nil {
		return models.MoodLog{}, err
	}

	existing, found, err := service.logs.FindByUserAndDayRange(userID, dayStart, dayEnd)
	if err != nil {
		return models.MoodLog{}, ErrMoodLoadFailed
	}
	if found {
		existing.Mood = input.Mood
		existing.EnergyLevel = input.EnergyLevel
		existing.Notes = strings.TrimSpace(input.Notes)
		if err := service.logs.Save(&existing); err != nil {
			return models.MoodLog{}, ErrMoodSaveFailed
		}
		return existing, nil
	}

	if err := service.logs.Create(&candidate); err != nil {
		return models.MoodLog{}, ErrMoodSaveFailed
	}
	return candidate, nil
}
