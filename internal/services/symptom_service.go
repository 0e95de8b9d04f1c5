package services

import (
	"errors"
	"time"

	"github.com/bloom-app/bloom-server/internal/models"
)

var (
	ErrSymptomLoadFailed = errors.New("load symptom logs failed")
	ErrSymptomSaveFailed = errors.New("save symptom log failed")
)

type SymptomEntryInput struct {
	Date        time.Time
	SymptomType string
	Severity    int
	Notes       string
}

type SymptomLogRepository interface {
	Create(entry *models.SymptomLog) error
	ListByUserDayRange(userID string, dayStart time.Time, dayEnd time.Time) ([]models.SymptomLog, error)
}

type SymptomService struct {
	logs SymptomLogRepository
}

func NewSymptomService(logs SymptomLogRepository) *SymptomService {
	return &SymptomService{logs: logs}
}

// Log appends a symptom entry. Symptoms are not day-singletons: the full
// timestamp is kept and a day may hold any number of entries.
func (service *SymptomService) Log(userID string, input SymptomEntryInput) (models.SymptomLog, error) {
	entry, err := models.NewSymptomLog(userID, input.Date, input.SymptomType, input.Severity, input.Notes)
	if err != nil {
		return models.SymptomLog{}, err
	}
	if err := service.logs.Create(&entry); err != nil {
		return models.SymptomLog{}, ErrSymptomSaveFailed
	}
	return entry, nil
}

// ByDate returns the day's entries, oldest first.
func (service *SymptomService) ByDate(userID string, day time.Time, location *time.Location) ([]models.SymptomLog, error) {
	dayStart, dayEnd := DayRange(day, location)
	logs, err := service.logs.ListByUserDayRange(userID, dayStart, dayEnd)
	if err != nil {
		return nil, ErrSymptomLoadFailed
	}
	return logs, nil
}
