package services

import (
	"errors"
	"strings"
	"time"

	"github.com/bloom-app/bloom-server/internal/models"
)

const DefaultLatestCycleLimit = 30

var (
	ErrCycleLoadFailed = errors.New("load cycle log failed")
	ErrCycleSaveFailed = errors.New("save cycle log failed")
)

// CycleEntryInput carries one day's cycle observation. Nil pointer fields
// were absent from the request and must not disturb stored values on merge.
type CycleEntryInput struct {
	Date          time.Time
	Phase         string
	DayOfCycle    int
	FlowIntensity *string
	Notes         *string
}

type CycleLogRepository interface {
	FindByUserAndDayRange(userID string, dayStart time.Time, dayEnd time.Time) (models.CycleLog, bool, error)
	Create(entry *models.CycleLog) error
	Save(entry *models.CycleLog) error
	ListByUserRange(userID string, rangeStart time.Time, rangeEnd time.Time) ([]models.CycleLog, error)
	ListLatestByUser(userID string, limit int) ([]models.CycleLog, error)
}

type CycleService struct {
	logs CycleLogRepository
}

func NewCycleService(logs CycleLogRepository) *CycleService {
	return &CycleService{logs: logs}
}

// Log reconciles the input onto the user's record for the input's calendar
// day. The day's first write owns dayOfCycle; later writes merge phase
// unconditionally and flowIntensity/notes only when supplied.
func (service *CycleService) Log(userID string, input CycleEntryInput, location *time.Location) (models.CycleLog, error) {
	dayStart, dayEnd := DayRange(input.Date, location)

	flowIntensity := ""
	if input.FlowIntensity != nil {
		flowIntensity = *input.FlowIntensity
	}
	notes := ""
	if input.Notes != nil {
		notes = *input.Notes
	}
	candidate, err := models.NewCycleLog(userID, dayStart, input.Phase, input.DayOfCycle, flowIntensity, notes)
	if err != nil {
		return models.CycleLog{}, err
	}

	existing, found, err := service.logs.FindByUserAndDayRange(userID, dayStart, dayEnd)
	if err != nil {
		return models.CycleLog{}, ErrCycleLoadFailed
	}
	if found {
		existing.Phase = input.Phase
		if input.FlowIntensity != nil {
			existing.FlowIntensity = *input.FlowIntensity
		}
		if input.Notes != nil {
			existing.Notes = strings.TrimSpace(*input.Notes)
		}
		if err := service.logs.Save(&existing); err != nil {
			return models.CycleLog{}, ErrCycleSaveFailed
		}
		return existing, nil
	}

	if err := service.logs.Create(&candidate); err != nil {
		return models.CycleLog{}, ErrCycleSaveFailed
	}
	return candidate, nil
}

// History returns logs whose day falls inside [startDate, endDate], newest
// first. An inverted range yields an empty slice.
func (service *CycleService) History(userID string, startDate time.Time, endDate time.Time, location *time.Location) ([]models.CycleLog, error) {
	rangeStart, _ := DayRange(startDate, location)
	_, rangeEnd := DayRange(endDate, location)
	logs, err := service.logs.ListByUserRange(userID, rangeStart, rangeEnd)
	if err != nil {
		return nil, ErrCycleLoadFailed
	}
	return logs, nil
}

// Latest returns the most recent logs, newest first. A non-positive limit
// falls back to the default of 30.
func (service *CycleService) Latest(userID string, limit int) ([]models.CycleLog, error) {
	if limit <= 0 {
		limit = DefaultLatestCycleLimit
	}
	logs, err := service.logs.ListLatestByUser(userID, limit)
	if err != nil {
		return nil, ErrCycleLoadFailed
	}
	return logs, nil
}
