package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/bloom-app/bloom-server/internal/models"
)

var (
	ErrGoalLoadFailed = errors.New("load daily goal failed")
	ErrGoalSaveFailed = errors.New("save daily goal failed")

	ErrInvalidWaterGlasses = fmt.Errorf("%w: glasses must be a positive number", models.ErrValidation)
	ErrInvalidSteps        = fmt.Errorf("%w: steps must not be negative", models.ErrValidation)
)

type DailyGoalRepository interface {
	FindByUserAndDayRange(userID string, dayStart time.Time, dayEnd time.Time) (models.DailyGoal, bool, error)
	Create(entry *models.DailyGoal) error
	Save(entry *models.DailyGoal) error
}

type GoalService struct {
	goals DailyGoalRepository
}

func NewGoalService(goals DailyGoalRepository) *GoalService {
	return &GoalService{goals: goals}
}

// Get returns the day's goal record, creating and persisting the default
// one on first read so later writes always find a row.
func (service *GoalService) Get(userID string, day time.Time, location *time.Location) (models.DailyGoal, error) {
	dayStart, dayEnd := DayRange(day, location)
	existing, found, err := service.goals.FindByUserAndDayRange(userID, dayStart, dayEnd)
	if err != nil {
		return models.DailyGoal{}, ErrGoalLoadFailed
	}
	if found {
		return existing, nil
	}

	created := models.NewDailyGoal(userID, dayStart)
	if err := service.goals.Create(&created); err != nil {
		return models.DailyGoal{}, ErrGoalSaveFailed
	}
	return created, nil
}

// AddWater accumulates glasses onto today's running total.
func (service *GoalService) AddWater(userID string, glasses int, now time.Time, location *time.Location) (models.DailyGoal, error) {
	if glasses <= 0 {
		return models.DailyGoal{}, ErrInvalidWaterGlasses
	}
	goal, err := service.Get(userID, now, location)
	if err != nil {
		return models.DailyGoal{}, err
	}
	goal.AddWater(glasses)
	if err := service.goals.Save(&goal); err != nil {
		return models.DailyGoal{}, ErrGoalSaveFailed
	}
	return goal, nil
}

// SetSteps overwrites today's absolute step count.
func (service *GoalService) SetSteps(userID string, steps int, now time.Time, location *time.Location) (models.DailyGoal, error) {
	if steps < 0 {
		return models.DailyGoal{}, ErrInvalidSteps
	}
	goal, err := service.Get(userID, now, location)
	if err != nil {
		return models.DailyGoal{}, err
	}
	goal.SetSteps(steps)
	if err := service.goals.Save(&goal); err != nil {
		return models.DailyGoal{}, ErrGoalSaveFailed
	}
	return goal, nil
}
