package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	DefaultWaterGoal = 8
	DefaultStepsGoal = 10000
)

// DailyGoal tracks water and steps against per-day targets. Water is
// accumulated, steps are overwritten; the asymmetry is part of the contract.
type DailyGoal struct {
	ID           string    `gorm:"primaryKey"`
	UserID       string    `gorm:"not null;uniqueIndex:uidx_goal_user_date"`
	Date         time.Time `gorm:"type:date;not null;uniqueIndex:uidx_goal_user_date"`
	WaterGlasses int       `gorm:"not null;default:0"`
	WaterGoal    int       `gorm:"not null;default:8"`
	Steps        int       `gorm:"not null;default:0"`
	StepsGoal    int       `gorm:"not null;default:10000"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewDailyGoal constructs the default goal record for a day. Targets are
// clamped to a minimum of 1 so progress ratios stay well-defined.
func NewDailyGoal(userID string, day time.Time) DailyGoal {
	return DailyGoal{
		ID:        uuid.NewString(),
		UserID:    userID,
		Date:      day,
		WaterGoal: clampGoal(DefaultWaterGoal),
		StepsGoal: clampGoal(DefaultStepsGoal),
	}
}

// AddWater accumulates glasses on top of the running total.
func (goal *DailyGoal) AddWater(glasses int) {
	goal.WaterGlasses += glasses
}

// SetSteps overwrites the absolute step count for the day.
func (goal *DailyGoal) SetSteps(steps int) {
	goal.Steps = steps
}

func (goal DailyGoal) WaterProgress() float64 {
	return Progress(goal.WaterGlasses, goal.WaterGoal)
}

func (goal DailyGoal) StepsProgress() float64 {
	return Progress(goal.Steps, goal.StepsGoal)
}

// Progress is count/goal clamped to [0,1]. A non-positive goal reports 0
// rather than a non-finite ratio; legacy rows may predate goal clamping.
func Progress(count int, goal int) float64 {
	if goal <= 0 {
		return 0
	}
	ratio := float64(count) / float64(goal)
	if ratio > 1 {
		return 1
	}
	if ratio < 0 {
		return 0
	}
	return ratio
}

func clampGoal(goal int) int {
	if goal < 1 {
		return 1
	}
	return goal
}
