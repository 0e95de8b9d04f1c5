package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	PhaseMenstrual  = "menstrual"
	PhaseFollicular = "follicular"
	PhaseOvulation  = "ovulation"
	PhaseLuteal     = "luteal"
)

const (
	FlowLight    = "light"
	FlowMedium   = "medium"
	FlowHeavy    = "heavy"
	FlowSpotting = "spotting"
)

const MaxDayOfCycle = 45

var (
	ErrInvalidPhase         = fmt.Errorf("%w: unknown cycle phase", ErrValidation)
	ErrInvalidFlowIntensity = fmt.Errorf("%w: unknown flow intensity", ErrValidation)
	ErrInvalidDayOfCycle    = fmt.Errorf("%w: day of cycle must be between 1 and %d", ErrValidation, MaxDayOfCycle)
)

// CycleLog is a day-singleton: the composite unique index makes the
// (user, calendar day) pair a real storage invariant, so concurrent
// first writes collapse into one row instead of racing.
type CycleLog struct {
	ID            string    `gorm:"primaryKey"`
	UserID        string    `gorm:"not null;uniqueIndex:uidx_cycle_user_date"`
	Date          time.Time `gorm:"type:date;not null;uniqueIndex:uidx_cycle_user_date"`
	Phase         string    `gorm:"not null"`
	DayOfCycle    int       `gorm:"not null"`
	FlowIntensity string    `gorm:"not null;default:''"`
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewCycleLog validates and constructs a log for the given day start.
// An empty flowIntensity means "not recorded".
func NewCycleLog(userID string, day time.Time, phase string, dayOfCycle int, flowIntensity string, notes string) (CycleLog, error) {
	if !ValidCyclePhase(phase) {
		return CycleLog{}, ErrInvalidPhase
	}
	if dayOfCycle < 1 || dayOfCycle > MaxDayOfCycle {
		return CycleLog{}, ErrInvalidDayOfCycle
	}
	if flowIntensity != "" && !ValidFlowIntensity(flowIntensity) {
		return CycleLog{}, ErrInvalidFlowIntensity
	}
	return CycleLog{
		ID:            uuid.NewString(),
		UserID:        userID,
		Date:          day,
		Phase:         phase,
		DayOfCycle:    dayOfCycle,
		FlowIntensity: flowIntensity,
		Notes:         strings.TrimSpace(notes),
	}, nil
}

func ValidCyclePhase(value string) bool {
	switch value {
	case PhaseMenstrual, PhaseFollicular, PhaseOvulation, PhaseLuteal:
		return true
	default:
		return false
	}
}

func ValidFlowIntensity(value string) bool {
	switch value {
	case FlowLight, FlowMedium, FlowHeavy, FlowSpotting:
		return true
	default:
		return false
	}
}
