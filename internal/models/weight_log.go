package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	UnitKg  = "kg"
	UnitLbs = "lbs"
)

// PoundsToKg converts lbs to kg. Full precision, no rounding.
const PoundsToKg = 0.453592

var (
	ErrInvalidWeight     = fmt.Errorf("%w: weight must be a positive number", ErrValidation)
	ErrInvalidWeightUnit = fmt.Errorf("%w: unit must be kg or lbs", ErrValidation)
)

type WeightLog struct {
	ID        string    `gorm:"primaryKey"`
	UserID    string    `gorm:"not null;uniqueIndex:uidx_weight_user_date"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:uidx_weight_user_date"`
	Weight    float64   `gorm:"not null"`
	Unit      string    `gorm:"not null"`
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewWeightLog(userID string, day time.Time, weight float64, unit string, notes string) (WeightLog, error) {
	if weight <= 0 {
		return WeightLog{}, ErrInvalidWeight
	}
	if unit != UnitKg && unit != UnitLbs {
		return WeightLog{}, ErrInvalidWeightUnit
	}
	return WeightLog{
		ID:     uuid.NewString(),
		UserID: userID,
		Date:   day,
		Weight: weight,
		Unit:   unit,
		Notes:  strings.TrimSpace(notes),
	}, nil
}

// WeightInKg returns the measurement normalized to kilograms.
func (log WeightLog) WeightInKg() float64 {
	if log.Unit == UnitKg {
		return log.Weight
	}
	return log.Weight * PoundsToKg
}
