package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	SymptomCramps           = "cramps"
	SymptomHeadache         = "headache"
	SymptomBloating         = "bloating"
	SymptomFatigue          = "fatigue"
	SymptomAcne             = "acne"
	SymptomBreastTenderness = "breast_tenderness"
	SymptomNausea           = "nausea"
	SymptomBackPain         = "back_pain"
	SymptomInsomnia         = "insomnia"
	SymptomAnxiety          = "anxiety"
	SymptomIrritability     = "irritability"
	SymptomCravings         = "cravings"
	SymptomHotFlashes       = "hot_flashes"
	SymptomHairLoss         = "hair_loss"
	SymptomOther            = "other"
)

var (
	ErrInvalidSymptomType = fmt.Errorf("%w: unknown symptom type", ErrValidation)
	ErrInvalidSeverity    = fmt.Errorf("%w: severity must be between 1 and 5", ErrValidation)
)

// SymptomLog is not a day-singleton: several symptoms may be logged for the
// same day, so the date keeps its full timestamp and carries no unique index.
type SymptomLog struct {
	ID          string    `gorm:"primaryKey"`
	UserID      string    `gorm:"not null;index:idx_symptom_user_date"`
	Date        time.Time `gorm:"not null;index:idx_symptom_user_date"`
	SymptomType string    `gorm:"not null"`
	Severity    int       `gorm:"not null"`
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewSymptomLog(userID string, date time.Time, symptomType string, severity int, notes string) (SymptomLog, error) {
	if !ValidSymptomType(symptomType) {
		return SymptomLog{}, ErrInvalidSymptomType
	}
	if severity < 1 || severity > 5 {
		return SymptomLog{}, ErrInvalidSeverity
	}
	return SymptomLog{
		ID:          uuid.NewString(),
		UserID:      userID,
		Date:        date,
		SymptomType: symptomType,
		Severity:    severity,
		Notes:       strings.TrimSpace(notes),
	}, nil
}

func ValidSymptomType(value string) bool {
	switch value {
	case SymptomCramps, SymptomHeadache, SymptomBloating, SymptomFatigue, SymptomAcne,
		SymptomBreastTenderness, SymptomNausea, SymptomBackPain, SymptomInsomnia, SymptomAnxiety,
		SymptomIrritability, SymptomCravings, SymptomHotFlashes, SymptomHairLoss, SymptomOther:
		return true
	default:
		return false
	}
}
