package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	MoodHappy     = "happy"
	MoodEnergetic = "energetic"
	MoodCalm      = "calm"
	MoodTired     = "tired"
	MoodAnxious   = "anxious"
	MoodBloated   = "bloated"
	MoodStressed  = "stressed"
	MoodSad       = "sad"
)

var (
	ErrInvalidMood        = fmt.Errorf("%w: unknown mood", ErrValidation)
	ErrInvalidEnergyLevel = fmt.Errorf("%w: energy level must be between 1 and 10", ErrValidation)
)

type MoodLog struct {
	ID          string    `gorm:"primaryKey"`
	UserID      string    `gorm:"not null;uniqueIndex:uidx_mood_user_date"`
	Date        time.Time `gorm:"type:date;not null;uniqueIndex:uidx_mood_user_date"`
	Mood        string    `gorm:"not null"`
	EnergyLevel int       `gorm:"not null"`
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewMoodLog(userID string, day time.Time, mood string, energyLevel int, notes string) (MoodLog, error) {
	if !ValidMood(mood) {
		return MoodLog{}, ErrInvalidMood
	}
	if energyLevel < 1 || energyLevel > 10 {
		return MoodLog{}, ErrInvalidEnergyLevel
	}
	return MoodLog{
		ID:          uuid.NewString(),
		UserID:      userID,
		Date:        day,
		Mood:        mood,
		EnergyLevel: energyLevel,
		Notes:       strings.TrimSpace(notes),
	}, nil
}

func ValidMood(value string) bool {
	switch value {
	case MoodHappy, MoodEnergetic, MoodCalm, MoodTired, MoodAnxious, MoodBloated, MoodStressed, MoodSad:
		return true
	default:
		return false
	}
}
