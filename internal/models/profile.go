package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	GoalFertility = "fertility"
	GoalWeight    = "weight"
	GoalSkin      = "skin"
	GoalMental    = "mental"
)

const (
	ProfileSymptomIrregular = "irregular"
	ProfileSymptomFatigue   = "fatigue"
	ProfileSymptomAcne      = "acne"
	ProfileSymptomMood      = "mood"
	ProfileSymptomCravings  = "cravings"
)

var (
	ErrInvalidPrimaryGoal    = fmt.Errorf("%w: unknown primary goal", ErrValidation)
	ErrInvalidProfileSymptom = fmt.Errorf("%w: unknown profile symptom", ErrValidation)
	ErrInvalidEmail          = fmt.Errorf("%w: email is required", ErrValidation)
	ErrEmptyName             = fmt.Errorf("%w: name is required", ErrValidation)
)

// UserProfile mirrors one identity-provider user. OnboardingCompleted flips
// false -> true exactly once and never back.
type UserProfile struct {
	ID                  string   `gorm:"primaryKey"`
	UserID              string   `gorm:"uniqueIndex;not null"`
	Name                string   `gorm:"not null"`
	Email               string   `gorm:"not null"`
	PrimaryGoal         string   `gorm:"not null"`
	Symptoms            []string `gorm:"serializer:json"`
	OnboardingCompleted bool     `gorm:"not null;default:false"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func NewUserProfile(userID string, name string, email string, primaryGoal string, symptoms []string) (UserProfile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return UserProfile{}, ErrEmptyName
	}
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return UserProfile{}, ErrInvalidEmail
	}
	if !ValidPrimaryGoal(primaryGoal) {
		return UserProfile{}, ErrInvalidPrimaryGoal
	}
	for _, symptom := range symptoms {
		if !ValidProfileSymptom(symptom) {
			return UserProfile{}, ErrInvalidProfileSymptom
		}
	}
	if symptoms == nil {
		symptoms = []string{}
	}
	return UserProfile{
		ID:          uuid.NewString(),
		UserID:      userID,
		Name:        name,
		Email:       email,
		PrimaryGoal: primaryGoal,
		Symptoms:    symptoms,
	}, nil
}

// CompleteOnboarding flips the flag. Idempotent: completing twice is a no-op
// on the flag itself.
func (profile *UserProfile) CompleteOnboarding() {
	profile.OnboardingCompleted = true
}

func ValidPrimaryGoal(value string) bool {
	switch value {
	case GoalFertility, GoalWeight, GoalSkin, GoalMental:
		return true
	default:
		return false
	}
}

func ValidProfileSymptom(value string) bool {
	switch value {
	case ProfileSymptomIrregular, ProfileSymptomFatigue, ProfileSymptomAcne, ProfileSymptomMood, ProfileSymptomCravings:
		return true
	default:
		return false
	}
}
