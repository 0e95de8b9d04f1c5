package services

import (
	"errors"
	"strings"

	"github.com/bloom-app/bloom-server/internal/models"
	"github.com/google/uuid"
)

var (
	ErrProfileNotFound   = errors.New("profile not found")
	ErrProfileLoadFailed = errors.New("load profile failed")
	ErrProfileSaveFailed = errors.New("save profile failed")
)

type OnboardingInput struct {
	Name        string
	Email       string
	PrimaryGoal string
	Symptoms    []string
}

type ProfileRepository interface {
	FindByUserID(userID string) (models.UserProfile, bool, error)
	Create(profile *models.UserProfile) error
	Save(profile *models.UserProfile) error
	DeleteByUserID(userID string) error
}

type ProfileService struct {
	profiles ProfileRepository
}

func NewProfileService(profiles ProfileRepository) *ProfileService {
	return &ProfileService{profiles: profiles}
}

func (service *ProfileService) Get(userID string) (models.UserProfile, error) {
	profile, found, err := service.profiles.FindByUserID(userID)
	if err != nil {
		return models.UserProfile{}, ErrProfileLoadFailed
	}
	if !found {
		return models.UserProfile{}, ErrProfileNotFound
	}
	return profile, nil
}

// CompleteOnboarding records the questionnaire answers and marks the profile
// onboarded. Repeats are last-write-wins on the answers; the onboarded flag
// never flips back.
func (service *ProfileService) CompleteOnboarding(userID string, input OnboardingInput) (models.UserProfile, error) {
	candidate, err := models.NewUserProfile(userID, input.Name, input.Email, input.PrimaryGoal, input.Symptoms)
	if err != nil {
		return models.UserProfile{}, err
	}
	candidate.CompleteOnboarding()

	existing, found, err := service.profiles.FindByUserID(userID)
	if err != nil {
		return models.UserProfile{}, ErrProfileLoadFailed
	}
	if found {
		existing.Name = candidate.Name
		existing.Email = candidate.Email
		existing.PrimaryGoal = candidate.PrimaryGoal
		existing.Symptoms = candidate.Symptoms
		existing.CompleteOnboarding()
		if err := service.profiles.Save(&existing); err != nil {
			return models.UserProfile{}, ErrProfileSaveFailed
		}
		return existing, nil
	}

	if err := service.profiles.Create(&candidate); err != nil {
		return models.UserProfile{}, ErrProfileSaveFailed
	}
	return candidate, nil
}

// SyncFromProvider upserts the identity fields pushed by the provider's
// webhook. The questionnaire answers and the onboarded flag are untouched
// for an existing profile.
func (service *ProfileService) SyncFromProvider(userID string, email string, name string) error {
	email = strings.TrimSpace(email)
	name = strings.TrimSpace(name)

	existing, found, err := service.profiles.FindByUserID(userID)
	if err != nil {
		return ErrProfileLoadFailed
	}
	if found {
		if email != "" {
			existing.Email = email
		}
		if name != "" {
			existing.Name = name
		}
		if err := service.profiles.Save(&existing); err != nil {
			return ErrProfileSaveFailed
		}
		return nil
	}

	// A provider push can precede onboarding. Park the identity fields on a
	// skeleton profile so the questionnaire later merges onto it; constructor
	// validation is skipped because provider payloads may omit either field.
	skeleton := models.UserProfile{
		ID:       uuid.NewString(),
		UserID:   userID,
		Name:     name,
		Email:    email,
		Symptoms: []string{},
	}
	if err := service.profiles.Create(&skeleton); err != nil {
		return ErrProfileSaveFailed
	}
	return nil
}

// DeleteByUserID removes the profile; deleting an absent profile is a no-op.
func (service *ProfileService) DeleteByUserID(userID string) error {
	if err := service.profiles.DeleteByUserID(userID); err != nil {
		return ErrProfileSaveFailed
	}
	return nil
}
