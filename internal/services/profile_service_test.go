package services

import (
	"errors"
	"testing"

	"github.com/bloom-app/bloom-server/internal/models"
)

type stubProfileRepo struct {
	existing    models.UserProfile
	hasExisting bool

	created *models.UserProfile
	saved   *models.UserProfile
	deleted string
}

func (stub *stubProfileRepo) FindByUserID(string) (models.UserProfile, bool, error) {
	return stub.existing, stub.hasExisting, nil
}

func (stub *stubProfileRepo) Create(profile *models.UserProfile) error {
	stub.created = profile
	return nil
}

func (stub *stubProfileRepo) Save(profile *models.UserProfile) error {
	stub.saved = profile
	return nil
}

func (stub *stubProfileRepo) DeleteByUserID(userID string) error {
	stub.deleted = userID
	return nil
}

func TestCompleteOnboardingCreatesProfile(t *testing.T) {
	repo := &stubProfileRepo{}
	service := NewProfileService(repo)

	profile, err := service.CompleteOnboarding("user-1", OnboardingInput{
		Name:        "Ana",
		Email:       "ana@example.com",
		PrimaryGoal: models.GoalFertility,
		Symptoms:    []string{models.ProfileSymptomFatigue},
	})
	if err != nil {
		t.Fatalf("CompleteOnboarding() unexpected error: %v", err)
	}
	if repo.created == nil {
		t.Fatal("expected a create")
	}
	if !profile.OnboardingCompleted {
		t.Fatal("expected onboarding flag set")
	}
}

func TestCompleteOnboardingRepeatIsLastWriteWins(t *testing.T) {
	repo := &stubProfileRepo{
		existing: models.UserProfile{
			ID:                  "profile-1",
			UserID:              "user-1",
			Name:                "Ana",
			Email:               "ana@example.com",
			PrimaryGoal:         models.GoalFertility,
			Symptoms:            []string{models.ProfileSymptomFatigue},
			OnboardingCompleted: true,
		},
		hasExisting: true,
	}
	service := NewProfileService(repo)

	profile, err := service.CompleteOnboarding("user-1", OnboardingInput{
		Name:        "Ana Lima",
		Email:       "ana@example.com",
		PrimaryGoal: models.GoalMental,
	})
	if err != nil {
		t.Fatalf("CompleteOnboarding() unexpected error: %v", err)
	}
	if repo.saved == nil || repo.created != nil {
		t.Fatal("expected the existing profile to be updated in place")
	}
	if profile.ID != "profile-1" {
		t.Fatalf("expected profile identity kept, got %q", profile.ID)
	}
	if profile.PrimaryGoal != models.GoalMental || profile.Name != "Ana Lima" {
		t.Fatalf("expected answers overwritten, got %+v", profile)
	}
	if !profile.OnboardingCompleted {
		t.Fatal("expected onboarding flag to stay set")
	}
}

func TestCompleteOnboardingRejectsUnknownGoal(t *testing.T) {
	service := NewProfileService(&stubProfileRepo{})

	_, err := service.CompleteOnboarding("user-1", OnboardingInput{
		Name:        "Ana",
		Email:       "ana@example.com",
		PrimaryGoal: "world-domination",
	})
	if !errors.Is(err, models.ErrInvalidPrimaryGoal) {
		t.Fatalf("expected ErrInvalidPrimaryGoal, got %v", err)
	}
}

func TestGetProfileNotFound(t *testing.T) {
	service := NewProfileService(&stubProfileRepo{})

	_, err := service.Get("user-1")
	if !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestSyncFromProviderKeepsOnboardingAnswers(t *testing.T) {
	repo := &stubProfileRepo{
		existing: models.UserProfile{
			ID:                  "profile-1",
			UserID:              "user-1",
			Name:                "Ana",
			Email:               "old@example.com",
			PrimaryGoal:         models.GoalSkin,
			OnboardingCompleted: true,
		},
		hasExisting: true,
	}
	service := NewProfileService(repo)

	if err := service.SyncFromProvider("user-1", "new@example.com", ""); err != nil {
		t.Fatalf("SyncFromProvider() unexpected error: %v", err)
	}
	if repo.saved == nil {
		t.Fatal("expected a save")
	}
	if repo.saved.Email != "new@example.com" {
		t.Fatalf("expected email refreshed, got %q", repo.saved.Email)
	}
	if repo.saved.Name != "Ana" || repo.saved.PrimaryGoal != models.GoalSkin || !repo.saved.OnboardingCompleted {
		t.Fatalf("expected answers untouched, got %+v", repo.saved)
	}
}

func TestSyncFromProviderCreatesSkeletonProfile(t *testing.T) {
	repo := &stubProfileRepo{}
	service := NewProfileService(repo)

	if err := service.SyncFromProvider("user-1", "ana@example.com", "Ana"); err != nil {
		t.Fatalf("SyncFromProvider() unexpected error: %v", err)
	}
	if repo.created == nil {
		t.Fatal("expected a skeleton profile")
	}
	if repo.created.OnboardingCompleted {
		t.Fatal("expected skeleton profile to not be onboarded")
	}
}
