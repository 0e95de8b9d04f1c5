package api

import (
	"errors"
	"time"
)

var errBadDate = errors.New("date must be RFC3339")

type logCycleRequest struct {
	Date          string  `json:"date"`
	Phase         string  `json:"phase"`
	DayOfCycle    int     `json:"dayOfCycle"`
	FlowIntensity *string `json:"flowIntensity"`
	Notes         *string `json:"notes"`
}

type logMoodRequest struct {
	Date        string `json:"date"`
	Mood        string `json:"mood"`
	EnergyLevel int    `json:"energyLevel"`
	Notes       string `json:"notes"`
}

type logWeightRequest struct {
	Date   string  `json:"date"`
	Weight float64 `json:"weight"`
	Unit   string  `json:"unit"`
	Notes  string  `json:"notes"`
}

type addWaterRequest struct {
	Glasses int `json:"glasses"`
}

type updateStepsRequest struct {
	Steps int `json:"steps"`
}

type logMealRequest struct {
	Date        string `json:"date"`
	MealType    string `json:"mealType"`
	Description string `json:"description"`
	Calories    *int   `json:"calories"`
	PhotoURL    string `json:"photoUrl"`
	Notes       string `json:"notes"`
}

type logSymptomRequest struct {
	Date        string `json:"date"`
	SymptomType string `json:"symptomType"`
	Severity    int    `json:"severity"`
	Notes       string `json:"notes"`
}

type onboardingRequest struct {
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	PrimaryGoal string   `json:"primaryGoal"`
	Symptoms    []string `json:"symptoms"`
}

type createUserRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// parseOptionalDate interprets an absent date as "now"; the services
// normalize to the calendar day themselves.
func parseOptionalDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Now(), nil
	}
	return parseRequiredDate(raw)
}

func parseRequiredDate(raw string) (time.Time, error) {
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, errBadDate
	}
	return parsed, nil
}
