package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnack     = "snack"
)

var (
	ErrInvalidMealType  = fmt.Errorf("%w: unknown meal type", ErrValidation)
	ErrEmptyDescription = fmt.Errorf("%w: description is required", ErrValidation)
	ErrInvalidCalories  = fmt.Errorf("%w: calories must be a positive number", ErrValidation)
)

// MealLog allows multiple entries per day.
type MealLog struct {
	ID          string    `gorm:"primaryKey"`
	UserID      string    `gorm:"not null;index:idx_meal_user_date"`
	Date        time.Time `gorm:"not null;index:idx_meal_user_date"`
	MealType    string    `gorm:"not null"`
	Description string    `gorm:"not null"`
	Calories    *int
	PhotoURL    string
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewMealLog(userID string, date time.Time, mealType string, description string, calories *int, photoURL string, notes string) (MealLog, error) {
	if !ValidMealType(mealType) {
		return MealLog{}, ErrInvalidMealType
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return MealLog{}, ErrEmptyDescription
	}
	if calories != nil && *calories <= 0 {
		return MealLog{}, ErrInvalidCalories
	}
	return MealLog{
		ID:          uuid.NewString(),
		UserID:      userID,
		Date:        date,
		MealType:    mealType,
		Description: description,
		Calories:    calories,
		PhotoURL:    strings.TrimSpace(photoURL),
		Notes:       strings.TrimSpace(notes),
	}, nil
}

func ValidMealType(value string) bool {
	switch value {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	default:
		return false
	}
}
