package models

import "time"

const (
	InsightNutrition    = "nutrition"
	InsightLifestyle    = "lifestyle"
	InsightSymptoms     = "symptoms"
	InsightCycle        = "cycle"
	InsightMentalHealth = "mental_health"
)

// Insight is read-only editorial content; rows are seeded by migration and
// never mutated by the API.
type Insight struct {
	ID              string `gorm:"primaryKey"`
	Title           string `gorm:"not null"`
	Summary         string `gorm:"not null"`
	Content         string `gorm:"not null"`
	Category        string `gorm:"not null"`
	ImageURL        string
	ReadTimeMinutes int `gorm:"not null;default:1"`
	PublishedAt     time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func ValidInsightCategory(value string) bool {
	switch value {
	case InsightNutrition, InsightLifestyle, InsightSymptoms, InsightCycle, InsightMentalHealth:
		return true
	default:
		return false
	}
}
