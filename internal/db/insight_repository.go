package db

import (
	"github.com/bloom-app/bloom-server/internal/models"
	"gorm.io/gorm"
)

type InsightRepository struct {
	database *gorm.DB
}

func NewInsightRepository(database *gorm.DB) *InsightRepository {
	return &InsightRepository{database: database}
}

// ListPublished returns every published insight in a stable order, newest
// first. The ordering is what makes the daily rotation reproducible.
func (repo *InsightRepository) ListPublished() ([]models.Insight, error) {
	insights := make([]models.Insight, 0)
	if err := repo.database.
		Where("published_at IS NOT NULL").
		Order("published_at DESC, id ASC").
		Find(&insights).Error; err != nil {
		return nil, err
	}
	return insights, nil
}

func (repo *InsightRepository) ListByCategory(category string, limit int, offset int) ([]models.Insight, error) {
	query := repo.database.Where("published_at IS NOT NULL")
	if category != "" {
		query = query.Where("category = ?", category)
	}
	insights := make([]models.Insight, 0)
	if err := query.
		Order("published_at DESC, id ASC").
		Limit(limit).
		Offset(offset).
		Find(&insights).Error; err != nil {
		return nil, err
	}
	return insights, nil
}
