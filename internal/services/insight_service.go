package services

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bloom-app/bloom-server/internal/models"
)

const DefaultInsightListLimit = 20

var (
	ErrInsightNotFound   = errors.New("no insight available")
	ErrInsightLoadFailed = errors.New("load insights failed")

	ErrInvalidInsightCategory = fmt.Errorf("%w: unknown insight category", models.ErrValidation)
)

type InsightRepository interface {
	ListPublished() ([]models.Insight, error)
	ListByCategory(category string, limit int, offset int) ([]models.Insight, error)
}

// InsightService serves editorial content. The daily pick is a pure function
// of the calendar day: days since epoch modulo the published count, over the
// repository's stable newest-first ordering, so every replica and every
// request within a day agrees without coordination. A small cache avoids
// re-reading the catalogue on every request; the rotation job refreshes it
// at local midnight.
type InsightService struct {
	insights InsightRepository

	mu        sync.Mutex
	cachedDay time.Time
	cached    models.Insight
	hasCached bool
}

func NewInsightService(insights InsightRepository) *InsightService {
	return &InsightService{insights: insights}
}

// Daily returns the day's featured insight.
func (service *InsightService) Daily(now time.Time, location *time.Location) (models.Insight, error) {
	dayStart := DateAtLocation(now, location)

	service.mu.Lock()
	if service.hasCached && service.cachedDay.Equal(dayStart) {
		cached := service.cached
		service.mu.Unlock()
		return cached, nil
	}
	service.mu.Unlock()

	pick, err := service.pickForDay(dayStart)
	if err != nil {
		return models.Insight{}, err
	}

	service.mu.Lock()
	service.cachedDay = dayStart
	service.cached = pick
	service.hasCached = true
	service.mu.Unlock()

	return pick, nil
}

// Refresh recomputes the cached pick for the given instant's day.
func (service *InsightService) Refresh(now time.Time, location *time.Location) error {
	dayStart := DateAtLocation(now, location)
	pick, err := service.pickForDay(dayStart)
	if err != nil {
		return err
	}

	service.mu.Lock()
	service.cachedDay = dayStart
	service.cached = pick
	service.hasCached = true
	service.mu.Unlock()

	return nil
}

func (service *InsightService) pickForDay(dayStart time.Time) (models.Insight, error) {
	published, err := service.insights.ListPublished()
	if err != nil {
		return models.Insight{}, ErrInsightLoadFailed
	}
	if len(published) == 0 {
		return models.Insight{}, ErrInsightNotFound
	}

	daysSinceEpoch := dayStart.Unix() / 86400
	index := int(daysSinceEpoch % int64(len(published)))
	if index < 0 {
		index += len(published)
	}
	return published[index], nil
}

// List returns published insights, optionally filtered by category. A
// non-positive limit falls back to the default of 20.
func (service *InsightService) List(category string, limit int, offset int) ([]models.Insight, error) {
	if category != "" && !models.ValidInsightCategory(category) {
		return nil, ErrInvalidInsightCategory
	}
	if limit <= 0 {
		limit = DefaultInsightListLimit
	}
	if offset < 0 {
		offset = 0
	}
	insights, err := service.insights.ListByCategory(category, limit, offset)
	if err != nil {
		return nil, ErrInsightLoadFailed
	}
	return insights, nil
}
