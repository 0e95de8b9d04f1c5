package services

import (
	"errors"
	"testing"
	"time"

	"github.com/bloom-app/bloom-server/internal/models"
)

type stubInsightRepo struct {
	published []models.Insight
	listCalls int
}

func (stub *stubInsightRepo) ListPublished() ([]models.Insight, error) {
	stub.listCalls++
	return stub.published, nil
}

func (stub *stubInsightRepo) ListByCategory(category string, limit int, offset int) ([]models.Insight, error) {
	if offset >= len(stub.published) {
		return []models.Insight{}, nil
	}
	page := stub.published[offset:]
	if limit < len(page) {
		page = page[:limit]
	}
	return page, nil
}

func seedInsights(count int) []models.Insight {
	insights := make([]models.Insight, 0, count)
	for index := 0; index < count; index++ {
		insights = append(insights, models.Insight{
			ID:       string(rune('a' + index)),
			Category: models.InsightCycle,
		})
	}
	return insights
}

func TestDailyInsightIsStableWithinADay(t *testing.T) {
	repo := &stubInsightRepo{published: seedInsights(3)}
	service := NewInsightService(repo)

	morning := time.Date(2026, time.March, 10, 6, 0, 0, 0, time.UTC)
	evening := time.Date(2026, time.March, 10, 22, 0, 0, 0, time.UTC)

	first, err := service.Daily(morning, time.UTC)
	if err != nil {
		t.Fatalf("Daily() unexpected error: %v", err)
	}
	second, err := service.Daily(evening, time.UTC)
	if err != nil {
		t.Fatalf("Daily() unexpected error: %v", err)
	}

	if first.ID != second.ID {
		t.Fatalf("expected a stable pick within the day, got %q then %q", first.ID, second.ID)
	}
	if repo.listCalls != 1 {
		t.Fatalf("expected the second read to come from cache, got %d catalogue reads", repo.listCalls)
	}
}

func TestDailyInsightRotatesAcrossDays(t *testing.T) {
	service := NewInsightService(&stubInsightRepo{published: seedInsights(3)})

	seen := make(map[string]struct{})
	for offset := 0; offset < 3; offset++ {
		day := time.Date(2026, time.March, 10+offset, 12, 0, 0, 0, time.UTC)
		pick, err := service.Daily(day, time.UTC)
		if err != nil {
			t.Fatalf("Daily() unexpected error: %v", err)
		}
		seen[pick.ID] = struct{}{}
	}

	if len(seen) != 3 {
		t.Fatalf("expected three consecutive days to cover all three insights, got %d distinct", len(seen))
	}
}

func TestDailyInsightEmptyCatalogue(t *testing.T) {
	service := NewInsightService(&stubInsightRepo{})

	_, err := service.Daily(time.Now(), time.UTC)
	if !errors.Is(err, ErrInsightNotFound) {
		t.Fatalf("expected ErrInsightNotFound, got %v", err)
	}
}

func TestListInsightsRejectsUnknownCategory(t *testing.T) {
	service := NewInsightService(&stubInsightRepo{published: seedInsights(2)})

	_, err := service.List("astrology", 10, 0)
	if !errors.Is(err, ErrInvalidInsightCategory) {
		t.Fatalf("expected ErrInvalidInsightCategory, got %v", err)
	}
}

func TestListInsightsDefaultsLimit(t *testing.T) {
	repo := &stubInsightRepo{published: seedInsights(25)}
	service := NewInsightService(repo)

	insights, err := service.List("", 0, 0)
	if err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}
	if len(insights) != DefaultInsightListLimit {
		t.Fatalf("expected default limit %d, got %d", DefaultInsightListLimit, len(insights))
	}
}
