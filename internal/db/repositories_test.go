package db

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/bloom-app/bloom-server/internal/models"
)

func day(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.ParseInLocation("2006-01-02", value, time.UTC)
	if err != nil {
		t.Fatalf("parse day %q: %v", value, err)
	}
	return parsed
}

func TestCycleLogCreateCollapsesSameDayWrites(t *testing.T) {
	database := openSQLiteForTest(t, filepath.Join(t.TempDir(), "bloom-cycle.db"))
	repo := NewCycleLogRepository(database)

	logDay := day(t, "2026-03-10")

	first, err := models.NewCycleLog("user-1", logDay, models.PhaseMenstrual, 2, models.FlowMedium, "cramps")
	if err != nil {
		t.Fatalf("build first log: %v", err)
	}
	if err := repo.Create(&first); err != nil {
		t.Fatalf("create first log: %v", err)
	}

	second, err := models.NewCycleLog("user-1", logDay, models.PhaseFollicular, 9, models.FlowLight, "")
	if err != nil {
		t.Fatalf("build second log: %v", err)
	}
	if err := repo.Create(&second); err != nil {
		t.Fatalf("create colliding log: %v", err)
	}

	stored, found, err := repo.FindByUserAndDayRange("user-1", logDay, logDay.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("find stored log: %v", err)
	}
	if !found {
		t.Fatal("expected a stored log for the day")
	}
	if stored.ID != first.ID {
		t.Fatalf("expected row identity to survive the collision, got id %q want %q", stored.ID, first.ID)
	}
	if stored.Phase != models.PhaseFollicular {
		t.Fatalf("expected phase to fold onto the row, got %q", stored.Phase)
	}
	if stored.DayOfCycle != 2 {
		t.Fatalf("expected day_of_cycle to stay with the first write, got %d", stored.DayOfCycle)
	}

	var rowCount int64
	if err := database.Raw(`SELECT COUNT(*) FROM cycle_logs WHERE user_id = ?`, "user-1").Scan(&rowCount).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}
	if rowCount != 1 {
		t.Fatalf("expected one row per user per day, got %d", rowCount)
	}
}

func TestMoodLogCreateReplacesSameDayWrites(t *testing.T) {
	database := openSQLiteForTest(t, filepath.Join(t.TempDir(), "bloom-mood.db"))
	repo := NewMoodLogRepository(database)

	logDay := day(t, "2026-03-11")

	first, err := models.NewMoodLog("user-1", logDay, models.MoodHappy, 8, "morning")
	if err != nil {
		t.Fatalf("build first log: %v", err)
	}
	if err := repo.Create(&first); err != nil {
		t.Fatalf("create first log: %v", err)
	}

	second, err := models.NewMoodLog("user-1", logDay, models.MoodTired, 3, "evening")
	if err != nil {
		t.Fatalf("build second log: %v", err)
	}
	if err := repo.Create(&second); err != nil {
		t.Fatalf("create colliding log: %v", err)
	}

	stored, found, err := repo.FindByUserAndDayRange("user-1", logDay, logDay.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("find stored log: %v", err)
	}
	if !found {
		t.Fatal("expected a stored log for the day")
	}
	if stored.ID != first.ID {
		t.Fatalf("expected row identity to survive the collision, got id %q want %q", stored.ID, first.ID)
	}
	if stored.Mood != models.MoodTired || stored.EnergyLevel != 3 || stored.Notes != "evening" {
		t.Fatalf("expected every recorded field to be replaced, got %+v", stored)
	}
}

func TestCycleLogListByUserRangeOrdersNewestFirst(t *testing.T) {
	database := openSQLiteForTest(t, filepath.Join(t.TempDir(), "bloom-cycle-range.db"))
	repo := NewCycleLogRepository(database)

	for index, dayValue := range []string{"2026-03-01", "2026-03-02", "2026-03-03"} {
		entry, err := models.NewCycleLog("user-1", day(t, dayValue), models.PhaseMenstrual, index+1, "", "")
		if err != nil {
			t.Fatalf("build log %d: %v", index, err)
		}
		if err := repo.Create(&entry); err != nil {
			t.Fatalf("create log %d: %v", index, err)
		}
	}

	otherUser, err := models.NewCycleLog("user-2", day(t, "2026-03-02"), models.PhaseLuteal, 20, "", "")
	if err != nil {
		t.Fatalf("build other-user log: %v", err)
	}
	if err := repo.Create(&otherUser); err != nil {
		t.Fatalf("create other-user log: %v", err)
	}

	logs, err := repo.ListByUserRange("user-1", day(t, "2026-03-01"), day(t, "2026-03-03"))
	if err != nil {
		t.Fatalf("list range: %v", err)
	}
	if len(logs) != 2 {
		t.Fatalf("expected 2 logs inside the half-open range, got %d", len(logs))
	}
	if !logs[0].Date.After(logs[1].Date) {
		t.Fatalf("expected newest-first ordering, got %v then %v", logs[0].Date, logs[1].Date)
	}

	empty, err := repo.ListByUserRange("user-1", day(t, "2026-03-03"), day(t, "2026-03-01"))
	if err != nil {
		t.Fatalf("list inverted range: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected inverted range to return no logs, got %d", len(empty))
	}
}

func TestCycleLogListLatestByUserHonorsLimit(t *testing.T) {
	database := openSQLiteForTest(t, filepath.Join(t.TempDir(), "bloom-cycle-latest.db"))
	repo := NewCycleLogRepository(database)

	for index, dayValue := range []string{"2026-02-25", "2026-02-26", "2026-02-27", "2026-02-28"} {
		entry, err := models.NewCycleLog("user-1", day(t, dayValue), models.PhaseFollicular, index+5, "", "")
		if err != nil {
			t.Fatalf("build log %d: %v", index, err)
		}
		if err := repo.Create(&entry); err != nil {
			t.Fatalf("create log %d: %v", index, err)
		}
	}

	logs, err := repo.ListLatestByUser("user-1", 2)
	if err != nil {
		t.Fatalf("list latest: %v", err)
	}
	if len(logs) != 2 {
		t.Fatalf("expected limit to cap results at 2, got %d", len(logs))
	}
	if !logs[0].Date.Equal(day(t, "2026-02-28")) {
		t.Fatalf("expected most recent day first, got %v", logs[0].Date)
	}
}

func TestSymptomLogsAllowMultiplePerDay(t *testing.T) {
	database := openSQLiteForTest(t, filepath.Join(t.TempDir(), "bloom-symptoms.db"))
	repo := NewSymptomLogRepository(database)

	logDay := day(t, "2026-03-12")

	cramps, err := models.NewSymptomLog("user-1", logDay.Add(9*time.Hour), models.SymptomCramps, 4, "")
	if err != nil {
		t.Fatalf("build cramps log: %v", err)
	}
	headache, err := models.NewSymptomLog("user-1", logDay.Add(15*time.Hour), models.SymptomHeadache, 2, "")
	if err != nil {
		t.Fatalf("build headache log: %v", err)
	}
	for _, entry := range []*models.SymptomLog{&cramps, &headache} {
		if err := repo.Create(entry); err != nil {
			t.Fatalf("create symptom log: %v", err)
		}
	}

	logs, err := repo.ListByUserDayRange("user-1", logDay, logDay.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("list day symptoms: %v", err)
	}
	if len(logs) != 2 {
		t.Fatalf("expected both symptom logs to survive, got %d", len(logs))
	}
	if logs[0].SymptomType != models.SymptomCramps {
		t.Fatalf("expected oldest-first ordering, got %q first", logs[0].SymptomType)
	}
}

func TestUserRepositoryEmailUniqueness(t *testing.T) {
	database := openSQLiteForTest(t, filepath.Join(t.TempDir(), "bloom-users.db"))
	repo := NewUserRepository(database)

	first, err := models.NewUser("ana@example.com", "Ana")
	if err != nil {
		t.Fatalf("build first user: %v", err)
	}
	if err := repo.Create(&first); err != nil {
		t.Fatalf("create first user: %v", err)
	}

	duplicate, err := models.NewUser("ana@example.com", "Another Ana")
	if err != nil {
		t.Fatalf("build duplicate user: %v", err)
	}
	if err := repo.Create(&duplicate); err == nil {
		t.Fatal("expected duplicate email insert to fail")
	}
}

func TestInsightRepositoryStableOrderingAndFilters(t *testing.T) {
	database := openSQLiteForTest(t, filepath.Join(t.TempDir(), "bloom-insights.db"))
	repo := NewInsightRepository(database)

	published, err := repo.ListPublished()
	if err != nil {
		t.Fatalf("list published insights: %v", err)
	}
	if len(published) != 6 {
		t.Fatalf("expected 6 seeded insights, got %d", len(published))
	}
	for index := 1; index < len(published); index++ {
		if published[index].PublishedAt.After(published[index-1].PublishedAt) {
			t.Fatalf("expected newest-first ordering at index %d", index)
		}
	}

	nutrition, err := repo.ListByCategory(models.InsightNutrition, 20, 0)
	if err != nil {
		t.Fatalf("list nutrition insights: %v", err)
	}
	if len(nutrition) != 2 {
		t.Fatalf("expected 2 nutrition insights, got %d", len(nutrition))
	}
	for _, insight := range nutrition {
		if insight.Category != models.InsightNutrition {
			t.Fatalf("expected only nutrition insights, got %q", insight.Category)
		}
	}

	limited, err := repo.ListByCategory("", 2, 1)
	if err != nil {
		t.Fatalf("list limited insights: %v", err)
	}
	if len(limited) != 2 {
		t.Fatalf("expected limit to cap results at 2, got %d", len(limited))
	}
	if limited[0].ID != published[1].ID {
		t.Fatalf("expected offset to skip the first insight, got %q", limited[0].ID)
	}
}
