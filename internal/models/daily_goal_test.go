package models

import (
	"testing"
	"time"
)

func TestProgressClampsToOne(t *testing.T) {
	if got := Progress(20, 8); got != 1 {
		t.Fatalf("Progress(20, 8) = %v, want 1", got)
	}
	if got := Progress(10000, 10000); got != 1 {
		t.Fatalf("Progress(10000, 10000) = %v, want 1", got)
	}
}

func TestProgressPartial(t *testing.T) {
	if got := Progress(4, 8); got != 0.5 {
		t.Fatalf("Progress(4, 8) = %v, want 0.5", got)
	}
	if got := Progress(0, 8); got != 0 {
		t.Fatalf("Progress(0, 8) = %v, want 0", got)
	}
}

func TestProgressGuardsNonPositiveGoal(t *testing.T) {
	if got := Progress(5, 0); got != 0 {
		t.Fatalf("Progress(5, 0) = %v, want 0", got)
	}
	if got := Progress(5, -3); got != 0 {
		t.Fatalf("Progress(5, -3) = %v, want 0", got)
	}
}

func TestNewDailyGoalDefaults(t *testing.T) {
	goal := NewDailyGoal("user_1", time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC))
	if goal.WaterGlasses != 0 || goal.Steps != 0 {
		t.Fatalf("expected zero counters, got water=%d steps=%d", goal.WaterGlasses, goal.Steps)
	}
	if goal.WaterGoal != DefaultWaterGoal || goal.StepsGoal != DefaultStepsGoal {
		t.Fatalf("expected default targets, got water=%d steps=%d", goal.WaterGoal, goal.StepsGoal)
	}
}

func TestAddWaterAccumulatesAndSetStepsOverwrites(t *testing.T) {
	goal := NewDailyGoal("user_1", time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC))

	goal.AddWater(1)
	goal.AddWater(1)
	if goal.WaterGlasses != 2 {
		t.Fatalf("AddWater twice = %d glasses, want 2", goal.WaterGlasses)
	}

	goal.SetSteps(5000)
	goal.SetSteps(5000)
	if goal.Steps != 5000 {
		t.Fatalf("SetSteps twice = %d, want 5000", goal.Steps)
	}
}
