package db

import "gorm.io/gorm"

type Repositories struct {
	Users      *UserRepository
	Profiles   *ProfileRepository
	CycleLogs  *CycleLogRepository
	MoodLogs   *MoodLogRepository
	WeightLogs *WeightLogRepository
	DailyGoals *DailyGoalRepository
	Symptoms   *SymptomLogRepository
	Meals      *MealLogRepository
	Insights   *InsightRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:      NewUserRepository(database),
		Profiles:   NewProfileRepository(database),
		CycleLogs:  NewCycleLogRepository(database),
		MoodLogs:   NewMoodLogRepository(database),
		WeightLogs: NewWeightLogRepository(database),
		DailyGoals: NewDailyGoalRepository(database),
		Symptoms:   NewSymptomLogRepository(database),
		Meals:      NewMealLogRepository(database),
		Insights:   NewInsightRepository(database),
	}
}
