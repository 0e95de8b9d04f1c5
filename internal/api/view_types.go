package api

import (
	"time"

	"github.com/bloom-app/bloom-server/internal/models"
)

type cycleView struct {
	ID            string `json:"id"`
	Date          string `json:"date"`
	Phase         string `json:"phase"`
	DayOfCycle    int    `json:"dayOfCycle"`
	FlowIntensity string `json:"flowIntensity,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

func newCycleView(entry models.CycleLog) cycleView {
	return cycleView{
		ID:            entry.ID,
		Date:          entry.Date.Format(time.RFC3339),
		Phase:         entry.Phase,
		DayOfCycle:    entry.DayOfCycle,
		FlowIntensity: entry.FlowIntensity,
		Notes:         entry.Notes,
	}
}

func newCycleViews(entries []models.CycleLog) []cycleView {
	views := make([]cycleView, 0, len(entries))
	for _, entry := range entries {
		views = append(views, newCycleView(entry))
	}
	return views
}

type moodView struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Mood        string `json:"mood"`
	EnergyLevel int    `json:"energyLevel"`
	Notes       string `json:"notes,omitempty"`
}

func newMoodView(entry models.MoodLog) moodView {
	return moodView{
		ID:          entry.ID,
		Date:        entry.Date.Format(time.RFC3339),
		Mood:        entry.Mood,
		EnergyLevel: entry.EnergyLevel,
		Notes:       entry.Notes,
	}
}

type weightView struct {
	ID       string  `json:"id"`
	Date     string  `json:"date"`
	Weight   float64 `json:"weight"`
	Unit     string  `json:"unit"`
	WeightKg float64 `json:"weightKg"`
	Notes    string  `json:"notes,omitempty"`
}

func newWeightView(entry models.WeightLog) weightView {
	return weightView{
		ID:       entry.ID,
		Date:     entry.Date.Format(time.RFC3339),
		Weight:   entry.Weight,
		Unit:     entry.Unit,
		WeightKg: entry.WeightInKg(),
		Notes:    entry.Notes,
	}
}

func newWeightViews(entries []models.WeightLog) []weightView {
	views := make([]weightView, 0, len(entries))
	for _, entry := range entries {
		views = append(views, newWeightView(entry))
	}
	return views
}

type goalView struct {
	ID            string  `json:"id"`
	Date          string  `json:"date"`
	WaterGlasses  int     `json:"waterGlasses"`
	WaterGoal     int     `json:"waterGoal"`
	WaterProgress float64 `json:"waterProgress"`
	Steps         int     `json:"steps"`
	StepsGoal     int     `json:"stepsGoal"`
	StepsProgress float64 `json:"stepsProgress"`
}

func newGoalView(goal models.DailyGoal) goalView {
	return goalView{
		ID:            goal.ID,
		Date:          goal.Date.Format(time.RFC3339),
		WaterGlasses:  goal.WaterGlasses,
		WaterGoal:     goal.WaterGoal,
		WaterProgress: goal.WaterProgress(),
		Steps:         goal.Steps,
		StepsGoal:     goal.StepsGoal,
		StepsProgress: goal.StepsProgress(),
	}
}

type mealCreatedView struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	MealType    string `json:"mealType"`
	Description string `json:"description"`
	Calories    *int   `json:"calories"`
}

func newMealCreatedView(entry models.MealLog) mealCreatedView {
	return mealCreatedView{
		ID:          entry.ID,
		Date:        entry.Date.Format(time.RFC3339),
		MealType:    entry.MealType,
		Description: entry.Description,
		Calories:    entry.Calories,
	}
}

type mealListItemView struct {
	ID          string `json:"id"`
	MealType    string `json:"mealType"`
	Description string `json:"description"`
	Calories    *int   `json:"calories"`
	PhotoURL    string `json:"photoUrl,omitempty"`
}

func newMealListItemViews(entries []models.MealLog) []mealListItemView {
	views := make([]mealListItemView, 0, len(entries))
	for _, entry := range entries {
		views = append(views, mealListItemView{
			ID:          entry.ID,
			MealType:    entry.MealType,
			Description: entry.Description,
			Calories:    entry.Calories,
			PhotoURL:    entry.PhotoURL,
		})
	}
	return views
}

type symptomCreatedView struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	SymptomType string `json:"symptomType"`
	Severity    int    `json:"severity"`
	Notes       string `json:"notes,omitempty"`
}

func newSymptomCreatedView(entry models.SymptomLog) symptomCreatedView {
	return symptomCreatedView{
		ID:          entry.ID,
		Date:        entry.Date.Format(time.RFC3339),
		SymptomType: entry.SymptomType,
		Severity:    entry.Severity,
		Notes:       entry.Notes,
	}
}

type symptomListItemView struct {
	ID          string `json:"id"`
	SymptomType string `json:"symptomType"`
	Severity    int    `json:"severity"`
	Notes       string `json:"notes,omitempty"`
}

func newSymptomListItemViews(entries []models.SymptomLog) []symptomListItemView {
	views := make([]symptomListItemView, 0, len(entries))
	for _, entry := range entries {
		views = append(views, symptomListItemView{
			ID:          entry.ID,
			SymptomType: entry.SymptomType,
			Severity:    entry.Severity,
			Notes:       entry.Notes,
		})
	}
	return views
}

type profileView struct {
	UserID              string   `json:"userId"`
	Name                string   `json:"name"`
	Email               string   `json:"email"`
	PrimaryGoal         string   `json:"primaryGoal"`
	Symptoms            []string `json:"symptoms"`
	OnboardingCompleted bool     `json:"onboardingCompleted"`
	CreatedAt           string   `json:"createdAt,omitempty"`
}

func newProfileView(profile models.UserProfile, includeCreatedAt bool) profileView {
	view := profileView{
		UserID:              profile.UserID,
		Name:                profile.Name,
		Email:               profile.Email,
		PrimaryGoal:         profile.PrimaryGoal,
		Symptoms:            profile.Symptoms,
		OnboardingCompleted: profile.OnboardingCompleted,
	}
	if view.Symptoms == nil {
		view.Symptoms = []string{}
	}
	if includeCreatedAt {
		view.CreatedAt = profile.CreatedAt.Format(time.RFC3339)
	}
	return view
}

type insightView struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Summary         string `json:"summary"`
	Content         string `json:"content"`
	Category        string `json:"category"`
	ImageURL        string `json:"imageUrl,omitempty"`
	ReadTimeMinutes int    `json:"readTimeMinutes"`
	PublishedAt     string `json:"publishedAt"`
}

func newInsightView(insight models.Insight) insightView {
	return insightView{
		ID:              insight.ID,
		Title:           insight.Title,
		Summary:         insight.Summary,
		Content:         insight.Content,
		Category:        insight.Category,
		ImageURL:        insight.ImageURL,
		ReadTimeMinutes: insight.ReadTimeMinutes,
		PublishedAt:     insight.PublishedAt.Format(time.RFC3339),
	}
}

func newInsightViews(insights []models.Insight) []insightView {
	views := make([]insightView, 0, len(insights))
	for _, insight := range insights {
		views = append(views, newInsightView(insight))
	}
	return views
}

type userView struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
}

func newUserView(user models.User) userView {
	return userView{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
}

func newUserViews(users []models.User) []userView {
	views := make([]userView, 0, len(users))
	for _, user := range users {
		views = append(views, newUserView(user))
	}
	return views
}
