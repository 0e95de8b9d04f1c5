package api

import (
	"time"

	"github.com/bloom-app/bloom-server/internal/services"
	"go.uber.org/zap"
)

type Handler struct {
	log           *zap.Logger
	location      *time.Location
	authSecret    []byte
	webhookSecret string

	cycles   *services.CycleService
	moods    *services.MoodService
	weights  *services.WeightService
	goals    *services.GoalService
	symptoms *services.SymptomService
	meals    *services.MealService
	profiles *services.ProfileService
	users    *services.UserService
	insights *services.InsightService
}

type HandlerDeps struct {
	Log           *zap.Logger
	Location      *time.Location
	AuthSecret    string
	WebhookSecret string

	Cycles   *services.CycleService
	Moods    *services.MoodService
	Weights  *services.WeightService
	Goals    *services.GoalService
	Symptoms *services.SymptomService
	Meals    *services.MealService
	Profiles *services.ProfileService
	Users    *services.UserService
	Insights *services.InsightService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		log:           deps.Log,
		location:      deps.Location,
		authSecret:    []byte(deps.AuthSecret),
		webhookSecret: deps.WebhookSecret,
		cycles:        deps.Cycles,
		moods:         deps.Moods,
		weights:       deps.Weights,
		goals:         deps.Goals,
		symptoms:      deps.Symptoms,
		meals:         deps.Meals,
		profiles:      deps.Profiles,
		users:         deps.Users,
		insights:      deps.Insights,
	}
}
