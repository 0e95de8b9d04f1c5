package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/bloom-app/bloom-server/internal/api"
	"github.com/bloom-app/bloom-server/internal/config"
	"github.com/bloom-app/bloom-server/internal/db"
	"github.com/bloom-app/bloom-server/internal/logger"
	"github.com/bloom-app/bloom-server/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// A missing .env is the normal case in production.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	zlog := logger.New(cfg.Env)
	defer func() {
		_ = zlog.Sync()
	}()

	location := mustLoadLocation(cfg.Timezone, zlog)

	database, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		zlog.Fatal("database init failed", zap.Error(err))
	}

	repos := db.NewRepositories(database)
	insightService := services.NewInsightService(repos.Insights)

	handler := api.NewHandler(api.HandlerDeps{
		Log:           zlog,
		Location:      location,
		AuthSecret:    cfg.AuthSecret,
		WebhookSecret: cfg.WebhookSecret,
		Cycles:        services.NewCycleService(repos.CycleLogs),
		Moods:         services.NewMoodService(repos.MoodLogs),
		Weights:       services.NewWeightService(repos.WeightLogs),
		Goals:         services.NewGoalService(repos.DailyGoals),
		Symptoms:      services.NewSymptomService(repos.Symptoms),
		Meals:         services.NewMealService(repos.Meals),
		Profiles:      services.NewProfileService(repos.Profiles),
		Users:         services.NewUserService(repos.Users),
		Insights:      insightService,
	})

	app := fiber.New(fiber.Config{
		AppName:               "Bloom",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigin,
	}))

	api.RegisterRoutes(app, handler)

	rotation := services.NewInsightRotation(insightService, location, zlog)
	if err := rotation.Start(); err != nil {
		zlog.Fatal("insight rotation init failed", zap.Error(err))
	}

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		rotation.Stop()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			zlog.Error("server shutdown failed", zap.Error(err))
		}
	}()

	zlog.Info("Bloom listening",
		zap.String("port", cfg.Port),
		zap.String("db", cfg.DBPath),
		zap.String("tz", location.String()),
	)
	if err := app.Listen(":" + cfg.Port); err != nil {
		zlog.Fatal("server exited", zap.Error(err))
	}
}

func mustLoadLocation(name string, zlog *zap.Logger) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		zlog.Warn("invalid TZ, falling back to UTC", zap.String("tz", name))
		return time.UTC
	}
	return location
}
