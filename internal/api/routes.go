package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	app.Post("/cycle", handler.RequireUser, handler.LogCycle)
	app.Get("/cycle", handler.RequireUser, handler.GetCycleHistory)
	app.Get("/cycle/latest", handler.RequireUser, handler.GetLatestCycles)

	app.Post("/mood", handler.RequireUser, handler.LogMood)

	app.Post("/weight", handler.RequireUser, handler.LogWeight)
	app.Get("/weight", handler.RequireUser, handler.GetWeightHistory)

	app.Get("/daily-goals", handler.RequireUser, handler.GetDailyGoal)
	app.Post("/daily-goals/water", handler.RequireUser, handler.AddWater)
	app.Post("/daily-goals/steps", handler.RequireUser, handler.UpdateSteps)

	app.Post("/meals", handler.RequireUser, handler.LogMeal)
	app.Get("/meals", handler.RequireUser, handler.GetMealsByDate)

	app.Post("/symptoms", handler.RequireUser, handler.LogSymptom)
	app.Get("/symptoms", handler.RequireUser, handler.GetSymptomsByDate)

	app.Get("/profile", handler.RequireUser, handler.GetProfile)
	app.Post("/profile/onboarding", handler.RequireUser, handler.CompleteOnboarding)

	// Editorial content is public; the app shows it pre-login.
	app.Get("/insights/daily", handler.GetDailyInsight)
	app.Get("/insights", handler.GetInsights)

	app.Post("/users", handler.CreateUser)
	app.Get("/users", handler.ListUsers)
	app.Get("/users/:id", handler.GetUser)
	app.Delete("/users/:id", handler.DeleteUser)

	app.Post("/webhooks/clerk", handler.ClerkWebhook)
}
