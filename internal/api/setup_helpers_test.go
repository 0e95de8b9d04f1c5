package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/bloom-app/bloom-server/internal/db"
	"github.com/bloom-app/bloom-server/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const testAuthSecret = "test-secret"

func newTestApp(t *testing.T) *fiber.App {
	return newTestAppWithWebhook(t, "")
}

func newTestAppWithWebhook(t *testing.T, webhookSecret string) *fiber.App {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "bloom-api-test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	repos := db.NewRepositories(database)
	handler := NewHandler(HandlerDeps{
		Log:           zap.NewNop(),
		Location:      time.UTC,
		AuthSecret:    testAuthSecret,
		WebhookSecret: webhookSecret,
		Cycles:        services.NewCycleService(repos.CycleLogs),
		Moods:         services.NewMoodService(repos.MoodLogs),
		Weights:       services.NewWeightService(repos.WeightLogs),
		Goals:         services.NewGoalService(repos.DailyGoals),
		Symptoms:      services.NewSymptomService(repos.Symptoms),
		Meals:         services.NewMealService(repos.Meals),
		Profiles:      services.NewProfileService(repos.Profiles),
		Users:         services.NewUserService(repos.Users),
		Insights:      services.NewInsightService(repos.Insights),
	})

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app
}

func mintTestToken(t *testing.T, userID string) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte(testAuthSecret))
	if err != nil {
		t.Fatalf("sign test token: %v", err)
	}
	return signed
}

func jsonRequest(t *testing.T, method string, path string, token string, payload any) *http.Request {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("encode request payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, body)
	if payload != nil {
		request.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		request.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	return request
}

func performRequest(t *testing.T, app *fiber.App, request *http.Request) *http.Response {
	t.Helper()

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("perform request: %v", err)
	}
	t.Cleanup(func() {
		_ = response.Body.Close()
	})
	return response
}

func decodeJSONBody(t *testing.T, response *http.Response, target any) {
	t.Helper()

	if err := json.NewDecoder(response.Body).Decode(target); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
}
