package api

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestGetProfileBeforeOnboardingIs404(t *testing.T) {
	app := newTestApp(t)
	token := mintTestToken(t, "user-1")

	response := performRequest(t, app, jsonRequest(t, http.MethodGet, "/profile", token, nil))
	if response.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", response.StatusCode)
	}
}

func TestOnboardingCreatesProfileAndRepeatsUpdate(t *testing.T) {
	app := newTestApp(t)
	token := mintTestToken(t, "user-1")

	first := performRequest(t, app, jsonRequest(t, http.MethodPost, "/profile/onboarding", token, fiber.Map{
		"name":        "Ana",
		"email":       "ana@example.com",
		"primaryGoal": "fertility",
		"symptoms":    []string{"fatigue", "mood"},
	}))
	if first.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", first.StatusCode)
	}
	firstView := map[string]any{}
	decodeJSONBody(t, first, &firstView)
	if firstView["onboardingCompleted"] != true {
		t.Fatalf("expected onboardingCompleted true, got %v", firstView)
	}

	second := performRequest(t, app, jsonRequest(t, http.MethodPost, "/profile/onboarding", token, fiber.Map{
		"name":        "Ana Lima",
		"email":       "ana@example.com",
		"primaryGoal": "mental",
	}))
	if second.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", second.StatusCode)
	}

	fetched := performRequest(t, app, jsonRequest(t, http.MethodGet, "/profile", token, nil))
	if fetched.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", fetched.StatusCode)
	}
	view := map[string]any{}
	decodeJSONBody(t, fetched, &view)
	if view["primaryGoal"] != "mental" || view["name"] != "Ana Lima" {
		t.Fatalf("expected last write to win, got %v", view)
	}
	if view["onboardingCompleted"] != true {
		t.Fatal("expected onboarding flag to stay set")
	}
	if view["createdAt"] == nil || view["createdAt"] == "" {
		t.Fatal("expected createdAt on the profile view")
	}
}

func TestOnboardingRejectsUnknownSymptom(t *testing.T) {
	app := newTestApp(t)
	token := mintTestToken(t, "user-1")

	response := performRequest(t, app, jsonRequest(t, http.MethodPost, "/profile/onboarding", token, fiber.Map{
		"name":        "Ana",
		"email":       "ana@example.com",
		"primaryGoal": "fertility",
		"symptoms":    []string{"spontaneous-combustion"},
	}))
	if response.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", response.StatusCode)
	}
}
