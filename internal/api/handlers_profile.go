package api

import (
	"github.com/bloom-app/bloom-server/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) GetProfile(c *fiber.Ctx) error {
	profile, err := handler.profiles.Get(currentUserID(c))
	if err != nil {
		return handler.serviceError(c, err)
	}
	return c.JSON(newProfileView(profile, true))
}

func (handler *Handler) CompleteOnboarding(c *fiber.Ctx) error {
	payload := onboardingRequest{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	profile, err := handler.profiles.CompleteOnboarding(currentUserID(c), services.OnboardingInput{
		Name:        payload.Name,
		Email:       payload.Email,
		PrimaryGoal: payload.PrimaryGoal,
		Symptoms:    payload.Symptoms,
	})
	if err != nil {
		return handler.serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(newProfileView(profile, false))
}
