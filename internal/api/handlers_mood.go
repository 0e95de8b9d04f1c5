package api

import (
	"github.com/bloom-app/bloom-server/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) LogMood(c *fiber.Ctx) error {
	payload := logMoodRequest{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	date, err := parseOptionalDate(payload.Date)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	entry, err := handler.moods.Log(currentUserID(c), services.MoodEntryInput{
		Date:        date,
		Mood:        payload.Mood,
		EnergyLevel: payload.EnergyLevel,
		Notes:       payload.Notes,
	}, handler.location)
	if err != nil {
		return handler.serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(newMoodView(entry))
}
