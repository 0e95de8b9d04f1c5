package api

import (
	"github.com/bloom-app/bloom-server/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) LogSymptom(c *fiber.Ctx) error {
	payload := logSymptomRequest{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	date, err := parseOptionalDate(payload.Date)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	entry, err := handler.symptoms.Log(currentUserID(c), services.SymptomEntryInput{
		Date:        date,
		SymptomType: payload.SymptomType,
		Severity:    payload.Severity,
		Notes:       payload.Notes,
	})
	if err != nil {
		return handler.serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(newSymptomCreatedView(entry))
}

func (handler *Handler) GetSymptomsByDate(c *fiber.Ctx) error {
	date, err := parseOptionalDate(c.Query("date"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "date must be RFC3339")
	}

	logs, err := handler.symptoms.ByDate(currentUserID(c), date, handler.location)
	if err != nil {
		return handler.serviceError(c, err)
	}
	return c.JSON(newSymptomListItemViews(logs))
}
