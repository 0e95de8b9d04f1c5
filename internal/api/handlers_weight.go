package api

import (
	"github.com/bloom-app/bloom-server/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) LogWeight(c *fiber.Ctx) error {
	payload := logWeightRequest{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	date, err := parseOptionalDate(payload.Date)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	entry, err := handler.weights.Log(currentUserID(c), services.WeightEntryInput{
		Date:   date,
		Weight: payload.Weight,
		Unit:   payload.Unit,
		Notes:  payload.Notes,
	}, handler.location)
	if err != nil {
		return handler.serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(newWeightView(entry))
}

func (handler *Handler) GetWeightHistory(c *fiber.Ctx) error {
	startDate, err := parseRequiredDate(c.Query("startDate"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "startDate must be RFC3339")
	}
	endDate, err := parseRequiredDate(c.Query("endDate"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "endDate must be RFC3339")
	}

	logs, err := handler.weights.History(currentUserID(c), startDate, endDate, handler.location)
	if err != nil {
		return handler.serviceError(c, err)
	}
	return c.JSON(newWeightViews(logs))
}
