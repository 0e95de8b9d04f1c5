package api

import (
	"strconv"

	"github.com/bloom-app/bloom-server/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) LogCycle(c *fiber.Ctx) error {
	payload := logCycleRequest{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	date, err := parseOptionalDate(payload.Date)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	entry, err := handler.cycles.Log(currentUserID(c), services.CycleEntryInput{
		Date:          date,
		Phase:         payload.Phase,
		DayOfCycle:    payload.DayOfCycle,
		FlowIntensity: payload.FlowIntensity,
		Notes:         payload.Notes,
	}, handler.location)
	if err != nil {
		return handler.serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(newCycleView(entry))
}

func (handler *Handler) GetCycleHistory(c *fiber.Ctx) error {
	startDate, err := parseRequiredDate(c.Query("startDate"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "startDate must be RFC3339")
	}
	endDate, err := parseRequiredDate(c.Query("endDate"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "endDate must be RFC3339")
	}

	logs, err := handler.cycles.History(currentUserID(c), startDate, endDate, handler.location)
	if err != nil {
		return handler.serviceError(c, err)
	}
	return c.JSON(newCycleViews(logs))
}

func (handler *Handler) GetLatestCycles(c *fiber.Ctx) error {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "limit must be an integer")
		}
		limit = parsed
	}

	logs, err := handler.cycles.Latest(currentUserID(c), limit)
	if err != nil {
		return handler.serviceError(c, err)
	}
	return c.JSON(newCycleViews(logs))
}
