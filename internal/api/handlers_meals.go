package api

import (
	"github.com/bloom-app/bloom-server/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) LogMeal(c *fiber.Ctx) error {
	payload := logMealRequest{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	date, err := parseOptionalDate(payload.Date)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	entry, err := handler.meals.Log(currentUserID(c), services.MealEntryInput{
		Date:        date,
		MealType:    payload.MealType,
		Description: payload.Description,
		Calories:    payload.Calories,
		PhotoURL:    payload.PhotoURL,
		Notes:       payload.Notes,
	})
	if err != nil {
		return handler.serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(newMealCreatedView(entry))
}

func (handler *Handler) GetMealsByDate(c *fiber.Ctx) error {
	date, err := parseOptionalDate(c.Query("date"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "date must be RFC3339")
	}

	logs, err := handler.meals.ByDate(currentUserID(c), date, handler.location)
	if err != nil {
		return handler.serviceError(c, err)
	}
	return c.JSON(newMealListItemViews(logs))
}
