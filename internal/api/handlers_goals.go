package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) GetDailyGoal(c *fiber.Ctx) error {
	goal, err := handler.goals.Get(currentUserID(c), time.Now(), handler.location)
	if err != nil {
		return handler.serviceError(c, err)
	}
	return c.JSON(newGoalView(goal))
}

func (handler *Handler) AddWater(c *fiber.Ctx) error {
	payload := addWaterRequest{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	goal, err := handler.goals.AddWater(currentUserID(c), payload.Glasses, time.Now(), handler.location)
	if err != nil {
		return handler.serviceError(c, err)
	}
	return c.JSON(newGoalView(goal))
}

func (handler *Handler) UpdateSteps(c *fiber.Ctx) error {
	payload := updateStepsRequest{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	goal, err := handler.goals.SetSteps(currentUserID(c), payload.Steps, time.Now(), handler.location)
	if err != nil {
		return handler.serviceError(c, err)
	}
	return c.JSON(newGoalView(goal))
}
