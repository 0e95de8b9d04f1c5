package api

import (
	"errors"

	"github.com/bloom-app/bloom-server/internal/models"
	"github.com/bloom-app/bloom-server/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// serviceError maps service sentinels onto HTTP statuses. Anything
// unrecognized is a persistence failure and surfaces as a 500.
func (handler *Handler) serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, models.ErrValidation):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrProfileNotFound),
		errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrInsightNotFound):
		return apiError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrEmailTaken):
		return apiError(c, fiber.StatusConflict, err.Error())
	default:
		handler.log.Error("request failed", zap.String("path", c.Path()), zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "internal server error")
	}
}
