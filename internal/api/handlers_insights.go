package api

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) GetDailyInsight(c *fiber.Ctx) error {
	insight, err := handler.insights.Daily(time.Now(), handler.location)
	if err != nil {
		return handler.serviceError(c, err)
	}
	return c.JSON(newInsightView(insight))
}

func (handler *Handler) GetInsights(c *fiber.Ctx) error {
	limit, err := queryInt(c, "limit")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "limit must be an integer")
	}
	offset, err := queryInt(c, "offset")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "offset must be an integer")
	}

	insights, err := handler.insights.List(c.Query("category"), limit, offset)
	if err != nil {
		return handler.serviceError(c, err)
	}
	return c.JSON(newInsightViews(insights))
}

func queryInt(c *fiber.Ctx, key string) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
