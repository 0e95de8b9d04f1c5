package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) CreateUser(c *fiber.Ctx) error {
	payload := createUserRequest{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	user, err := handler.users.Create(payload.Email, payload.Name)
	if err != nil {
		return handler.serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(newUserView(user))
}

func (handler *Handler) ListUsers(c *fiber.Ctx) error {
	users, err := handler.users.List()
	if err != nil {
		return handler.serviceError(c, err)
	}
	return c.JSON(newUserViews(users))
}

func (handler *Handler) GetUser(c *fiber.Ctx) error {
	user, err := handler.users.Get(c.Params("id"))
	if err != nil {
		return handler.serviceError(c, err)
	}
	return c.JSON(newUserView(user))
}

func (handler *Handler) DeleteUser(c *fiber.Ctx) error {
	if err := handler.users.Delete(c.Params("id")); err != nil {
		return handler.serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
