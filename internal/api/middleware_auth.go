package api

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const contextUserIDKey = "userID"

// RequireUser verifies the bearer token and stashes its subject claim as the
// request's user id. Token minting belongs to the identity provider; this
// side only checks the shared-secret signature.
func (handler *Handler) RequireUser(c *fiber.Ctx) error {
	rawToken, found := strings.CutPrefix(c.Get(fiber.HeaderAuthorization), "Bearer ")
	if !found || strings.TrimSpace(rawToken) == "" {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	parsed, err := jwt.Parse(rawToken, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return handler.authSecret, nil
	})
	if err != nil || !parsed.Valid {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	subject, err := parsed.Claims.GetSubject()
	if err != nil || subject == "" {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	c.Locals(contextUserIDKey, subject)
	return c.Next()
}

func currentUserID(c *fiber.Ctx) string {
	userID, _ := c.Locals(contextUserIDKey).(string)
	return userID
}
