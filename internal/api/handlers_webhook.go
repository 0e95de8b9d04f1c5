package api

import (
	"encoding/json"
	"net/http"

	"github.com/gofiber/fiber/v2"
	svix "github.com/svix/svix-webhooks/go"
	"go.uber.org/zap"
)

type clerkWebhookEvent struct {
	Type string           `json:"type"`
	Data clerkWebhookUser `json:"data"`
}

type clerkWebhookUser struct {
	ID             string `json:"id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	EmailAddresses []struct {
		EmailAddress string `json:"email_address"`
	} `json:"email_addresses"`
}

// ClerkWebhook ingests user lifecycle events from the identity provider.
// Authenticity comes from the svix signature, not the bearer middleware.
func (handler *Handler) ClerkWebhook(c *fiber.Ctx) error {
	if handler.webhookSecret == "" {
		return apiError(c, fiber.StatusServiceUnavailable, "webhooks not configured")
	}

	webhook, err := svix.NewWebhook(handler.webhookSecret)
	if err != nil {
		return apiError(c, fiber.StatusServiceUnavailable, "webhooks not configured")
	}

	headers := http.Header{}
	for _, name := range []string{"svix-id", "svix-timestamp", "svix-signature"} {
		headers.Set(name, c.Get(name))
	}
	if err := webhook.Verify(c.Body(), headers); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid webhook signature")
	}

	event := clerkWebhookEvent{}
	if err := json.Unmarshal(c.Body(), &event); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid webhook payload")
	}
	if event.Data.ID == "" {
		return apiError(c, fiber.StatusBadRequest, "webhook payload missing user id")
	}

	switch event.Type {
	case "user.created", "user.updated":
		if err := handler.profiles.SyncFromProvider(event.Data.ID, primaryEmail(event.Data), fullName(event.Data)); err != nil {
			return handler.serviceError(c, err)
		}
	case "user.deleted":
		if err := handler.profiles.DeleteByUserID(event.Data.ID); err != nil {
			return handler.serviceError(c, err)
		}
	default:
		handler.log.Info("ignoring webhook event", zap.String("type", event.Type))
	}

	return c.JSON(fiber.Map{"received": true})
}

func primaryEmail(user clerkWebhookUser) string {
	if len(user.EmailAddresses) == 0 {
		return ""
	}
	return user.EmailAddresses[0].EmailAddress
}

func fullName(user clerkWebhookUser) string {
	if user.FirstName == "" {
		return user.LastName
	}
	if user.LastName == "" {
		return user.FirstName
	}
	return user.FirstName + " " + user.LastName
}
