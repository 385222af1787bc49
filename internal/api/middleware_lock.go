package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// LockRequired rejects API calls without a valid unlock token whenever a
// lock passphrase is configured. With no passphrase the middleware is a
// pass-through.
func (handler *Handler) LockRequired(c *fiber.Ctx) error {
	if !handler.lock.Enabled() {
		return c.Next()
	}

	authorization := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	token, found := strings.CutPrefix(authorization, "Bearer ")
	if !found {
		return apiError(c, fiber.StatusUnauthorized, "locked")
	}
	if err := handler.lock.VerifyToken(strings.TrimSpace(token)); err != nil {
		return apiError(c, fiber.StatusUnauthorized, "locked")
	}
	return c.Next()
}
