package api

import "github.com/gofiber/fiber/v2"

// ClearAllData wipes every record and the profile. Irreversible; the UI
// asks for confirmation before calling it.
func (handler *Handler) ClearAllData(c *fiber.Ctx) error {
	if err := handler.tracker.ClearAll(); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to clear data")
	}
	return c.JSON(fiber.Map{"cleared": true})
}
