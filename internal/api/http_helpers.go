package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

const dayParamLayout = "2006-01-02"
const monthParamLayout = "2006-01"

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func parseDayParam(raw string, location *time.Location) (time.Time, error) {
	return time.ParseInLocation(dayParamLayout, raw, location)
}

func parseMonthParam(raw string, location *time.Location) (time.Time, error) {
	return time.ParseInLocation(monthParamLayout, raw, location)
}
