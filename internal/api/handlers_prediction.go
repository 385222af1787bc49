package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) GetPrediction(c *fiber.Ctx) error {
	prediction, err := handler.tracker.CurrentPrediction(handler.now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to compute prediction")
	}
	// nil means no profile or no logged cycle yet; the UI renders
	// "no prediction available" rather than an error.
	return c.JSON(prediction)
}

func (handler *Handler) GetAnalytics(c *fiber.Ctx) error {
	summary, err := handler.tracker.Analytics()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to compute analytics")
	}
	return c.JSON(summary)
}
