package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/selene-app/selene/internal/services"
)

type cycleInput struct {
	StartDate     string   `json:"start_date"`
	EndDate       string   `json:"end_date"`
	FlowIntensity string   `json:"flow_intensity"`
	Tags          []string `json:"tags"`
	Notes         string   `json:"notes"`
}

func (handler *Handler) GetCycles(c *fiber.Ctx) error {
	if rawMonth := strings.TrimSpace(c.Query("month")); rawMonth != "" {
		monthStart, err := parseMonthParam(rawMonth, handler.location)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid month")
		}
		cycles, err := handler.tracker.CyclesInMonth(monthStart)
		if err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to fetch cycles")
		}
		return c.JSON(cycles)
	}

	snapshot, err := handler.tracker.Snapshot()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch cycles")
	}
	return c.JSON(snapshot.Cycles)
}

func (handler *Handler) CreateCycle(c *fiber.Ctx) error {
	var input cycleInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	startDate, err := parseDayParam(strings.TrimSpace(input.StartDate), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid start date")
	}

	serviceInput := services.CycleInput{
		StartDate:     startDate,
		FlowIntensity: input.FlowIntensity,
		Tags:          input.Tags,
		Notes:         input.Notes,
	}
	if trimmed := strings.TrimSpace(input.EndDate); trimmed != "" {
		endDate, err := parseDayParam(trimmed, handler.location)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid end date")
		}
		serviceInput.EndDate = &endDate
	}

	record, prediction, err := handler.tracker.AppendCycle(serviceInput, handler.now())
	switch {
	case errors.Is(err, services.ErrInvalidFlowIntensity):
		return apiError(c, fiber.StatusBadRequest, "invalid flow intensity")
	case errors.Is(err, services.ErrEndBeforeStart):
		return apiError(c, fiber.StatusBadRequest, "end date before start date")
	case err != nil:
		return apiError(c, fiber.StatusInternalServerError, "failed to save cycle")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"cycle":      record,
		"prediction": prediction,
	})
}
