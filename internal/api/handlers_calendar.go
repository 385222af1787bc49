package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/selene-app/selene/internal/services"
)

func (handler *Handler) GetCalendarMonth(c *fiber.Ctx) error {
	monthStart, err := parseMonthParam(c.Params("month"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid month")
	}

	snapshot, err := handler.tracker.Snapshot()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load calendar data")
	}

	now := handler.now()
	prediction := services.Predict(snapshot.Profile, snapshot.Cycles, now, handler.location)
	days := services.BuildCalendarDayStates(monthStart, snapshot.Cycles, snapshot.Symptoms, prediction, now, handler.location)

	return c.JSON(fiber.Map{
		"month": monthStart.Format("2006-01"),
		"days":  days,
	})
}

func (handler *Handler) ClassifyDay(c *fiber.Ctx) error {
	day, err := parseDayParam(c.Params("date"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	snapshot, err := handler.tracker.Snapshot()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load calendar data")
	}

	prediction := services.Predict(snapshot.Profile, snapshot.Cycles, handler.now(), handler.location)
	state := services.Classify(day, snapshot.Cycles, prediction, handler.location)

	return c.JSON(fiber.Map{
		"date":  day.Format(dayParamLayout),
		"state": state,
	})
}
