package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/selene-app/selene/internal/services"
)

type profileInput struct {
	AverageCycleLength  int    `json:"average_cycle_length"`
	AveragePeriodLength int    `json:"average_period_length"`
	LastPeriodDate      string `json:"last_period_date"`
	Theme               string `json:"theme"`
	PeriodReminder      bool   `json:"period_reminder"`
	OvulationReminder   bool   `json:"ovulation_reminder"`
	PMSAlert            bool   `json:"pms_alert"`
}

func (handler *Handler) GetProfile(c *fiber.Ctx) error {
	snapshot, err := handler.tracker.Snapshot()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load profile")
	}
	if snapshot.Profile == nil {
		return c.JSON(nil)
	}
	return c.JSON(snapshot.Profile)
}

func (handler *Handler) UpdateProfile(c *fiber.Ctx) error {
	var input profileInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	update := services.ProfileUpdate{
		AverageCycleLength:  input.AverageCycleLength,
		AveragePeriodLength: input.AveragePeriodLength,
		Theme:               input.Theme,
		PeriodReminder:      input.PeriodReminder,
		OvulationReminder:   input.OvulationReminder,
		PMSAlert:            input.PMSAlert,
	}
	if trimmed := strings.TrimSpace(input.LastPeriodDate); trimmed != "" {
		lastPeriod, err := parseDayParam(trimmed, handler.location)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid last period date")
		}
		update.LastPeriodDateSet = true
		update.LastPeriodDate = &lastPeriod
	}

	profile, err := handler.tracker.UpdateProfile(update)
	switch {
	case errors.Is(err, services.ErrInvalidCycleLength):
		return apiError(c, fiber.StatusBadRequest, "invalid cycle length")
	case errors.Is(err, services.ErrInvalidPeriodLength):
		return apiError(c, fiber.StatusBadRequest, "invalid period length")
	case errors.Is(err, services.ErrProfileMissing):
		return apiError(c, fiber.StatusNotFound, "profile not created yet")
	case err != nil:
		return apiError(c, fiber.StatusInternalServerError, "failed to save profile")
	}

	return c.JSON(profile)
}
