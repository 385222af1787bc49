package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/selene-app/selene/internal/models"
	"github.com/selene-app/selene/internal/services"
)

type symptomInput struct {
	Date      string `json:"date"`
	Type      string `json:"type"`
	Intensity int    `json:"intensity"`
	Notes     string `json:"notes"`
}

func (handler *Handler) GetSymptoms(c *fiber.Ctx) error {
	if rawDate := strings.TrimSpace(c.Query("date")); rawDate != "" {
		date, err := parseDayParam(rawDate, handler.location)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid date")
		}
		symptoms, err := handler.tracker.SymptomsOn(date)
		if err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to fetch symptoms")
		}
		return c.JSON(symptoms)
	}

	snapshot, err := handler.tracker.Snapshot()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch symptoms")
	}
	return c.JSON(snapshot.Symptoms)
}

// GetSymptomTypes serves the builtin labels that seed the logging UI's
// symptom picker.
func (handler *Handler) GetSymptomTypes(c *fiber.Ctx) error {
	return c.JSON(models.BuiltinSymptomTypes())
}

func (handler *Handler) CreateSymptom(c *fiber.Ctx) error {
	var input symptomInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	date, err := parseDayParam(strings.TrimSpace(input.Date), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	record, err := handler.tracker.AppendSymptom(services.SymptomInput{
		Date:      date,
		Type:      input.Type,
		Intensity: input.Intensity,
		Notes:     input.Notes,
	})
	switch {
	case errors.Is(err, services.ErrInvalidSymptomType):
		return apiError(c, fiber.StatusBadRequest, "invalid symptom type")
	case errors.Is(err, services.ErrInvalidSymptomIntensity):
		return apiError(c, fiber.StatusBadRequest, "intensity must be between 1 and 5")
	case err != nil:
		return apiError(c, fiber.StatusInternalServerError, "failed to save symptom")
	}

	return c.Status(fiber.StatusCreated).JSON(record)
}
