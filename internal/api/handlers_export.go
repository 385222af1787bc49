package api

import (
	"bytes"
	"encoding/csv"

	"github.com/gofiber/fiber/v2"
	"github.com/selene-app/selene/internal/services"
)

func (handler *Handler) ExportSummary(c *fiber.Ctx) error {
	summary, err := handler.export.BuildSummary()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export summary")
	}
	return c.JSON(summary)
}

func (handler *Handler) ExportJSON(c *fiber.Ctx) error {
	payload, err := handler.export.BuildPayload(handler.now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="selene-export.json"`)
	return c.JSON(payload)
}

func (handler *Handler) ExportCSV(c *fiber.Ctx) error {
	cycleEntries, err := handler.export.BuildCycleEntries()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}
	symptomEntries, err := handler.export.BuildSymptomEntries()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	var output bytes.Buffer
	writer := csv.NewWriter(&output)

	writeRow := func(row []string) {
		_ = writer.Write(row)
	}
	writeRow([]string{"# cycles"})
	writeRow(services.ExportCycleCSVHeaders)
	for _, entry := range cycleEntries {
		writeRow(entry.Columns())
	}
	writeRow([]string{"# symptoms"})
	writeRow(services.ExportSymptomCSVHeaders)
	for _, entry := range symptomEntries {
		writeRow(entry.Columns())
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to write export")
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="selene-export.csv"`)
	return c.Send(output.Bytes())
}
