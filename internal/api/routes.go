package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Post("/api/unlock", handler.Unlock)

	api := app.Group("/api", handler.LockRequired)

	cycles := api.Group("/cycles")
	cycles.Get("", handler.GetCycles)
	cycles.Post("", handler.CreateCycle)

	symptoms := api.Group("/symptoms")
	symptoms.Get("", handler.GetSymptoms)
	symptoms.Get("/types", handler.GetSymptomTypes)
	symptoms.Post("", handler.CreateSymptom)

	profile := api.Group("/profile")
	profile.Get("", handler.GetProfile)
	profile.Put("", handler.UpdateProfile)

	api.Get("/prediction", handler.GetPrediction)
	api.Get("/analytics", handler.GetAnalytics)

	calendar := api.Group("/calendar")
	calendar.Get("/day/:date", handler.ClassifyDay)
	calendar.Get("/:month", handler.GetCalendarMonth)

	export := api.Group("/export")
	export.Get("/summary", handler.ExportSummary)
	export.Get("/json", handler.ExportJSON)
	export.Get("/csv", handler.ExportCSV)

	settings := api.Group("/settings")
	settings.Post("/clear-data", handler.ClearAllData)
}
