package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/selene-app/selene/internal/api"
	"github.com/selene-app/selene/internal/config"
	"github.com/selene-app/selene/internal/db"
	"github.com/selene-app/selene/internal/services"
)

func main() {
	cfg := config.Load()
	time.Local = cfg.Location

	database, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	repos := db.NewRepositories(database)
	if count, err := repos.Cycles.Count(); err == nil {
		log.Printf("store ready with %d logged cycles", count)
	}

	tracker := services.NewTrackerService(repos.Cycles, repos.Symptoms, repos.Profiles, repos, cfg.Location)
	export := services.NewExportService(repos.Cycles, repos.Symptoms, cfg.Location)

	lock, err := services.NewLockService(cfg.LockPassphrase, cfg.SecretKey)
	if err != nil {
		log.Fatalf("lock init failed: %v", err)
	}

	handler := api.NewHandler(tracker, export, lock, cfg.Location)

	app := fiber.New(fiber.Config{
		AppName:               "Selene",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	api.RegisterRoutes(app, handler)

	reminders := services.NewReminderService(tracker, cfg.Location)
	scheduler := reminders.Start(cfg.ReminderHour)
	defer scheduler.Stop()

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("Selene listening on http://0.0.0.0:%s (db: %s, tz: %s)", cfg.Port, cfg.DBPath, cfg.Location.String())
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
