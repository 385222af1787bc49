package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	DBPath         string
	SecretKey      string
	LockPassphrase string
	ReminderHour   int
	Location       *time.Location
}

// Load reads configuration from the environment, with an optional .env
// file for local development. Everything has a sane default; only the
// secret key should be changed for real deployments.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:           get("SELENE_PORT", "8080"),
		DBPath:         get("SELENE_DB_PATH", filepath.Join("data", "selene.db")),
		SecretKey:      get("SELENE_SECRET_KEY", "change_me_in_production"),
		LockPassphrase: os.Getenv("SELENE_LOCK_PASSPHRASE"),
		ReminderHour:   getInt("SELENE_REMINDER_HOUR", 8),
		Location:       loadLocation(get("TZ", "UTC")),
	}
}

func get(key string, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("invalid %s %q, using %d", key, raw, fallback)
		return fallback
	}
	return value
}

func loadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("invalid TZ %q, falling back to UTC", name)
		return time.UTC
	}
	return location
}
