package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port string

	// Outbound lookup settings.
	BrasilAPIBaseURL string
	HTTPTimeout      time.Duration

	// Location cache (Redis single slot).
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Reminder collaborator. Notifications are dropped when the URL is empty.
	NotifyWebhookURL string

	// Local hour of the daily cached-location forecast refresh.
	RefreshHour int
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}

	cfg := &AppConfig{}

	cfg.Port = getenvDefault("PORT", "8080")
	cfg.BrasilAPIBaseURL = getenvDefault("BRASILAPI_BASE_URL", "https://brasilapi.com.br/api")

	timeoutStr := getenvDefault("HTTP_TIMEOUT", "10s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	cfg.RedisAddr = getenvDefault("REDIS_ADDR", "localhost:6379")
	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")
	cfg.RedisDB = getenvInt("REDIS_DB", 0)

	cfg.NotifyWebhookURL = os.Getenv("NOTIFY_WEBHOOK_URL")

	cfg.RefreshHour = getenvInt("REFRESH_SCHEDULE_HOUR", 7)
	if cfg.RefreshHour < 0 || cfg.RefreshHour > 23 {
		return nil, fmt.Errorf("invalid REFRESH_SCHEDULE_HOUR: %d", cfg.RefreshHour)
	}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}
