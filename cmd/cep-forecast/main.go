package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jonboulle/clockwork"
	"github.com/redis/go-redis/v9"

	httpapi "github.com/brunohmlima/cep-forecast/internal/api/http"
	"github.com/brunohmlima/cep-forecast/internal/config"
	"github.com/brunohmlima/cep-forecast/internal/forecast"
	"github.com/brunohmlima/cep-forecast/internal/forecast/brasilapi"
	"github.com/brunohmlima/cep-forecast/internal/notify"
	"github.com/brunohmlima/cep-forecast/internal/scheduler"
	"github.com/brunohmlima/cep-forecast/internal/store"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Shared HTTP client for outbound lookup calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	// Durable single-slot location cache.
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	cache := store.NewRedisLocationCache(redisClient)

	// Startup read of the cached location feeds the map-marker display,
	// independently of any lookup.
	if loc := cache.Load(context.Background()); loc != nil {
		log.Printf("INFO: cached location: %s (%.4f, %.4f), resolved %s",
			loc.CityName, loc.Latitude, loc.Longitude, loc.ResolvedAt.Format(time.RFC3339))
	} else {
		log.Printf("INFO: no cached location yet")
	}

	// Reminder collaborator.
	var notifier forecast.Notifier
	if cfg.NotifyWebhookURL != "" {
		notifier = notify.NewWebhookNotifier(httpClient, cfg.NotifyWebhookURL)
	} else {
		notifier = notify.Nop{}
	}

	// Resolution pipeline over the BrasilAPI lookups.
	pipeline := forecast.NewPipeline(
		brasilapi.NewAddressClient(httpClient, cfg.BrasilAPIBaseURL),
		brasilapi.NewCityClient(httpClient, cfg.BrasilAPIBaseURL),
		brasilapi.NewForecastClient(httpClient, cfg.BrasilAPIBaseURL),
		cache,
		notifier,
		clockwork.NewRealClock(),
	)

	// Daily refresh keeps the reminder pointed at the current "tomorrow".
	sched := scheduler.New(pipeline, cfg.RefreshHour)
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "cep-forecast",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())

	// Basic health endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "cep-forecast",
		})
	})

	// API routes.
	httpapi.RegisterRoutes(app, pipeline, cache)

	// Start server with graceful shutdown
	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}

	if err := redisClient.Close(); err != nil {
		log.Printf("error closing redis client: %v", err)
	}
}
