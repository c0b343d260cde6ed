// Package main is the entry point for the application.
// It initializes the backend client and cache, sets up the HTTP server,
// and starts the application.
package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"go.uber.org/zap"

	"paygate/internal/backend"
	"paygate/internal/config"
	"paygate/internal/repositories/cache"
	"paygate/internal/routes"
)

func main() {
	config.LoadEnv()

	zapLog, err := newLogger()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer zapLog.Sync()

	// Backend API client. Timeout bounds every round trip; a timed-out
	// verification is indeterminate, never failed, so this can stay tight.
	client := backend.NewClient(
		config.GetEnv("BACKEND_BASE_URL", "http://localhost:8080"),
		config.GetDurationEnv("BACKEND_TIMEOUT", 15*time.Second),
		zapLog,
	)

	// Redis backs the transaction-history cache only.
	redisClient := cache.NewRedisClient(&cache.RedisConfig{
		Host:     config.GetEnv("REDIS_HOST", "localhost"),
		Port:     config.GetEnv("REDIS_PORT", "6379"),
		Password: config.GetEnv("REDIS_PASSWORD", ""),
		DB:       config.GetIntEnv("REDIS_DB", 0),
	})
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		zapLog.Warn("redis unavailable, history caching degraded", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			zapLog.Warn("failed to close redis connection", zap.Error(err))
		}
	}()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.GetEnv("CORS_ORIGINS", "http://localhost:5173"),
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowCredentials: true,
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	// Rate-limit the money-movement endpoints. The orchestrator never
	// auto-retries; this also slows a user hammering resubmit.
	for _, path := range []string{"/api/payments", "/api/payouts"} {
		app.Use(path, limiter.New(limiter.Config{
			Next: func(c *fiber.Ctx) bool {
				return c.Method() != fiber.MethodPost
			},
			Max:        config.GetIntEnv("SUBMIT_RATE_LIMIT", 5),
			Expiration: 1 * time.Minute,
			KeyGenerator: func(c *fiber.Ctx) string {
				return c.IP()
			},
			LimitReached: func(c *fiber.Ctx) error {
				return c.Status(429).JSON(fiber.Map{
					"error": "Too many requests. Please try again later.",
				})
			},
		}))
	}

	routes.SetupRoutes(app, client, redisClient, zapLog)

	zapLog.Fatal("server stopped", zap.Error(app.Listen(":"+config.GetEnv("PORT", "3000"))))
}

func newLogger() (*zap.Logger, error) {
	if config.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
