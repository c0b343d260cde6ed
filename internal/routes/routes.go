// Package routes defines the API routing configuration.
// It wires the backend client, services and handlers together and groups
// routes behind the session middleware.
package routes

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"paygate/internal/backend"
	"paygate/internal/config"
	"paygate/internal/handlers"
	"paygate/internal/middleware"
	"paygate/internal/repositories/cache"
	"paygate/internal/services/fees"
	"paygate/internal/services/onboarding"
	"paygate/internal/services/transaction"
	"paygate/internal/services/verification"
)

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App, client *backend.Client, redisClient *redis.Client, log *zap.Logger) {
	schedules := transaction.Schedules{
		Payment: config.PaymentSchedule(),
		Payout:  config.PayoutSchedule(),
	}

	// Services, leaves first.
	calculator := fees.NewCalculator()
	gate := verification.NewService(client, log)
	orchestrator := transaction.NewService(gate, calculator, client, schedules, log)
	onboardingSvc := onboarding.NewService(gate)
	history := cache.NewHistoryCache(redisClient)

	validate := validator.New()

	verificationHandler := handlers.NewVerificationHandler(gate)
	feeHandler := handlers.NewFeeHandler(calculator, schedules)
	paymentHandler := handlers.NewPaymentHandler(orchestrator, history, validate)
	payoutHandler := handlers.NewPayoutHandler(orchestrator, history, validate)
	transactionHandler := handlers.NewTransactionHandler(client, history)
	onboardingHandler := handlers.NewOnboardingHandler(onboardingSvc)

	authMiddleware := middleware.NewAuthMiddleware(config.GetEnv("JWT_SECRET", "paygate"), log)

	app.Get("/health", handlers.HealthCheck)

	api := app.Group("/api", authMiddleware.Handler)
	api.Get("/verification", verificationHandler.GetVerification)
	api.Get("/fees/quote", feeHandler.Quote)

	api.Post("/payments", paymentHandler.CreatePayment)
	api.Get("/payments/:orderID/verify", paymentHandler.VerifyPayment)

	api.Post("/payouts", payoutHandler.CreatePayout)
	api.Get("/payouts/:payoutID/verify", payoutHandler.VerifyPayout)

	api.Get("/transactions", transactionHandler.ListTransactions)
	api.Get("/retailers/eligibility", onboardingHandler.RetailerEligibility)
}
