package main

import (
	"log"

	"kmunity/internal/config"
	"kmunity/internal/controllers"
	"kmunity/internal/logger"
	"kmunity/internal/middleware"
	"kmunity/internal/payment"
	"kmunity/internal/routes"
)

func main() {
	// Structured logging to file
	logger.Setup()

	cfg := config.Load()

	config.InitDB(cfg)
	middleware.Setup(cfg.JWTSecret)
	controllers.PaymentGateway = payment.NewStripeGateway(cfg.StripeSecretKey)

	r := routes.SetupRouter()

	log.Printf("🚀 Server running at :%s", cfg.Port)
	log.Fatal(r.Run("0.0.0.0:" + cfg.Port))
}
