package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all process configuration. It is built once at startup
// and passed by reference; nothing mutates it afterwards.
type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	DBTimezone string

	JWTSecret       string
	StripeSecretKey string
	Port            string
}

// Load reads configuration from the environment, loading .env first if present.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found – relying on env vars")
	}

	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "password"),
		DBName:     getEnv("DB_NAME", "kmunity"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
		DBTimezone: getEnv("DB_TIMEZONE", "UTC"),

		JWTSecret:       getEnv("JWT_SECRET", "jwt-secret-key"),
		StripeSecretKey: getEnv("STRIPE_SECRET_KEY", ""),
		Port:            getEnv("PORT", "8080"),
	}
}

// getEnv reads an environment variable or returns the provided default
func getEnv(key, defaultValue string) string {
	if v, exists := os.LookupEnv(key); exists {
		return v
	}
	return defaultValue
}
