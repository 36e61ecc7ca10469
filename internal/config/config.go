package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const PROD_STRING = "prod"

// Config holds all application configuration loaded from environment.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	HTTPAddr     string

	// BookingsFile backs the default JSON ledger. When DBDSN is set the
	// Postgres ledger is used instead and BookingsFile is ignored.
	BookingsFile string
	DBDSN        string

	// Confirmation mail. MailerSend wins when both are configured; with
	// neither, confirmations go to the log.
	MailerSendAPIKey string
	MailFromName     string
	MailFromEmail    string
	SMTPHost         string
	SMTPPort         int
	SMTPUser         string
	SMTPPass         string
}

// Load loads configuration from .env (optional) and environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		log.Printf("failed to load .env file: %v", err)
	}

	cfg := &Config{}

	// Production origins (default: empty)
	cfg.ProdOrigins = getEnv("PROD_ORIGINS", "")

	// Application environment (default: dev)
	appEnvStr := getEnv("APP_ENV", "dev")
	cfg.IsProduction = appEnvStr == PROD_STRING

	// HTTP listen address (default: :8080)
	cfg.HTTPAddr = getEnv("HTTP_ADDR", ":8080")

	// Ledger storage: JSON file by default, Postgres when DB_DSN is set.
	cfg.BookingsFile = getEnv("BOOKINGS_FILE", "bookings.json")
	cfg.DBDSN = getEnv("DB_DSN", "")

	// Confirmation mail settings (all optional).
	cfg.MailerSendAPIKey = getEnv("MAILERSEND_API_KEY", "")
	cfg.MailFromName = getEnv("MAIL_FROM_NAME", "Luxe Nails")
	cfg.MailFromEmail = getEnv("MAIL_FROM_EMAIL", "")
	cfg.SMTPHost = getEnv("SMTP_HOST", "")
	cfg.SMTPPort, err = getEnvAsInt("SMTP_PORT", 1025)
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
	}
	cfg.SMTPUser = getEnv("SMTP_USER", "")
	cfg.SMTPPass = getEnv("SMTP_PASS", "")

	if cfg.MailerSendAPIKey != "" && cfg.MailFromEmail == "" {
		return nil, fmt.Errorf("MAIL_FROM_EMAIL is required when MAILERSEND_API_KEY is set")
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable if set,
// otherwise returns the provided default value.
func getEnv(key, defaultValue string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer.
// It returns the default value if the variable is not set.
// It returns an error if the variable is set but is not a valid integer.
func getEnvAsInt(key string, defaultValue int) (int, error) {
	valStr := getEnv(key, "")
	if valStr == "" {
		return defaultValue, nil
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return 0, fmt.Errorf("env %s value %q is not a valid integer: %w", key, valStr, err)
	}

	return val, nil
}
