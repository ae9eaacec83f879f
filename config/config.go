// Package config builds the application configuration once at startup.
// File: config/config.go
package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every runtime setting the application needs.
// Precedence: process environment variables win over values loaded
// from a local .env file; there is no third fallback layer and no
// hardcoded secret defaults.
type Config struct {
	Port           string
	ApplicationURL string

	AdminKey      string // shared secret for the /admin report
	SessionSecret string // cookie session signing key

	DBPath   string // sqlite file path
	Timezone string // IANA name used for submission timestamps

	// Telegram transport (preferred when both are set)
	TelegramBotToken string
	TelegramChatID   string

	// SMTP transport (used when Telegram is not configured)
	SMTPHost      string
	SMTPPort      string
	SMTPUsername  string
	SMTPPassword  string
	SMTPRecipient string

	Env string // "production" disables debug logging
}

// AppConfig is the process-wide configuration instance, set by LoadConfig.
var AppConfig *Config

// LoadConfig reads the .env file if present, then builds AppConfig from
// the environment. It is called exactly once from main; config is never
// re-read per request.
func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	AppConfig = &Config{
		Port:           getEnv("PORT", "8080"),
		ApplicationURL: getEnv("APPLICATION_URL", "http://localhost:8080"),

		AdminKey:      os.Getenv("ADMIN_KEY"),
		SessionSecret: os.Getenv("SESSION_SECRET"),

		DBPath:   getEnv("DB_PATH", "data.db"),
		Timezone: getEnv("TIMEZONE", "Asia/Taipei"),

		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramChatID:   os.Getenv("TELEGRAM_CHAT_ID"),

		SMTPHost:      os.Getenv("SMTP_HOST"),
		SMTPPort:      getEnv("SMTP_PORT", "587"),
		SMTPUsername:  os.Getenv("SMTP_USERNAME"),
		SMTPPassword:  os.Getenv("SMTP_PASSWORD"),
		SMTPRecipient: os.Getenv("SMTP_RECIPIENT"),

		Env: getEnv("APP_ENV", "development"),
	}
}

// Validate fails fast on settings that must never fall back to a
// shipped default. Notification credentials are deliberately optional:
// without them the dispatcher runs in log-only mode.
func (c *Config) Validate() error {
	if c.AdminKey == "" {
		return errMissing("ADMIN_KEY")
	}
	if c.SessionSecret == "" {
		return errMissing("SESSION_SECRET")
	}
	return nil
}

// Location resolves the configured timezone, falling back to the fixed
// UTC+8 offset the original deployment used when the tz database is
// unavailable in the runtime image.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		log.Printf("Unknown timezone %q, falling back to UTC+8", c.Timezone)
		return time.FixedZone("UTC+8", 8*60*60)
	}
	return loc
}

type missingEnvError string

func errMissing(key string) error { return missingEnvError(key) }

func (e missingEnvError) Error() string {
	return "required environment variable " + string(e) + " is not set"
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
