package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Database
	DatabaseURL string

	// Server
	Port        string
	CORSOrigins []string
	Env         string

	// Exchange rates
	ExchangeRateURL string

	// Telegram notifications
	Telegram TelegramConfig

	// Notifier
	NotifyHour           int
	NotifyRetryOnFailure bool
}

// TelegramConfig holds the Telegram delivery settings. Both fields empty
// means notifications are disabled and the scheduler no-ops.
type TelegramConfig struct {
	BotToken string
	ChatID   int64
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		DatabaseURL:     getEnv("DATABASE_URL", ""),
		Port:            getEnv("PORT", "8080"),
		CORSOrigins:     strings.Split(getEnv("CORS_ORIGINS", "http://localhost:3000"), ","),
		Env:             getEnv("ENV", "development"),
		ExchangeRateURL: getEnv("EXCHANGE_RATE_URL", "https://api.exchangerate-api.com/v4/latest/USD"),
	}

	cfg.Telegram.BotToken = getEnv("TELEGRAM_BOT_TOKEN", "")
	if chatIDStr := getEnv("TELEGRAM_CHAT_ID", ""); chatIDStr != "" {
		chatID, err := strconv.ParseInt(chatIDStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid TELEGRAM_CHAT_ID: %w", err)
		}
		cfg.Telegram.ChatID = chatID
	}

	notifyHour, err := strconv.Atoi(getEnv("NOTIFY_HOUR", "9"))
	if err != nil || notifyHour < 0 || notifyHour > 23 {
		return nil, fmt.Errorf("NOTIFY_HOUR must be an hour between 0 and 23")
	}
	cfg.NotifyHour = notifyHour
	cfg.NotifyRetryOnFailure = getEnv("NOTIFY_RETRY_ON_FAILURE", "true") == "true"

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// TelegramEnabled reports whether both Telegram settings are present.
func (c *Config) TelegramEnabled() bool {
	return c.Telegram.BotToken != "" && c.Telegram.ChatID != 0
}

func (c *Config) validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.Telegram.BotToken != "" && c.Telegram.ChatID == 0 {
		return fmt.Errorf("TELEGRAM_CHAT_ID is required when TELEGRAM_BOT_TOKEN is set")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
