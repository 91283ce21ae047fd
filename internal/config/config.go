package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds everything the service reads from the environment.
type Config struct {
	Port        string
	Environment string
	LogLevel    string

	Tables TablesConfig

	// OrdersQueueURL, when set, enables the order-created notification publish.
	OrdersQueueURL string

	// QRSalt is the shared secret for scan checksum verification.
	// Empty salt disables verification entirely.
	QRSalt string

	Admin     AdminConfig
	RateLimit RateLimitConfig
}

// TablesConfig names the DynamoDB tables backing each collection.
type TablesConfig struct {
	Orders    string
	Products  string
	Feedbacks string
	Images    string
	Admins    string
	Scans     string
}

type AdminConfig struct {
	// PasswordHash is a bcrypt hash used when no record exists in the admins table.
	PasswordHash  string
	SessionSecret string
	SessionTTL    time.Duration
}

type RateLimitConfig struct {
	Max    int
	Window time.Duration
}

func Load() (*Config, error) {
	viper.SetConfigType("env")
	viper.SetConfigName(".env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("SESSION_TTL", "12h")
	viper.SetDefault("RATE_LIMIT_MAX", 30)
	viper.SetDefault("RATE_LIMIT_WINDOW", "60s")

	viper.AutomaticEnv()

	// .env is optional; real deployments use plain env vars.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	sessionTTL, err := time.ParseDuration(getEnvOrViper("SESSION_TTL", "12h"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL: %w", err)
	}
	rlWindow, err := time.ParseDuration(getEnvOrViper("RATE_LIMIT_WINDOW", "60s"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_WINDOW: %w", err)
	}

	cfg := &Config{
		Port:        getEnvOrViper("PORT", "8080"),
		Environment: getEnvOrViper("ENVIRONMENT", "development"),
		LogLevel:    getEnvOrViper("LOG_LEVEL", "info"),
		Tables: TablesConfig{
			Orders:    getEnvOrViper("ORDERS_TABLE", "orders"),
			Products:  getEnvOrViper("PRODUCTS_TABLE", "products"),
			Feedbacks: getEnvOrViper("FEEDBACKS_TABLE", "feedbacks"),
			Images:    getEnvOrViper("IMAGES_TABLE", "images"),
			Admins:    getEnvOrViper("ADMINS_TABLE", "admins"),
			Scans:     getEnvOrViper("SCANS_TABLE", "scans"),
		},
		OrdersQueueURL: strings.TrimSpace(getEnvOrViper("ORDERS_QUEUE_URL", "")),
		QRSalt:         getEnvOrViper("QR_SALT", ""),
		Admin: AdminConfig{
			PasswordHash:  getEnvOrViper("ADMIN_PASSWORD_HASH", ""),
			SessionSecret: getEnvOrViper("SESSION_SECRET", ""),
			SessionTTL:    sessionTTL,
		},
		RateLimit: RateLimitConfig{
			Max:    viper.GetInt("RATE_LIMIT_MAX"),
			Window: rlWindow,
		},
	}
	if cfg.RateLimit.Max <= 0 {
		cfg.RateLimit.Max = 30
	}

	if cfg.Admin.SessionSecret == "" && cfg.Environment != "development" {
		return nil, fmt.Errorf("SESSION_SECRET is required")
	}

	return cfg, nil
}

func getEnvOrViper(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return defaultValue
}
