package config

import (
	"os"
	"strings"
)

// Config holds all application configuration, sourced from environment variables
type Config struct {
	Env        string
	Version    string
	ServerPort string

	// Database
	DBDriver string // sqlite, mysql, postgres
	DBPath   string // sqlite file path
	DBHost   string
	DBPort   string
	DBUser   string
	DBPass   string
	DBName   string

	// Auth
	JWTSecret      string
	APIKey         string
	CORSOrigins    []string
	CORSEnabled    bool

	// Email
	EmailProvider    string // sendgrid, postmark; empty disables email
	EmailFromAddress string
	EmailFromName    string
	SendgridAPIKey   string
	PostmarkToken    string
	AlertRecipient   string

	// WebSocket
	WebSocketEnabled bool
}

// NewConfig builds a Config from the environment with sensible defaults
func NewConfig() *Config {
	cfg := &Config{
		Env:        getEnv("ENV", "development"),
		Version:    getEnv("APP_VERSION", "1.0.0"),
		ServerPort: getEnv("SERVER_PORT", ":8100"),

		DBDriver: getEnv("DB_DRIVER", "sqlite"),
		DBPath:   getEnv("DB_PATH", "meditrack.db"),
		DBHost:   getEnv("DB_HOST", "localhost"),
		DBPort:   getEnv("DB_PORT", ""),
		DBUser:   getEnv("DB_USER", ""),
		DBPass:   getEnv("DB_PASSWORD", ""),
		DBName:   getEnv("DB_NAME", "meditrack"),

		JWTSecret: getEnv("JWT_SECRET", "meditrack-dev-secret"),
		APIKey:    getEnv("API_KEY", ""),

		EmailProvider:    getEnv("EMAIL_PROVIDER", ""),
		EmailFromAddress: getEnv("EMAIL_FROM_ADDRESS", "noreply@meditrack.local"),
		EmailFromName:    getEnv("EMAIL_FROM_NAME", "Meditrack"),
		SendgridAPIKey:   getEnv("SENDGRID_API_KEY", ""),
		PostmarkToken:    getEnv("POSTMARK_SERVER_TOKEN", ""),
		AlertRecipient:   getEnv("ALERT_RECIPIENT", ""),

		WebSocketEnabled: getEnv("WS_ENABLED", "true") == "true",
		CORSEnabled:      getEnv("CORS_ENABLED", "true") == "true",
	}

	if !strings.HasPrefix(cfg.ServerPort, ":") {
		cfg.ServerPort = ":" + cfg.ServerPort
	}

	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		for _, origin := range strings.Split(origins, ",") {
			if trimmed := strings.TrimSpace(origin); trimmed != "" {
				cfg.CORSOrigins = append(cfg.CORSOrigins, trimmed)
			}
		}
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
