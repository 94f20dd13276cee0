package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Auth      AuthConfig
	Assistant AssistantConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	ClientURL          string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
}

type DatabaseConfig struct {
	Connection string
}

type AuthConfig struct {
	JWTSecret     string
	TokenTTLHours int
}

type AssistantConfig struct {
	// SearchTopic is the in-process watermill topic carrying search-performed
	// messages to the corridor stats worker.
	SearchTopic string

	// SessionTTLMinutes bounds idle conversations in the in-memory store.
	SessionTTLMinutes int

	// CatalogCacheTTLSeconds bounds the Redis cache in front of the transit
	// catalog lookups.
	CatalogCacheTTLSeconds int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			ClientURL:          getEnv("CLIENT_URL", "http://localhost:5173"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Auth: AuthConfig{
			JWTSecret:     getEnv("JWT_SECRET", ""),
			TokenTTLHours: getEnvAsInt("SESSION_TOKEN_TTL_HOURS", 24),
		},
		Assistant: AssistantConfig{
			SearchTopic:            getEnv("SEARCH_PERFORMED_TOPIC_NAME", "SEARCH_PERFORMED"),
			SessionTTLMinutes:      getEnvAsInt("SESSION_TTL_MINUTES", 60),
			CatalogCacheTTLSeconds: getEnvAsInt("CATALOG_CACHE_TTL_SECONDS", 300),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
