package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort            string
	MongoURI           string
	MongoDatabase      string
	JwtSecret          string
	JwtTTL             time.Duration
	JwtIssuer          string
	TrustedProxies     []string
	CorsAllowedOrigins []string
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		AppPort:            getEnv("APP_PORT", "8080"),
		MongoURI:           getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:      getEnv("MONGO_DATABASE", "taskmanager"),
		JwtSecret:          getEnv("JWT_SECRET", "dev-secret-change-me"),
		JwtTTL:             getDurationEnv("JWT_TTL", 24*time.Hour),
		JwtIssuer:          getEnv("JWT_ISSUER", "task-manager"),
		TrustedProxies:     parseCSVEnv(os.Getenv("TRUSTED_PROXIES")),
		CorsAllowedOrigins: parseCSVEnv(os.Getenv("CORS_ALLOWED_ORIGINS")),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}

func parseCSVEnv(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	entries := make([]string, 0, len(parts))
	for _, part := range parts {
		entry := strings.TrimSpace(part)
		if entry == "" {
			continue
		}
		entries = append(entries, entry)
	}

	if len(entries) == 0 {
		return nil
	}

	return entries
}
