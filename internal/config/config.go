package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/asherpoirier/website/internal/catalog"
)

type Config struct {
	Port        string
	DatabaseURL string
	BillingURL  string
	SupportURL  string
	CacheTTL    time.Duration
	CacheSize   int
	RateLimit   int
}

// Load reads an optional .env file and then the process environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, using environment variables")
	}
	return FromEnv()
}

func FromEnv() Config {
	return Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		BillingURL:  getEnv("BILLING_URL", catalog.DefaultBillingURL),
		SupportURL:  getEnv("SUPPORT_URL", catalog.DefaultSupportURL),
		CacheTTL:    getDuration("CACHE_TTL", 60*time.Minute),
		CacheSize:   getInt("CACHE_SIZE", 64),
		RateLimit:   getInt("RATE_LIMIT", 500),
	}
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(getEnv(key, ""))
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func getInt(key string, fallback int) int {
	n, err := strconv.Atoi(getEnv(key, ""))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
