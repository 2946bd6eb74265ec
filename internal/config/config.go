package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Webhook notification delivery
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"500ms"`

	// Analysis backends
	AnalysisBackend     string        `env:"ANALYSIS_BACKEND" envDefault:"primary"`
	PrimaryAPIKey       string        `env:"ANALYSIS_PRIMARY_API_KEY"`
	PrimaryModel        string        `env:"ANALYSIS_PRIMARY_MODEL" envDefault:"gemini-2.5-flash"`
	PrimaryBaseURL      string        `env:"ANALYSIS_PRIMARY_BASE_URL" envDefault:"https://generativelanguage.googleapis.com"`
	SecondaryAPIKey     string        `env:"ANALYSIS_SECONDARY_API_KEY"`
	SecondaryModel      string        `env:"ANALYSIS_SECONDARY_MODEL" envDefault:"nvidia/nemotron-nano-12b-v2-vl"`
	SecondaryBaseURL    string        `env:"ANALYSIS_SECONDARY_BASE_URL" envDefault:"https://integrate.api.nvidia.com/v1"`
	AnalysisTimeout     time.Duration `env:"ANALYSIS_TIMEOUT" envDefault:"90s"`
	MaxVideoUploadBytes int64         `env:"MAX_VIDEO_UPLOAD_BYTES" envDefault:"52428800"`
	OverlayClasses      []string      `env:"OVERLAY_CLASSES"`

	// Stats Config
	StatsTimeWindowMinutes int `env:"STATS_TIME_WINDOW_MINUTES" envDefault:"60"`

	// Geolocation seeding
	DefaultLatitude  float64 `env:"DEFAULT_LATITUDE" envDefault:"37.7749"`
	DefaultLongitude float64 `env:"DEFAULT_LONGITUDE" envDefault:"-122.4194"`
	IPLookupURL      string  `env:"IP_LOOKUP_URL" envDefault:"https://ipapi.co/json/"`
	GeocoderBaseURL  string  `env:"GEOCODER_BASE_URL" envDefault:"https://nominatim.openstreetmap.org"`

	GeolocationTimeout time.Duration `env:"GEOLOCATION_TIMEOUT" envDefault:"5s"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig loads the configuration from environment variables and an
// optional .env file.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := &Config{
		DatabaseURL:            os.Getenv("DATABASE_URL"),
		HTTPPort:               getEnv("HTTP_PORT", "8080"),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
		RedisAddr:              getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:              os.Getenv("REDIS_PASSWORD"),
		RedisDB:                getEnvAsInt("REDIS_DB", 0),
		WebhookURL:             os.Getenv("WEBHOOK_URL"),
		WebhookSecret:          os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:         getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:      getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:       getEnvAsDuration("WEBHOOK_BASE_DELAY", 500*time.Millisecond),
		AnalysisBackend:        getEnv("ANALYSIS_BACKEND", "primary"),
		PrimaryAPIKey:          os.Getenv("ANALYSIS_PRIMARY_API_KEY"),
		PrimaryModel:           getEnv("ANALYSIS_PRIMARY_MODEL", "gemini-2.5-flash"),
		PrimaryBaseURL:         getEnv("ANALYSIS_PRIMARY_BASE_URL", "https://generativelanguage.googleapis.com"),
		SecondaryAPIKey:        os.Getenv("ANALYSIS_SECONDARY_API_KEY"),
		SecondaryModel:         getEnv("ANALYSIS_SECONDARY_MODEL", "nvidia/nemotron-nano-12b-v2-vl"),
		SecondaryBaseURL:       getEnv("ANALYSIS_SECONDARY_BASE_URL", "https://integrate.api.nvidia.com/v1"),
		AnalysisTimeout:        getEnvAsDuration("ANALYSIS_TIMEOUT", 90*time.Second),
		MaxVideoUploadBytes:    getEnvAsInt64("MAX_VIDEO_UPLOAD_BYTES", 50*1024*1024),
		DefaultLatitude:        getEnvAsFloat("DEFAULT_LATITUDE", 37.7749),
		DefaultLongitude:       getEnvAsFloat("DEFAULT_LONGITUDE", -122.4194),
		StatsTimeWindowMinutes: getEnvAsInt("STATS_TIME_WINDOW_MINUTES", 60),
		IPLookupURL:            getEnv("IP_LOOKUP_URL", "https://ipapi.co/json/"),
		GeocoderBaseURL:        getEnv("GEOCODER_BASE_URL", "https://nominatim.openstreetmap.org"),
		GeolocationTimeout:     getEnvAsDuration("GEOLOCATION_TIMEOUT", 5*time.Second),
	}

	cfg.OverlayClasses = getEnvAsList("OVERLAY_CLASSES")
	cfg.APIKeys = getEnvAsList("API_KEYS")

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	return cfg, nil
}

// getEnv returns the value of an environment variable or a default.
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt returns the value of an environment variable as int or a default.
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsInt64 returns the value of an environment variable as int64 or a default.
func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloat returns the value of an environment variable as float64 or a default.
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsDuration returns the value of an environment variable as
// time.Duration or a default.
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}

// getEnvAsList splits a comma-separated environment variable into
// trimmed entries.
func getEnvAsList(key string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}
