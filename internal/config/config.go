package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	Environment string
	LogLevel    string
	LogFormat   string
	ServiceName string
	Version     string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	APIKey string // API key protecting the settlement and admin endpoints

	// TrustedProxies lists proxy IPs whose X-Forwarded-For headers are honored.
	TrustedProxies []string

	Season int // championship season being played

	ErgastBaseURL     string
	LiveTimingBaseURL string
	LiveTimingTTL     time.Duration

	// StandingsCacheTTL bounds how stale the leaderboard may get between
	// settlement runs.
	StandingsCacheTTL time.Duration

	// PredictionLockBuffer is subtracted from the session start to get the
	// moment submissions become read-only.
	PredictionLockBuffer time.Duration

	// AutoSettleInterval drives the background settlement job; zero disables it.
	AutoSettleInterval time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		Environment:       getEnv("ENVIRONMENT", "dev"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogFormat:         getEnv("LOG_FORMAT", "text"),
		ServiceName:       getEnv("SERVICE_NAME", "f1tipp"),
		Version:           getEnv("VERSION", "dev"),
		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", "f1tipp"),
		APIKey:            getEnv("API_KEY", ""),
		ErgastBaseURL:     getEnv("ERGAST_BASE_URL", "https://api.jolpi.ca/ergast"),
		LiveTimingBaseURL: getEnv("LIVETIMING_BASE_URL", "https://api.openf1.org"),
	}

	port, err := strconv.Atoi(getEnv("PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	season, err := strconv.Atoi(getEnv("SEASON", strconv.Itoa(time.Now().Year())))
	if err != nil {
		return nil, fmt.Errorf("invalid SEASON value: %w", err)
	}
	cfg.Season = season

	ttl, err := getDurationEnv("LIVETIMING_CACHE_TTL", 30*time.Second)
	if err != nil {
		return nil, err
	}
	cfg.LiveTimingTTL = ttl

	standings, err := getDurationEnv("STANDINGS_CACHE_TTL", time.Minute)
	if err != nil {
		return nil, err
	}
	cfg.StandingsCacheTTL = standings

	lock, err := getDurationEnv("PREDICTION_LOCK_BUFFER", 5*time.Minute)
	if err != nil {
		return nil, err
	}
	cfg.PredictionLockBuffer = lock

	settle, err := getDurationEnv("AUTO_SETTLE_INTERVAL", 0)
	if err != nil {
		return nil, err
	}
	cfg.AutoSettleInterval = settle

	if proxies := getEnv("TRUSTED_PROXIES", ""); proxies != "" {
		for _, p := range strings.Split(proxies, ",") {
			if p = strings.TrimSpace(p); p != "" {
				cfg.TrustedProxies = append(cfg.TrustedProxies, p)
			}
		}
	}

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return d, nil
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
