package config

import (
	"fmt"
	"log"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL string
	RedisURL    string
	ServerPort  string
	Environment string

	JWTAccessSecret string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration

	// Rate limiting
	RateLimitMaxRequests int
	RateLimitWindow      time.Duration
	RateLimitBlockTime   time.Duration
}

func Load() (*Config, error) {
	// Try to load .env file, but don't fail if it doesn't exist
	// (Docker containers use environment variables directly)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	accessTTL, err := ParseExpiry(getEnv("JWT_ACCESS_EXPIRES", "15m"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_ACCESS_EXPIRES: %w", err)
	}

	refreshTTL, err := ParseExpiry(getEnv("JWT_REFRESH_EXPIRES", "7d"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_REFRESH_EXPIRES: %w", err)
	}

	secret := os.Getenv("JWT_ACCESS_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_ACCESS_SECRET is required")
	}

	cfg := &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisURL:    os.Getenv("REDIS_URL"),
		ServerPort:  getEnv("SERVER_PORT", ":8080"),
		Environment: getEnv("ENVIRONMENT", "development"),

		JWTAccessSecret: secret,
		AccessTokenTTL:  accessTTL,
		RefreshTokenTTL: refreshTTL,

		RateLimitMaxRequests: getEnvAsInt("RATE_LIMIT_MAX_REQUESTS", 100),
		RateLimitWindow:      getEnvAsDuration("RATE_LIMIT_WINDOW", "1m"),
		RateLimitBlockTime:   getEnvAsDuration("RATE_LIMIT_BLOCK_TIME", "5m"),
	}

	return cfg, nil
}

// IsProduction returns true if running in production environment
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// expiryRegex accepts a bare number (seconds) or a number with one of the
// units ms, s, m, h, d, w, y. This grammar is wider than time.ParseDuration
// and matches what the web and mobile clients were configured with.
var expiryRegex = regexp.MustCompile(`(?i)^(\d+)(ms|s|m|h|d|w|y)?$`)

// ParseExpiry parses a token lifetime string like "15m", "7d" or "3600".
// A bare number is taken as seconds; a year is 365.25 days.
func ParseExpiry(value string) (time.Duration, error) {
	match := expiryRegex.FindStringSubmatch(strings.TrimSpace(value))
	if match == nil {
		return 0, fmt.Errorf("unsupported expiration format: %q", value)
	}

	n, err := strconv.ParseInt(match[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("unsupported expiration format: %q", value)
	}

	var unit time.Duration
	switch strings.ToLower(match[2]) {
	case "ms":
		unit = time.Millisecond
	case "", "s":
		unit = time.Second
	case "m":
		unit = time.Minute
	case "h":
		unit = time.Hour
	case "d":
		unit = 24 * time.Hour
	case "w":
		unit = 7 * 24 * time.Hour
	case "y":
		unit = time.Duration(365.25 * 24 * float64(time.Hour))
	}

	return time.Duration(n) * unit, nil
}

// getEnv retrieves environment variable with default value
func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// getEnvAsInt retrieves environment variable as int with default value
func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid %s value, using default: %d", key, defaultVal)
		return defaultVal
	}
	return val
}

// getEnvAsDuration retrieves environment variable as duration with default value
func getEnvAsDuration(key string, defaultVal string) time.Duration {
	valStr := os.Getenv(key)
	if valStr == "" {
		valStr = defaultVal
	}
	duration, err := time.ParseDuration(valStr)
	if err != nil {
		log.Printf("Invalid %s value, using default: %s", key, defaultVal)
		duration, _ = time.ParseDuration(defaultVal)
	}
	return duration
}
