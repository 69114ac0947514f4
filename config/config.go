package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string

	// Data Storage Configuration
	DataBackend string // memory, file or sqlite
	DataDir     string
	DatabaseURL string
	SeedBaseURL string

	// Admin Session Configuration
	AdminUsername string
	AdminPassword string
	JWTSecret     string
	JWTExpiration int

	// Contact Form Configuration
	ContactUpstreamURL string

	// Offer Countdown Configuration
	OfferEndDate         string
	OfferTestMode        bool
	CountdownTickSeconds int

	// Rate Limiting Configuration
	RateLimitRequests     int
	RateLimitWindow       int
	AuthRateLimitRequests int
	DisableRateLimiting   bool

	// CORS Configuration
	AllowedOrigins  []string
	AllowAllOrigins bool
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Port:        getEnv("PORT", "8080"),

		// Data Storage Configuration
		DataBackend: getEnv("DATA_BACKEND", "file"),
		DataDir:     getEnv("DATA_DIR", "./data"),
		DatabaseURL: getEnv("DATABASE_URL", "pharmacy.db"),
		SeedBaseURL: getEnv("SEED_BASE_URL", ""),

		// Admin Session Configuration
		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),
		JWTSecret:     getEnv("JWT_SECRET", "pharmacy-admin-secret-change-in-production"),
		JWTExpiration: getEnvAsInt("JWT_EXPIRATION", 24*60*60), // 24 hours in seconds

		// Contact Form Configuration
		ContactUpstreamURL: getEnv("CONTACT_UPSTREAM_URL", ""),

		// Offer Countdown Configuration
		OfferEndDate:         getEnv("OFFER_END_DATE", ""),
		OfferTestMode:        getEnvAsBool("OFFER_TEST_MODE", false),
		CountdownTickSeconds: getEnvAsInt("COUNTDOWN_TICK_SECONDS", 30),

		// Rate Limiting Configuration
		RateLimitRequests:     getEnvAsInt("RATE_LIMIT_REQUESTS", 300),
		RateLimitWindow:       getEnvAsInt("RATE_LIMIT_WINDOW", 60),
		AuthRateLimitRequests: getEnvAsInt("AUTH_RATE_LIMIT_REQUESTS", 10),
		DisableRateLimiting:   getEnvAsBool("DISABLE_RATE_LIMITING", false),

		// CORS Configuration
		AllowedOrigins:  getEnvAsStringSlice("ALLOWED_ORIGINS", []string{}),
		AllowAllOrigins: getEnvAsBool("ALLOW_ALL_ORIGINS", true), // Default to true for development
	}
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsStringSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		return strings.Split(value, ",")
	}
	return defaultValue
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if c.AdminUsername == "" || c.AdminPassword == "" {
		return fmt.Errorf("admin credentials are required")
	}

	validEnvs := map[string]bool{
		"development": true,
		"production":  true,
		"test":        true,
	}
	if !validEnvs[c.Environment] {
		return fmt.Errorf("invalid environment: %s", c.Environment)
	}

	validBackends := map[string]bool{
		"memory": true,
		"file":   true,
		"sqlite": true,
	}
	if !validBackends[c.DataBackend] {
		return fmt.Errorf("invalid data backend: %s", c.DataBackend)
	}
	if c.DataBackend == "file" && c.DataDir == "" {
		return fmt.Errorf("data dir is required for the file backend")
	}
	if c.DataBackend == "sqlite" && c.DatabaseURL == "" {
		return fmt.Errorf("database URL is required for the sqlite backend")
	}

	if c.CountdownTickSeconds <= 0 {
		return fmt.Errorf("countdown tick must be positive")
	}

	return nil
}

// String returns a string representation of the configuration
func (c *Config) String() string {
	return fmt.Sprintf("Config{Environment: %s, Port: %s, DataBackend: %s}", c.Environment, c.Port, c.DataBackend)
}
