package config

import (
	"os"
	"strconv"
)

// Config holds all configuration for the TerraSense service
type Config struct {
	// Database configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Server configuration
	Port        string
	Environment string

	// Rate limiting (requests per window per client)
	RateLimitWindowSec int
	RateLimitMax       int

	// Optional alert queue. Publishing is disabled when the URL is empty.
	AMQPUrl           string
	AlertExchangeName string
	AlertRoutingKey   string
}

// Load loads configuration from environment variables
func Load() *Config {
	config := &Config{
		// Database defaults
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "3306"),
		DBUser:     getEnv("DB_USER", "server"),
		DBPassword: getEnv("DB_PASSWORD", "secret"),
		DBName:     getEnv("DB_NAME", "terrasense"),

		// Server defaults
		Port:        getEnv("PORT", "5000"),
		Environment: getEnv("APP_ENV", "development"),

		// Rate limiting defaults: 100 requests per 15 minutes
		RateLimitWindowSec: getIntEnv("RATE_LIMIT_WINDOW_SEC", 15*60),
		RateLimitMax:       getIntEnv("RATE_LIMIT_MAX", 100),

		// Alert queue defaults
		AMQPUrl:           getEnv("AMQP_URL", ""),
		AlertExchangeName: getEnv("ALERT_EXCHANGE_NAME", "terrasense"),
		AlertRoutingKey:   getEnv("ALERT_ROUTING_KEY", "alerts"),
	}

	return config
}

// IsDevelopment reports whether the service runs in a development-like
// environment. Internal error detail is only exposed to clients here.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getIntEnv gets an integer environment variable or returns a default value
func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
