package ratelimit

import (
	"os"
	"strconv"
	"time"
)

// Route class names used by the HTTP server.
const (
	ClassAI      = "ai"
	ClassAuth    = "auth"
	ClassDefault = "default"
)

// ClassConfig is the limit for one route class.
type ClassConfig struct {
	MaxRequests int
	Window      time.Duration
	// PerUser keys counters by authenticated user ID instead of client IP.
	PerUser bool
}

// Config holds the limiter's route-class table.
type Config struct {
	Enabled bool
	Classes map[string]ClassConfig
}

// Class returns the configuration for the named class, falling back to the
// default class when the name is unknown.
func (c *Config) Class(name string) ClassConfig {
	if cc, ok := c.Classes[name]; ok {
		return cc
	}
	return c.Classes[ClassDefault]
}

// DefaultConfig returns the built-in route-class table. Completion-backed
// routes are limited per user and much tighter than plain CRUD traffic.
func DefaultConfig() *Config {
	return &Config{
		Enabled: true,
		Classes: map[string]ClassConfig{
			ClassAI:      {MaxRequests: 20, Window: time.Minute, PerUser: true},
			ClassAuth:    {MaxRequests: 10, Window: time.Minute},
			ClassDefault: {MaxRequests: 120, Window: time.Minute},
		},
	}
}

// LoadConfig loads the route-class table from environment variables, using
// DefaultConfig values for anything unset.
func LoadConfig() *Config {
	config := DefaultConfig()
	config.Enabled = getEnvBool("RATE_LIMIT_ENABLED", true)

	ai := config.Classes[ClassAI]
	ai.MaxRequests = getEnvInt("RATE_LIMIT_AI_MAX_REQUESTS", ai.MaxRequests)
	ai.Window = getEnvDuration("RATE_LIMIT_AI_WINDOW", ai.Window)
	config.Classes[ClassAI] = ai

	auth := config.Classes[ClassAuth]
	auth.MaxRequests = getEnvInt("RATE_LIMIT_AUTH_MAX_REQUESTS", auth.MaxRequests)
	auth.Window = getEnvDuration("RATE_LIMIT_AUTH_WINDOW", auth.Window)
	config.Classes[ClassAuth] = auth

	def := config.Classes[ClassDefault]
	def.MaxRequests = getEnvInt("RATE_LIMIT_DEFAULT_MAX_REQUESTS", def.MaxRequests)
	def.Window = getEnvDuration("RATE_LIMIT_DEFAULT_WINDOW", def.Window)
	config.Classes[ClassDefault] = def

	return config
}

// getEnvInt gets an environment variable as an integer with a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvBool gets an environment variable as a boolean with a default value.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvDuration gets an environment variable as a duration with a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
