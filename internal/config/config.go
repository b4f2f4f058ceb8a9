// Package config provides environment-based configuration for the service.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// App holds the process-level configuration shared by the server and CLI.
type App struct {
	Port        int
	DatabaseURL string
	GeminiKey   string
	RedisAddr   string
	UseBrowser  bool
	LogLevel    string
}

// LoadApp reads configuration from the environment. DATABASE_URL and
// GEMINI_API_KEY are required; everything else has a default.
func LoadApp() (*App, error) {
	cfg := &App{
		Port:        8080,
		DatabaseURL: os.Getenv("DATABASE_URL"),
		GeminiKey:   os.Getenv("GEMINI_API_KEY"),
		RedisAddr:   os.Getenv("REDIS_ADDR"),
		LogLevel:    os.Getenv("LOG_LEVEL"),
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT: %v", err)
		}
		cfg.Port = port
	}

	if browserStr := os.Getenv("USE_BROWSER"); browserStr != "" {
		useBrowser, err := strconv.ParseBool(browserStr)
		if err != nil {
			return nil, fmt.Errorf("invalid USE_BROWSER: %v", err)
		}
		cfg.UseBrowser = useBrowser
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *App) validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required but not set")
	}
	if c.GeminiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required but not set")
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT out of range: %d", c.Port)
	}
	return nil
}
