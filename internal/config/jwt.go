package config

import (
	"fmt"
	"os"
	"strconv"
)

// JWTConfig configures signing and lifetime of session tokens.
type JWTConfig struct {
	Secret          string
	ExpirationHours int
}

// NewJWTConfig reads JWT_SECRET (required) and JWT_EXPIRATION_HOURS
// (default 24) from the environment.
func NewJWTConfig() (*JWTConfig, error) {
	cfg := &JWTConfig{
		Secret:          os.Getenv("JWT_SECRET"),
		ExpirationHours: 24,
	}
	if cfg.Secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	if raw := os.Getenv("JWT_EXPIRATION_HOURS"); raw != "" {
		hours, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid JWT_EXPIRATION_HOURS %q: %w", raw, err)
		}
		cfg.ExpirationHours = hours
	}
	if cfg.ExpirationHours < 1 {
		return nil, fmt.Errorf("JWT_EXPIRATION_HOURS must be at least 1, got %d", cfg.ExpirationHours)
	}
	return cfg, nil
}
