package config

import (
	"fmt"
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

// Bcrypt work factor bounds. The upper bound keeps login latency tolerable;
// the lower bound keeps stored hashes worth having.
const (
	defaultBcryptCost = 12
	minBcryptCost     = 10
	maxBcryptCost     = 14
)

// PasswordConfig configures bcrypt password hashing. An optional pepper is
// appended to every password before hashing, so a leaked table of hashes is
// useless without the process environment.
type PasswordConfig struct {
	BcryptCost int
	Pepper     string
}

// NewPasswordConfig reads BCRYPT_COST (default 12) and PASSWORD_PEPPER
// (optional) from the environment.
func NewPasswordConfig() (*PasswordConfig, error) {
	cfg := &PasswordConfig{
		BcryptCost: defaultBcryptCost,
		Pepper:     os.Getenv("PASSWORD_PEPPER"),
	}

	if raw := os.Getenv("BCRYPT_COST"); raw != "" {
		cost, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid BCRYPT_COST %q: %w", raw, err)
		}
		cfg.BcryptCost = cost
	}
	if cfg.BcryptCost < minBcryptCost || cfg.BcryptCost > maxBcryptCost {
		return nil, fmt.Errorf("BCRYPT_COST %d outside [%d,%d]", cfg.BcryptCost, minBcryptCost, maxBcryptCost)
	}
	return cfg, nil
}

// HashPassword hashes a peppered password with bcrypt.
func (c *PasswordConfig) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password+c.Pepper), c.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("could not hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword reports whether the password matches the stored hash under
// the configured pepper.
func (c *PasswordConfig) VerifyPassword(password, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(password+c.Pepper)) == nil
}
