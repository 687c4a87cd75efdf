// Package config loads runtime settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// devSecret signs tokens when no JWT_SECRET is set in development.
// Validate rejects production configs without a real secret, so this
// value can never reach a production process.
const devSecret = "viddeck-development-only-signing-secret"

// Config holds runtime settings for the backend.
type Config struct {
	Port           string
	Environment    string
	JWTSecret      string
	AllowedOrigins []string
	UploadDir      string
	BcryptCost     int
	LogLevel       string
	LogFormat      string
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.Port = "3001"
	c.Environment = EnvDevelopment
	c.AllowedOrigins = []string{
		"http://localhost:3000",
		"http://localhost:8080",
		"http://127.0.0.1:3000",
		"http://127.0.0.1:8080",
	}
	c.UploadDir = "uploads"
	c.BcryptCost = 10
	c.LogLevel = "info"
	c.LogFormat = "text"
}

// Load builds a Config by applying defaults, overlaying environment
// variables, and validating the result.
func Load() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := cfg.parseEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) parseEnv() error {
	if v := os.Getenv("PORT"); v != "" {
		c.Port = v
	}
	if v := os.Getenv("APP_ENV"); v != "" {
		c.Environment = strings.ToLower(strings.TrimSpace(v))
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		c.JWTSecret = v
	}
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		origins := make([]string, 0)
		for _, origin := range strings.Split(v, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				origins = append(origins, origin)
			}
		}
		c.AllowedOrigins = origins
	}
	if v := os.Getenv("UPLOAD_DIR"); v != "" {
		c.UploadDir = v
	}
	if v := os.Getenv("BCRYPT_COST"); v != "" {
		cost, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid BCRYPT_COST: %w", err)
		}
		if cost < 4 || cost > 14 {
			return fmt.Errorf("BCRYPT_COST must be between 4 and 14, got %d", cost)
		}
		c.BcryptCost = cost
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		c.LogFormat = v
	}
	return nil
}

// Validate checks the config and refuses to run production without a
// strong signing secret. Development gets a fixed insecure fallback.
func (c *Config) Validate() error {
	switch c.Environment {
	case EnvDevelopment, EnvProduction:
	default:
		return fmt.Errorf("APP_ENV must be %q or %q, got %q", EnvDevelopment, EnvProduction, c.Environment)
	}

	if c.Production() {
		if c.JWTSecret == "" {
			return errors.New("JWT_SECRET is required in production")
		}
		if len(c.JWTSecret) < 32 {
			return errors.New("JWT_SECRET must be at least 32 characters for HMAC-SHA256 security")
		}
	} else if c.JWTSecret == "" {
		c.JWTSecret = devSecret
	}
	return nil
}

// Production reports whether the config targets production.
func (c *Config) Production() bool {
	return c.Environment == EnvProduction
}

// Addr returns the listen address derived from Port.
func (c *Config) Addr() string {
	return ":" + c.Port
}
