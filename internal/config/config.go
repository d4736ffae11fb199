// Package config reads the service configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	StorageMemory   = "memory"
	StoragePostgres = "postgres"

	DriverPgx = "pgx"
	DriverPq  = "postgres"

	defaultJWTSecret = "dev-only-secret-change-me"
)

type Config struct {
	Port int
	Env  string

	// Storage selects the repository implementation: memory or postgres.
	Storage string
	DB      DBConfig

	// Redis is optional; an empty host disables caching and rate limiting.
	Redis RedisConfig

	JWTSecret string
	JWTIssuer string
	TokenTTL  time.Duration

	RateLimit       int
	RateLimitWindow time.Duration

	HijriAPIURL string
	HijriLookup bool

	LogLevel  string
	LogFormat string
}

type DBConfig struct {
	Driver   string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

func (c DBConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.User, c.Password, c.Host, c.Port, c.Name)
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

func (c RedisConfig) Enabled() bool {
	return c.Host != ""
}

// Load reads a .env file when present, then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:    getEnvInt("PORT", 8080),
		Env:     getEnv("ENV", EnvDevelopment),
		Storage: getEnv("STORAGE", StorageMemory),
		DB: DBConfig{
			Driver:   getEnv("DB_DRIVER", DriverPgx),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "noor_user"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "noor_db"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", ""),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		JWTSecret:       getEnv("JWT_SECRET", defaultJWTSecret),
		JWTIssuer:       getEnv("JWT_ISSUER", "noor-sync-engine"),
		TokenTTL:        getEnvDuration("TOKEN_TTL", 72*time.Hour),
		RateLimit:       getEnvInt("RATE_LIMIT", 100),
		RateLimitWindow: getEnvDuration("RATE_LIMIT_WINDOW", time.Minute),
		HijriAPIURL:     getEnv("HIJRI_API_URL", "https://api.aladhan.com"),
		HijriLookup:     getEnvBool("HIJRI_LOOKUP", true),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "text"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []error

	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port))
	}

	switch c.Env {
	case EnvDevelopment, EnvProduction:
	default:
		errs = append(errs, fmt.Errorf("ENV must be one of: development, production; got %q", c.Env))
	}

	switch c.Storage {
	case StorageMemory:
	case StoragePostgres:
		switch c.DB.Driver {
		case DriverPgx, DriverPq:
		default:
			errs = append(errs, fmt.Errorf("DB_DRIVER must be one of: pgx, postgres; got %q", c.DB.Driver))
		}
		if c.DB.Name == "" {
			errs = append(errs, errors.New("DB_NAME is required for postgres storage"))
		}
	default:
		errs = append(errs, fmt.Errorf("STORAGE must be one of: memory, postgres; got %q", c.Storage))
	}

	if c.Env == EnvProduction && (c.JWTSecret == "" || c.JWTSecret == defaultJWTSecret) {
		errs = append(errs, errors.New("JWT_SECRET is required in production"))
	}
	if c.TokenTTL <= 0 {
		errs = append(errs, fmt.Errorf("TOKEN_TTL must be positive, got %s", c.TokenTTL))
	}
	if c.RateLimit < 1 {
		errs = append(errs, fmt.Errorf("RATE_LIMIT must be at least 1, got %d", c.RateLimit))
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", c.LogLevel))
	}
	switch c.LogFormat {
	case "json", "text", "logfmt":
	default:
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be one of: json, text, logfmt; got %q", c.LogFormat))
	}

	return errors.Join(errs...)
}

func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
