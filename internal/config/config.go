package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int    `validate:"gt=0,lte=65535"`
	Environment string `validate:"oneof=dev staging prod test"`
	LogLevel    string `validate:"oneof=debug info warn warning error"`
	LogFormat   string `validate:"oneof=json text"`

	DBUser     string `validate:"required"`
	DBPassword string `validate:"required"`
	DBHost     string `validate:"required"`
	DBPort     string `validate:"required"`
	DBName     string `validate:"required"`

	DiscordToken string
	DiscordAppID string

	// Learned scorer endpoint; empty disables the model and the adjuster
	// falls back to the arithmetic baseline.
	ScorerURL     string
	ScorerTimeout time.Duration `validate:"gt=0"`

	// Payment-link provider (payout links + house reserve signal).
	PaylinkURL     string
	PaylinkAPIKey  string
	PaylinkTimeout time.Duration `validate:"gt=0"`

	PayoutDisabled bool
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		Environment: getEnv("ENVIRONMENT", "dev"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),

		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBName:     getEnv("DB_NAME", "pnccasino"),

		DiscordToken: getEnv("DISCORD_TOKEN", ""),
		DiscordAppID: getEnv("DISCORD_APP_ID", ""),

		ScorerURL:     getEnv("SCORER_URL", ""),
		PaylinkURL:    getEnv("PAYLINK_URL", ""),
		PaylinkAPIKey: getEnv("PAYLINK_API_KEY", ""),
	}

	port, err := strconv.Atoi(getEnv("PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	cfg.ScorerTimeout, err = getDuration("SCORER_TIMEOUT", DefaultScorerTimeout)
	if err != nil {
		return nil, err
	}
	cfg.PaylinkTimeout, err = getDuration("PAYLINK_TIMEOUT", DefaultPaylinkTimeout)
	if err != nil {
		return nil, err
	}

	cfg.PayoutDisabled = getEnv("PAYOUT_DISABLED", "false") == "true"

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
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

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(raw)
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
