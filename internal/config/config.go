package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Config holds the configuration for the concept service.
// Environment variables are automatically parsed from the COASTER_ prefix.
type Config struct {
	// Build target selects high-level environment: local, cloud
	BuildTarget string `envconfig:"BUILD_TARGET" default:"local"`

	// Derived or override driver
	DBDriver string `envconfig:"DB_DRIVER" default:"auto"`

	// HTTP Configuration
	HTTPPort int `envconfig:"HTTP_PORT" default:"8080"`

	// Postgres Configuration
	PostgresDSN string `envconfig:"POSTGRES_DSN" default:""`

	// SQLite Configuration
	SQLitePath string `envconfig:"SQLITE_PATH" default:"coasterforge.db"`

	// DevMode enables the hardcoded local development API key.
	DevMode bool `envconfig:"DEV_MODE" default:"true"`

	// AI provider (OpenAI-compatible chat completions)
	AIBaseURL   string `envconfig:"AI_BASE_URL" default:"https://api.openai.com/v1"`
	AIAPIKey    string `envconfig:"AI_API_KEY" default:""`
	AIModel     string `envconfig:"AI_MODEL" default:"gpt-4.1-nano"`
	AIMaxTokens int    `envconfig:"AI_MAX_TOKENS" default:"500"`

	// Health checking
	HealthIntervalSeconds     int `envconfig:"HEALTH_INTERVAL_SECONDS" default:"15"`
	HealthProbeTimeoutSeconds int `envconfig:"HEALTH_PROBE_TIMEOUT_SECONDS" default:"3"`
}

// ResolveDefaults validates BuildTarget and derives DBDriver when set to "auto" or empty.
func (c *Config) ResolveDefaults() error {
	var defaultDB string

	switch c.BuildTarget {
	case "local":
		defaultDB = "sqlite"
	case "cloud":
		defaultDB = "postgres"
	default:
		return fmt.Errorf("unsupported BUILD_TARGET: %s", c.BuildTarget)
	}

	if c.DBDriver == "" || c.DBDriver == "auto" {
		c.DBDriver = defaultDB
	}

	allowedDB := map[string]bool{"postgres": true, "sqlite": true}
	if !allowedDB[c.DBDriver] {
		return fmt.Errorf("unsupported DB_DRIVER: %s", c.DBDriver)
	}
	if c.DBDriver == "postgres" && c.PostgresDSN == "" {
		return fmt.Errorf("COASTER_POSTGRES_DSN is required when DB_DRIVER is postgres")
	}
	return nil
}

// New creates a new Config by parsing environment variables.
// Environment variables should be prefixed with COASTER_
// Example: COASTER_HTTP_PORT, COASTER_AI_API_KEY
func New() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("COASTER", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	if err := cfg.ResolveDefaults(); err != nil {
		return nil, err
	}

	log.Info().
		Str("build_target", cfg.BuildTarget).
		Str("db_driver", cfg.DBDriver).
		Int("port", cfg.HTTPPort).
		Str("ai_base_url", cfg.AIBaseURL).
		Str("ai_model", cfg.AIModel).
		Bool("dev_mode", cfg.DevMode).
		Str("postgres_dsn_present", func() string {
			if cfg.PostgresDSN != "" {
				return "true"
			}
			return "false"
		}()).
		Msg("Configuration loaded")

	return &cfg, nil
}

// GetHTTPAddr returns the HTTP server address
func (c *Config) GetHTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
