package config

import (
	"github.com/caarlos0/env/v11"

	"orbit-ads/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library. The
// nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. See the individual types in the configs package for
// default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev).
	Env string `env:"ENV" envDefault:"prod"`

	// ModerationEnabled is the initial state of the ad-text moderation
	// gate; the moderation endpoints toggle it at runtime.
	ModerationEnabled bool `env:"MODERATION_ENABLED" envDefault:"false"`

	// HTTP holds configuration for the HTTP server.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger.
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Redis configures the store backing the simulated-day clock.
	Redis configs.Redis `envPrefix:"REDIS_"`

	// S3 configures the campaign image store.
	S3 configs.S3 `envPrefix:"S3_"`

	// GenAI configures the text model used for moderation and generation.
	GenAI configs.GenAI `envPrefix:"GENAI_"`
}

// Load reads configuration from environment variables into a Config. If
// parsing fails, an error is returned. All fields are loaded with their
// specified defaults when no environment variable is provided.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
