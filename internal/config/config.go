// Package config loads server configuration from the environment.
package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds the settings for the visitas HTTP service.
type Config struct {
	// DBPath is the SQLite database location.
	DBPath string `env:"VISITAS_DB" env-default:"visitas.db"`

	// DistanceServiceURL is the base URL of the distance-calculation service.
	DistanceServiceURL string `env:"DISTANCE_SERVICE_URL" env-default:"http://distance-service:5000"`

	// ViaCEPBaseURL is the base URL of the CEP address directory.
	ViaCEPBaseURL string `env:"VIACEP_BASE_URL" env-default:"https://viacep.com.br"`

	// Port is the HTTP listen port.
	Port int `env:"PORT" env-default:"8080"`

	// DevMode switches logging to human-readable text at debug level.
	DevMode bool `env:"VISITAS_DEV_MODE" env-default:"false"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}
	return cfg, nil
}
