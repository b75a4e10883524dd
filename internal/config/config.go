package config

import (
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// AppConfig holds the runtime configuration for the server. Everything has a
// working default; the env vars exist for local overrides and tests.
type AppConfig struct {
	// HKOBaseURL is the upstream endpoint for every report type.
	HKOBaseURL string `env:"HKO_BASE_URL" envDefault:"https://data.weather.gov.hk/weatherAPI/opendata/weather.php"`

	// UserAgent is sent on every outbound request.
	UserAgent string `env:"HKO_USER_AGENT" envDefault:"weather-app/1.0"`

	// HTTPTimeout bounds each outbound call. On expiry the call is treated
	// as a fetch failure, not a hang.
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT" envDefault:"30s"`
}

// Load reads configuration from the environment, honouring a .env file when
// one is present.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}

	cfg := &AppConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	if cfg.HTTPTimeout <= 0 {
		return nil, fmt.Errorf("HTTP_TIMEOUT must be positive, got %s", cfg.HTTPTimeout)
	}

	return cfg, nil
}
