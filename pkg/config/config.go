package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config represents the application configuration.
type Config struct {
	App     AppConfig     `envPrefix:"APP_"`
	FinMind FinMindConfig `envPrefix:"FINMIND_"`
}

// AppConfig represents the application configuration.
type AppConfig struct {
	Name          string `env:"NAME" envDefault:"stockinfo"`
	Environment   string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	DefaultOutput string `env:"DEFAULT_OUTPUT" envDefault:"stock_data.csv"`
}

// FinMindConfig represents the FinMind data API configuration.
type FinMindConfig struct {
	BaseURL        string `env:"BASE_URL" envDefault:"https://api.finmindtrade.com/api/v4/data"`
	TimeoutSeconds int    `env:"TIMEOUT_SECONDS" envDefault:"30"`
}

// Timeout returns the request timeout as a duration.
func (c FinMindConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Load loads the configuration from the environment.
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}
