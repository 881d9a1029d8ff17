package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Invoicedash"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	Query struct {
		// Artificial latency before each read, kept for demo fidelity.
		// Zero disables it.
		Delay time.Duration `envconfig:"QUERY_DELAY" default:"0s"`
	}

	Currency struct {
		Locale string `envconfig:"CURRENCY_LOCALE" default:"en-US"`
		Symbol string `envconfig:"CURRENCY_SYMBOL" default:"$"`
	}

	HTTP struct {
		AllowedOrigins []string      `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`
		Timeout        time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
