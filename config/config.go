// Package config loads runtime settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v9"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/joho/godotenv"

	"quotecalc/services"
)

type Config struct {
	AppEnv   string `env:"APP_ENV" envDefault:"dev"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	TaxRate          float64 `env:"QUOTE_TAX_RATE" envDefault:"0.20"`
	MinDailyRate     float64 `env:"QUOTE_MIN_DAILY_RATE" envDefault:"1000"`
	DefaultDailyRate float64 `env:"QUOTE_DEFAULT_DAILY_RATE" envDefault:"1000"`
	DefaultFormat    string  `env:"QUOTE_DEFAULT_FORMAT" envDefault:"docx"`
	CompanyName      string  `env:"QUOTE_COMPANY_NAME" envDefault:"NowBrains"`
	DepartureCity    string  `env:"QUOTE_DEPARTURE_CITY" envDefault:"Lyon"`
}

// Load reads the configuration. A missing .env file is not an error; a
// malformed one is.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.TaxRate, validation.Min(0.0), validation.Max(1.0)),
		validation.Field(&c.MinDailyRate, validation.Min(0.0)),
		validation.Field(&c.DefaultDailyRate, validation.Min(0.0)),
		validation.Field(&c.DefaultFormat, validation.By(func(v interface{}) error {
			_, err := services.ParseFormat(v.(string))
			return err
		})),
		validation.Field(&c.LogLevel, validation.In("debug", "info", "warn", "error")),
	)
}

// Rules returns the pricing rules with the configured overrides applied.
func (c Config) Rules() services.Rules {
	r := services.DefaultRules()
	r.TaxRate = c.TaxRate
	r.MinDailyRate = c.MinDailyRate
	r.DefaultDailyRate = c.DefaultDailyRate
	if c.DepartureCity != "" {
		r.DepartureCity = c.DepartureCity
	}
	return r
}

// Format returns the default export format. Validate guarantees it parses.
func (c Config) Format() services.Format {
	f, err := services.ParseFormat(c.DefaultFormat)
	if err != nil {
		return services.FormatDOCX
	}
	return f
}

func (c Config) IsProduction() bool {
	return c.AppEnv == "prod" || c.AppEnv == "production"
}
