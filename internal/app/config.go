package app

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// ConfigPath points at a config file or a directory tree of them.
	ConfigPath string `validate:"required"`

	// Format selects the configuration loader.
	Format string `validate:"oneof=hcl yaml"`

	LogFormat       string `validate:"oneof=text json"`
	LogLevel        string `validate:"oneof=debug info warn error"`
	HealthcheckPort int    `validate:"gte=0,lte=65535"`

	// Lazy skips the eager-load pass; resources build on first request.
	Lazy bool

	// Get optionally names one resource, as "concept/name", to resolve
	// and print after startup.
	Get string
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}
