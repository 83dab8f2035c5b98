package config

import (
	"fmt"

	"github.com/Veraticus/pennywise/internal/common"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Configuration keys.
const (
	KeyLedgerPath     = "ledger.path"
	KeyCategoriesFile = "categories.file"
	KeyLogLevel       = "logging.level"
	KeyLogFormat      = "logging.format"
)

// DefaultLedgerPath is used when no ledger path is configured.
const DefaultLedgerPath = "$HOME/.local/share/pennywise/records.txt"

var validate = validator.New(validator.WithRequiredStructEnabled())

// Config is the resolved application configuration.
type Config struct {
	LedgerPath     string `validate:"required"`
	CategoriesFile string // Empty means the built-in hierarchy
	LogLevel       string `validate:"oneof=debug info warn error"`
	LogFormat      string `validate:"oneof=console json"`
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyLedgerPath, DefaultLedgerPath)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")
}

// Load reads the configuration from v, expands paths and validates the result.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		LedgerPath:     ExpandPath(v.GetString(KeyLedgerPath)),
		CategoriesFile: ExpandPath(v.GetString(KeyCategoriesFile)),
		LogLevel:       v.GetString(KeyLogLevel),
		LogFormat:      v.GetString(KeyLogFormat),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", common.ErrInvalidConfig, err)
	}
	return nil
}
