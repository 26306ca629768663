package unitkit

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/unitkit/pkg/config"
	"github.com/dmitrymomot/unitkit/pkg/logger"
	"github.com/dmitrymomot/unitkit/pkg/quantity"
	"github.com/dmitrymomot/unitkit/pkg/validator"
)

// ErrInvalidConfig is returned when a configuration value is out of range.
var ErrInvalidConfig = errors.New("invalid unitkit configuration")

// Config is the process configuration read from UNITKIT_* variables.
type Config struct {
	// Culture is a BCP 47 tag such as "de-DE"; empty means the invariant culture.
	Culture string `env:"UNITKIT_CULTURE"`
	// SignificantDigits is the number of digits after the radix point used by String.
	SignificantDigits int `env:"UNITKIT_SIGNIFICANT_DIGITS" envDefault:"2"`
	// CatalogDir replaces the embedded abbreviation catalogs when set.
	CatalogDir string `env:"UNITKIT_CATALOG_DIR"`
	// CatalogFormat is the file format read from CatalogDir: yaml or json.
	CatalogFormat string `env:"UNITKIT_CATALOG_FORMAT" envDefault:"yaml"`
	// LogMissingAbbreviations logs a warning for every catalog miss.
	LogMissingAbbreviations bool   `env:"UNITKIT_LOG_MISSING_ABBREVIATIONS" envDefault:"false"`
	LogLevel                string `env:"UNITKIT_LOG_LEVEL" envDefault:"info"`
	LogFormat               string `env:"UNITKIT_LOG_FORMAT" envDefault:"json"`
}

// LoadConfig loads the given .env files, if any, and parses Config from the
// environment. The result is cached; see config.Reload.
func LoadConfig(files ...string) (Config, error) {
	if len(files) > 0 {
		if err := config.LoadEnv(files...); err != nil {
			return Config{}, err
		}
	}
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

// MustLoadConfig is like LoadConfig but panics on error.
func MustLoadConfig(files ...string) Config {
	cfg, err := LoadConfig(files...)
	if err != nil {
		panic(fmt.Sprintf("failed to load unitkit configuration: %v", err))
	}
	return cfg
}

var (
	logFormats     = []string{string(logger.FormatJSON), string(logger.FormatText)}
	catalogFormats = []string{"yaml", "yml", "json"}
)

// Validate checks every field that Setup interprets. The returned error
// wraps ErrInvalidConfig and a validator.ValidationErrors naming each bad
// variable.
func (c Config) Validate() error {
	_, cultureErr := quantity.ParseCulture(c.Culture)
	rules := []validator.Rule{
		validator.NoError("UNITKIT_CULTURE", cultureErr),
		validator.MinNum("UNITKIT_SIGNIFICANT_DIGITS", c.SignificantDigits, 0),
		validator.InListString("UNITKIT_LOG_FORMAT", c.LogFormat, logFormats),
	}
	if c.LogLevel != "" {
		var level slog.Level
		rules = append(rules, validator.NoError("UNITKIT_LOG_LEVEL", level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel)))))
	}
	if c.CatalogDir != "" {
		rules = append(rules, validator.InListString("UNITKIT_CATALOG_FORMAT", strings.ToLower(c.CatalogFormat), catalogFormats))
	}

	if err := validator.Apply(rules...); err != nil {
		return errors.Join(ErrInvalidConfig, err)
	}
	return nil
}
