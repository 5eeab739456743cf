package util

import (
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Output formats understood by the CLI.
const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
	FormatStyled   = "styled"
)

// DefaultRounds is how many draws the summary runs when nothing else is configured.
const DefaultRounds = 10

// Config holds runtime settings and flags.
type Config struct {
	SeedText    string `env:"ENCOUNTER_SEED"`
	Rounds      int    `env:"ENCOUNTER_ROUNDS"`
	CatalogPath string `env:"ENCOUNTER_CATALOG"`
	Format      string `env:"ENCOUNTER_FORMAT" envDefault:"text"` // text|markdown|styled
	Theme       string `env:"ENCOUNTER_THEME" envDefault:"catppuccin"`
	Interactive bool   `env:"ENCOUNTER_TUI"`
}

// LoadConfig reads an optional .env file, then ENCOUNTER_* variables.
func LoadConfig(envFiles ...string) (Config, error) {
	// a missing .env is fine
	_ = godotenv.Load(envFiles...)
	// unset variables leave pre-filled fields alone
	cfg := Config{Rounds: DefaultRounds}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "parse env")
	}
	return cfg, nil
}

// Validate normalises Format and rejects values the CLI cannot honour.
// Negative rounds are left to the drawer, which owns that rule.
func (c *Config) Validate() error {
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	if c.Format == "" {
		c.Format = FormatText
	}
	switch c.Format {
	case FormatText, FormatMarkdown, FormatStyled:
	default:
		return errors.Errorf("unknown format %q (use text|markdown|styled)", c.Format)
	}
	c.SeedText = strings.TrimSpace(c.SeedText)
	return nil
}
