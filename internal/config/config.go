// internal/config/config.go
//
// Runtime configuration for the feetdle server, parsed from the environment.
// Responsibilities:
//   - Declare every tunable in one typed struct with sane defaults.
//   - Resolve the reference timezone once so the rest of the code works with
//     a *time.Location rather than a zone name.
//
// Conventions:
//   - main() loads .env first (godotenv), then calls Load().
//   - The reference timezone defines "today" for daily selection and reset;
//     both must use the same location or players near midnight get two
//     different answers.

package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config controls runtime behavior for the server.
type Config struct {
	Addr         string `env:"ADDR" envDefault:":5175"`
	DBPath       string `env:"DB_PATH" envDefault:"./data/feetdle.db"`
	Timezone     string `env:"GAME_TIMEZONE" envDefault:"America/Los_Angeles"`
	ClientOrigin string `env:"CLIENT_ORIGIN" envDefault:"http://localhost:3000"`
	CookieSecret string `env:"COOKIE_SECRET" envDefault:"dev_secret_change_me"`
	AdminKeyHash string `env:"ADMIN_KEY_HASH"`
	Production   bool   `env:"PRODUCTION"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`

	// Bug report mail delivery.
	SMTPHost    string `env:"SMTP_HOST"`
	SMTPPort    int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUser    string `env:"SMTP_USER"`
	SMTPPass    string `env:"SMTP_PASS"`
	SMTPFrom    string `env:"SMTP_FROM"`
	BugReportTo string `env:"BUG_REPORT_TO" envDefault:"produceitem@gmail.com"`

	// Location is resolved from Timezone by Validate.
	Location *time.Location `env:"-"`
}

// Load parses the environment into a Config and validates it.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate resolves derived fields and normalizes defaults.
func (c *Config) Validate() error {
	if c.Timezone == "" {
		c.Timezone = "America/Los_Angeles"
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return fmt.Errorf("invalid GAME_TIMEZONE %q: %w", c.Timezone, err)
	}
	c.Location = loc
	if c.SMTPPort <= 0 {
		c.SMTPPort = 587
	}
	return nil
}
