package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"storedash/internal/domain/entities"
	"storedash/pkg/tz"
)

// Preference backends.
const (
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

// Stats sources.
const (
	StatsSimulated = "simulated"
	StatsDatabase  = "database"
)

type Config struct {
	HTTPAddr           string        `env:"HTTP_ADDR" envDefault:":8080"`
	PreferenceBackend  string        `env:"PREFERENCE_BACKEND" envDefault:"sqlite"`
	SQLitePath         string        `env:"SQLITE_PATH" envDefault:"storedash.db"`
	DatabaseURL        string        `env:"DATABASE_URL"`
	StatsSource        string        `env:"STATS_SOURCE" envDefault:"simulated"`
	DailyGoal          float64       `env:"DAILY_GOAL" envDefault:"5000"`
	DefaultLocale      string        `env:"DEFAULT_LOCALE" envDefault:"pt-BR"`
	DisplayTimezone    string        `env:"DISPLAY_TIMEZONE" envDefault:"America/Sao_Paulo"`
	TranslationsDir    string        `env:"TRANSLATIONS_DIR"`
	SessionIdleTimeout time.Duration `env:"SESSION_IDLE_TIMEOUT" envDefault:"30m"`
	LogLevel           string        `env:"LOG_LEVEL" envDefault:"info"`
	DiscordToken       string        `env:"DISCORD_TOKEN"`
	AlertChannelID     string        `env:"DISCORD_ALERT_CHANNEL_ID"`
	// AlertDigestInterval schedules digests to the notifier; 0 disables it.
	AlertDigestInterval time.Duration `env:"ALERT_DIGEST_INTERVAL" envDefault:"0"`

	location *time.Location
}

// Load reads the configuration from the environment (and an optional .env
// file) and validates it.
func Load() (*Config, error) {
	// .env is optional when variables come from the environment (Docker, CI, ...).
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Location is DisplayTimezone resolved by validate.
func (c *Config) Location() *time.Location {
	if c.location == nil {
		return time.UTC
	}
	return c.location
}

// DiscordEnabled reports whether alert digests go to Discord.
func (c *Config) DiscordEnabled() bool {
	return c.DiscordToken != "" && c.AlertChannelID != ""
}

func (c *Config) validate() error {
	c.PreferenceBackend = strings.ToLower(strings.TrimSpace(c.PreferenceBackend))
	switch c.PreferenceBackend {
	case BackendMemory, BackendPostgres:
	case BackendSQLite:
		if strings.TrimSpace(c.SQLitePath) == "" {
			return fmt.Errorf("config: SQLITE_PATH is required for the sqlite backend")
		}
	default:
		return fmt.Errorf("config: PREFERENCE_BACKEND must be memory, sqlite or postgres, got %q", c.PreferenceBackend)
	}

	c.StatsSource = strings.ToLower(strings.TrimSpace(c.StatsSource))
	switch c.StatsSource {
	case StatsSimulated, StatsDatabase:
	default:
		return fmt.Errorf("config: STATS_SOURCE must be simulated or database, got %q", c.StatsSource)
	}

	if c.PreferenceBackend == BackendPostgres || c.StatsSource == StatsDatabase {
		if err := validateDatabaseURL(c.DatabaseURL); err != nil {
			return err
		}
	}

	if c.DailyGoal < 0 {
		return fmt.Errorf("config: DAILY_GOAL must not be negative")
	}
	if !entities.IsSupportedLocale(c.DefaultLocale) {
		return fmt.Errorf("config: DEFAULT_LOCALE %q is not supported", c.DefaultLocale)
	}
	if c.SessionIdleTimeout <= 0 {
		return fmt.Errorf("config: SESSION_IDLE_TIMEOUT must be positive")
	}
	if c.AlertDigestInterval < 0 {
		return fmt.Errorf("config: ALERT_DIGEST_INTERVAL must not be negative")
	}

	if c.TranslationsDir != "" {
		info, err := os.Stat(c.TranslationsDir)
		if err != nil {
			return fmt.Errorf("config: TRANSLATIONS_DIR: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("config: TRANSLATIONS_DIR %q is not a directory", c.TranslationsDir)
		}
	}

	loc, err := tz.Load(c.DisplayTimezone)
	if err != nil {
		return fmt.Errorf("config: DISPLAY_TIMEZONE: %w", err)
	}
	c.location = loc

	if (c.DiscordToken == "") != (c.AlertChannelID == "") {
		return fmt.Errorf("config: DISCORD_TOKEN and DISCORD_ALERT_CHANNEL_ID must be set together")
	}
	for _, r := range c.AlertChannelID {
		if r < '0' || r > '9' {
			return fmt.Errorf("config: DISCORD_ALERT_CHANNEL_ID must be a Discord channel ID (digits only)")
		}
	}
	return nil
}

func validateDatabaseURL(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return fmt.Errorf("config: DATABASE_URL is required for the postgres backend and the database stats source")
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("config: invalid DATABASE_URL: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: invalid DATABASE_URL: missing scheme or host")
	}
	return nil
}
