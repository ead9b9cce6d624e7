package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configVars = []string{
	"HTTP_ADDR", "PREFERENCE_BACKEND", "SQLITE_PATH", "DATABASE_URL",
	"STATS_SOURCE", "DAILY_GOAL", "DEFAULT_LOCALE", "DISPLAY_TIMEZONE",
	"TRANSLATIONS_DIR", "SESSION_IDLE_TIMEOUT", "LOG_LEVEL",
	"DISCORD_TOKEN", "DISCORD_ALERT_CHANNEL_ID", "ALERT_DIGEST_INTERVAL",
}

// clearEnv blanks every variable Load reads; env treats "" as unset for
// envDefault.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configVars {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, BackendSQLite, cfg.PreferenceBackend)
	assert.Equal(t, "storedash.db", cfg.SQLitePath)
	assert.Equal(t, StatsSimulated, cfg.StatsSource)
	assert.Equal(t, 5000.0, cfg.DailyGoal)
	assert.Equal(t, "pt-BR", cfg.DefaultLocale)
	assert.Equal(t, 30*time.Minute, cfg.SessionIdleTimeout)
	assert.Equal(t, "America/Sao_Paulo", cfg.Location().String())
	assert.False(t, cfg.DiscordEnabled())
	assert.Zero(t, cfg.AlertDigestInterval)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PREFERENCE_BACKEND", "Postgres")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/storedash?sslmode=disable")
	t.Setenv("STATS_SOURCE", "database")
	t.Setenv("DAILY_GOAL", "1200.5")
	t.Setenv("DEFAULT_LOCALE", "en")
	t.Setenv("DISPLAY_TIMEZONE", "UTC")
	t.Setenv("SESSION_IDLE_TIMEOUT", "5m")
	t.Setenv("DISCORD_TOKEN", "secret")
	t.Setenv("DISCORD_ALERT_CHANNEL_ID", "123456789")
	t.Setenv("ALERT_DIGEST_INTERVAL", "1h")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, BackendPostgres, cfg.PreferenceBackend)
	assert.Equal(t, StatsDatabase, cfg.StatsSource)
	assert.Equal(t, 1200.5, cfg.DailyGoal)
	assert.Equal(t, "en", cfg.DefaultLocale)
	assert.Equal(t, time.UTC, cfg.Location())
	assert.Equal(t, 5*time.Minute, cfg.SessionIdleTimeout)
	assert.True(t, cfg.DiscordEnabled())
	assert.Equal(t, time.Hour, cfg.AlertDigestInterval)
}

func TestLoad_TranslationsDir(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Setenv("TRANSLATIONS_DIR", dir)
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.TranslationsDir)

	t.Setenv("TRANSLATIONS_DIR", filepath.Join(dir, "missing"))
	_, err = Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: TRANSLATIONS_DIR")

	file := filepath.Join(dir, "active.en.toml")
	require.NoError(t, os.WriteFile(file, nil, 0o644))
	t.Setenv("TRANSLATIONS_DIR", file)
	_, err = Load()
	assert.ErrorContains(t, err, "is not a directory")
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]map[string]string{
		"unknown backend":       {"PREFERENCE_BACKEND": "redis"},
		"postgres without url":  {"PREFERENCE_BACKEND": "postgres"},
		"url without host":      {"PREFERENCE_BACKEND": "postgres", "DATABASE_URL": "storedash"},
		"database stats no url": {"STATS_SOURCE": "database"},
		"unknown stats source":  {"STATS_SOURCE": "random"},
		"unsupported locale":    {"DEFAULT_LOCALE": "fr"},
		"bad timezone":          {"DISPLAY_TIMEZONE": "Mars/Olympus"},
		"negative goal":         {"DAILY_GOAL": "-1"},
		"bad goal":              {"DAILY_GOAL": "lots"},
		"zero idle timeout":     {"SESSION_IDLE_TIMEOUT": "0s"},
		"negative digest":       {"ALERT_DIGEST_INTERVAL": "-1m"},
		"token without channel": {"DISCORD_TOKEN": "secret"},
		"channel not numeric":   {"DISCORD_TOKEN": "secret", "DISCORD_ALERT_CHANNEL_ID": "alerts"},
	}
	for name, vars := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range vars {
				t.Setenv(k, v)
			}
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "config:")
		})
	}
}
