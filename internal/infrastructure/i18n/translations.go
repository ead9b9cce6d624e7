package i18n

import (
	"embed"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"storedash/internal/ports/output"
)

//go:embed active.*.toml
var localeFS embed.FS

// Ensure Translator implements the output.T port.
var _ output.T = (*Translator)(nil)

// Translator is a thin wrapper around go-i18n's Bundle/Localizer.
type Translator struct {
	mu       sync.RWMutex
	bundle   *i18n.Bundle
	fallback language.Tag
	dir      string
	logger   *zap.Logger
	metrics  output.Metrics
}

// Option configures a Translator.
type Option func(*Translator)

func WithLogger(l *zap.Logger) Option { return func(t *Translator) { t.logger = l } }

func WithMetrics(m output.Metrics) Option { return func(t *Translator) { t.metrics = m } }

// WithOverrideDir loads *.toml / *.yaml message files from dir on top of
// the embedded tables. Files follow the active.<locale>.<ext> naming.
func WithOverrideDir(dir string) Option { return func(t *Translator) { t.dir = dir } }

// NewTranslator builds a Translator backed by go-i18n using the given
// fallback locale (e.g. "pt-BR"). Lookups that miss in the requested locale
// are retried in the fallback table before giving up.
func NewTranslator(fallbackLocale string, opts ...Option) *Translator {
	tag, err := language.Parse(fallbackLocale)
	if err != nil {
		tag = language.BrazilianPortuguese
	}
	t := &Translator{fallback: tag, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(t)
	}
	t.bundle = t.load()
	return t
}

// Reload rebuilds the bundle from the embedded tables and the override dir.
func (t *Translator) Reload() {
	b := t.load()
	t.mu.Lock()
	t.bundle = b
	t.mu.Unlock()
}

func (t *Translator) load() *i18n.Bundle {
	bundle := i18n.NewBundle(t.fallback)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
	bundle.RegisterUnmarshalFunc("yml", yaml.Unmarshal)

	files, _ := fs.Glob(localeFS, "active.*.toml")
	for _, file := range files {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			t.logger.Error("i18n: failed to load embedded table", zap.String("file", file), zap.Error(err))
		}
	}

	if t.dir == "" {
		return bundle
	}
	entries, err := os.ReadDir(t.dir)
	if err != nil {
		t.logger.Warn("i18n: override dir unreadable", zap.String("dir", t.dir), zap.Error(err))
		return bundle
	}
	for _, e := range entries {
		if e.IsDir() || !isMessageFile(e.Name()) {
			continue
		}
		path := filepath.Join(t.dir, e.Name())
		if _, err := bundle.LoadMessageFile(path); err != nil {
			t.logger.Warn("i18n: failed to load override", zap.String("file", path), zap.Error(err))
		}
	}
	return bundle
}

func isMessageFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".toml", ".yaml", ".yml":
		return true
	}
	return false
}

func (t *Translator) current() *i18n.Bundle {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.bundle
}

// T renders the message identified by key for the given locale.
// If the key/locale is not found, it falls back to the fallback locale,
// then finally to the key itself so rendering never blocks on a missing
// translation. Misses are logged and counted.
func (t *Translator) T(locale, key string, data map[string]any) string {
	if key == "" {
		return ""
	}

	languages := []string{}
	if locale != "" {
		languages = append(languages, locale)
	}
	languages = append(languages, t.fallback.String())

	localizer := i18n.NewLocalizer(t.current(), languages...)
	cfg := &i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	}
	if count, ok := pluralCount(data); ok {
		cfg.PluralCount = pluralSelector(count)
	}

	msg, err := localizer.Localize(cfg)
	if err != nil && cfg.PluralCount != nil {
		// messages without plural variants only carry "other"
		cfg.PluralCount = nil
		msg, err = localizer.Localize(cfg)
	}
	if err == nil && strings.Contains(msg, noValue) {
		err = errMissingTemplateData
	}
	if err != nil {
		var notFound *i18n.MessageNotFoundErr
		if errors.As(err, &notFound) {
			t.logger.Warn("i18n: missing translation key",
				zap.String("key", key),
				zap.Strings("locales", languages))
		} else {
			t.logger.Warn("i18n: localize failed",
				zap.String("key", key),
				zap.Strings("locales", languages),
				zap.Error(err))
		}
		if t.metrics != nil {
			t.metrics.TranslationMiss(locale)
		}
		return key
	}
	return msg
}

// noValue is what text/template prints for a parameter absent from the
// template data, e.g. a plural message looked up without "count".
const noValue = "<no value>"

var errMissingTemplateData = errors.New("message references parameters missing from the template data")

// pluralCount extracts a numeric "count" parameter.
func pluralCount(data map[string]any) (float64, bool) {
	v, ok := data["count"]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

// pluralSelector maps count onto the simplified two-form rule: exactly 1 is
// singular, everything else (0, fractions, negatives) is plural. The value
// handed to go-i18n is chosen so that both shipped locales resolve it to
// "one" and "other" respectively; CLDR categories are deliberately not used
// (pt would otherwise treat 0 as singular).
func pluralSelector(count float64) int {
	if count == 1 {
		return 1
	}
	return 2
}
