package application

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/language"

	"storedash/internal/domain"
	"storedash/internal/domain/entities"
	"storedash/internal/ports/input"
	"storedash/internal/ports/output"
	"storedash/pkg/localefmt"
)

var _ input.LocaleUseCase = (*LocaleService)(nil)

// LocaleConfig holds the LocaleService collaborators that are shared by all
// clients.
type LocaleConfig struct {
	// DefaultLocale is used when the runtime language is unsupported.
	DefaultLocale string
	// Location is the zone dates are rendered in.
	Location *time.Location
	Logger   *zap.Logger
	Metrics  output.Metrics
}

// LocaleService owns the active locale of one client. It is the only writer
// of the "locale" preference.
type LocaleService struct {
	writeMu sync.Mutex // serializes updates so listeners see them in order
	mu      sync.RWMutex
	state   entities.Selection[string]

	store      *PreferenceStore
	translator output.T
	defaultLoc string
	location   *time.Location
	logger     *zap.Logger
	metrics    output.Metrics
	listeners  listeners[string]
}

func NewLocaleService(store *PreferenceStore, translator output.T, cfg LocaleConfig) *LocaleService {
	if !entities.IsSupportedLocale(cfg.DefaultLocale) {
		cfg.DefaultLocale = entities.DefaultLocale
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Metrics == nil {
		cfg.Metrics = nopMetrics{}
	}
	return &LocaleService{
		state:      entities.Implicit(cfg.DefaultLocale),
		store:      store,
		translator: translator,
		defaultLoc: cfg.DefaultLocale,
		location:   cfg.Location,
		logger:     cfg.Logger,
		metrics:    cfg.Metrics,
	}
}

// Initialize derives the implicit locale from the runtime-reported
// languages (Accept-Language values or plain tags) and then adopts a stored,
// supported preference as explicit.
func (s *LocaleService) Initialize(ctx context.Context, runtimeLanguages ...string) {
	sel := entities.Implicit(s.matchRuntime(runtimeLanguages))

	if saved, ok := s.store.Get(ctx, entities.PreferenceLocale); ok {
		if entities.IsSupportedLocale(saved) {
			sel = entities.Explicit(saved)
		} else {
			s.logger.Warn("ignoring unsupported stored locale",
				zap.String("client_id", s.store.ClientID()),
				zap.String("locale", saved))
		}
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	s.mu.Lock()
	s.state = sel
	s.mu.Unlock()
}

var supportedTags = func() []language.Tag {
	locales := entities.SupportedLocales()
	tags := make([]language.Tag, len(locales))
	for i, l := range locales {
		tags[i] = language.MustParse(l.Code)
	}
	return tags
}()

var localeMatcher = language.NewMatcher(supportedTags)

func (s *LocaleService) matchRuntime(values []string) string {
	var tags []language.Tag
	for _, v := range values {
		parsed, _, err := language.ParseAcceptLanguage(v)
		if err != nil {
			continue
		}
		tags = append(tags, parsed...)
	}
	if len(tags) == 0 {
		return s.defaultLoc
	}
	_, idx, conf := localeMatcher.Match(tags...)
	if conf == language.No {
		return s.defaultLoc
	}
	return entities.SupportedLocales()[idx].Code
}

// Current returns the active locale code.
func (s *LocaleService) Current() string {
	return s.State().Value()
}

// State returns the active locale with its origin.
func (s *LocaleService) State() entities.Selection[string] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// SetLocale switches to code, persists it and notifies subscribers.
// Codes outside the supported list are rejected with
// domain.ErrUnsupportedLocale and change nothing.
func (s *LocaleService) SetLocale(ctx context.Context, code string) error {
	if !entities.IsSupportedLocale(code) {
		return fmt.Errorf("set locale %q: %w", code, domain.ErrUnsupportedLocale)
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	s.state = entities.Explicit(code)
	s.mu.Unlock()

	s.store.Set(ctx, entities.PreferenceLocale, code)
	s.metrics.PreferenceChanged(string(entities.PreferenceLocale), code)
	s.listeners.notify(code)
	return nil
}

// Subscribe registers fn to run after every locale change.
func (s *LocaleService) Subscribe(fn func(code string)) (unsubscribe func()) {
	return s.listeners.add(fn)
}

// AvailableLocales returns the supported locale list.
func (s *LocaleService) AvailableLocales() []entities.LocaleDescriptor {
	return entities.SupportedLocales()
}

// Currency returns the ISO code amounts are shown in for the active locale.
func (s *LocaleService) Currency() string {
	return entities.CurrencyForLocale(s.Current())
}

// FormatCurrency renders amount in the active locale's currency.
func (s *LocaleService) FormatCurrency(amount float64) string {
	cur := s.Current()
	return localefmt.FormatCurrency(cur, entities.CurrencyForLocale(cur), amount)
}

// FormatDate renders t as a long-form date in the display time zone.
func (s *LocaleService) FormatDate(t time.Time) (string, error) {
	out, err := localefmt.FormatLongDate(s.Current(), t, s.location)
	if err != nil {
		return "", fmt.Errorf("format date: %w", domain.ErrInvalidDate)
	}
	return out, nil
}

// FormatDateString parses an ISO date or RFC 3339 timestamp and renders it
// like FormatDate.
func (s *LocaleService) FormatDateString(value string) (string, error) {
	t, err := localefmt.ParseDate(value, s.location)
	if err != nil {
		return "", fmt.Errorf("format date %q: %w", value, errors.Join(domain.ErrInvalidDate, err))
	}
	return s.FormatDate(t)
}

// FormatRelative renders how long ago t was, e.g. "5 minutes ago".
func (s *LocaleService) FormatRelative(now, t time.Time) string {
	e := localefmt.Since(now, t)
	switch e.Unit {
	case localefmt.ElapsedNow:
		return s.T("common.time.now", nil)
	case localefmt.ElapsedMinutes:
		return s.T("common.time.minutesAgo", map[string]any{"count": e.Count})
	case localefmt.ElapsedHours:
		return s.T("common.time.hoursAgo", map[string]any{"count": e.Count})
	case localefmt.ElapsedYesterday:
		return s.T("common.time.yesterday", nil)
	default:
		return s.T("common.time.daysAgo", map[string]any{"count": e.Count})
	}
}

// T resolves key in the active locale.
func (s *LocaleService) T(key string, params map[string]any) string {
	return s.translator.T(s.Current(), key, params)
}
