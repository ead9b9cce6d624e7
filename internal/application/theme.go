package application

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"storedash/internal/domain/entities"
	"storedash/internal/ports/input"
	"storedash/internal/ports/output"
)

var _ input.ThemeUseCase = (*ThemeService)(nil)

// ThemeService owns the effective theme of one client. It is the only
// writer of the "theme" preference. An explicit choice always wins over
// color-scheme changes reported by the OS; those only apply while the
// selection is implicit.
type ThemeService struct {
	writeMu sync.Mutex
	mu      sync.RWMutex
	state   entities.Selection[entities.Theme]

	store       *PreferenceStore
	system      output.ColorSchemeSource
	logger      *zap.Logger
	metrics     output.Metrics
	listeners   listeners[entities.Theme]
	unsubscribe func()
}

func NewThemeService(store *PreferenceStore, system output.ColorSchemeSource, logger *zap.Logger, metrics output.Metrics) *ThemeService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &ThemeService{
		state:   entities.Implicit(entities.ThemeLight),
		store:   store,
		system:  system,
		logger:  logger,
		metrics: metrics,
	}
}

// Initialize adopts a stored theme as explicit, or follows the OS color
// scheme. It registers the single OS change listener; Close releases it.
func (s *ThemeService) Initialize(ctx context.Context) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	sel := entities.Implicit(s.system.Current())
	if saved, ok := s.store.Get(ctx, entities.PreferenceTheme); ok {
		if th, err := entities.ParseTheme(saved); err == nil {
			sel = entities.Explicit(th)
		} else {
			s.logger.Warn("ignoring invalid stored theme",
				zap.String("client_id", s.store.ClientID()),
				zap.String("theme", saved))
		}
	}
	s.setState(sel)

	if s.unsubscribe == nil {
		s.unsubscribe = s.system.Subscribe(s.onSystemChange)
	}
}

// Close deregisters the OS listener. Safe to call more than once.
func (s *ThemeService) Close() {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}

func (s *ThemeService) Theme() entities.Theme {
	return s.State().Value()
}

func (s *ThemeService) State() entities.Selection[entities.Theme] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// RootClass is the class set on the document root: exactly one of
// "light" or "dark".
func (s *ThemeService) RootClass() string {
	return s.Theme().String()
}

// ToggleTheme flips light/dark, stores the choice and makes it explicit.
func (s *ThemeService) ToggleTheme(ctx context.Context) entities.Theme {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	next := s.State().Value().Opposite()
	s.setState(entities.Explicit(next))
	s.store.Set(ctx, entities.PreferenceTheme, next.String())
	s.metrics.PreferenceChanged(string(entities.PreferenceTheme), next.String())
	s.listeners.notify(next)
	return next
}

// ResetToSystemTheme forgets the stored choice and follows the OS again.
func (s *ThemeService) ResetToSystemTheme(ctx context.Context) entities.Theme {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.store.Remove(ctx, entities.PreferenceTheme)
	th := s.system.Current()
	s.setState(entities.Implicit(th))
	s.listeners.notify(th)
	return th
}

// Subscribe registers fn to run after every effective theme change.
func (s *ThemeService) Subscribe(fn func(entities.Theme)) (unsubscribe func()) {
	return s.listeners.add(fn)
}

func (s *ThemeService) onSystemChange(th entities.Theme) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	cur := s.State()
	if cur.IsExplicit() {
		s.logger.Debug("os color scheme change ignored, explicit theme set",
			zap.String("client_id", s.store.ClientID()),
			zap.String("os", th.String()),
			zap.String("theme", cur.Value().String()))
		return
	}
	if cur.Value() == th {
		return
	}
	s.setState(entities.Implicit(th))
	s.listeners.notify(th)
}

func (s *ThemeService) setState(sel entities.Selection[entities.Theme]) {
	s.mu.Lock()
	s.state = sel
	s.mu.Unlock()
}
