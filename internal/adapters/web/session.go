package web

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"storedash/internal/application"
	"storedash/internal/domain/entities"
	"storedash/internal/infrastructure/observability"
	"storedash/internal/ports/output"
)

// ClientCookie identifies a browser across requests.
const ClientCookie = "storedash_client"

const clientCookieMaxAge = 365 * 24 * time.Hour

// Session is the per-browser state: one locale context and one theme
// context sharing a preference store.
type Session struct {
	ID     string
	Locale *application.LocaleService
	Theme  *application.ThemeService
	Scheme *ClientHintScheme

	mu       sync.Mutex
	lastSeen time.Time
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen)
}

// SessionConfig holds what every new session is built from.
type SessionConfig struct {
	Repo        output.PreferenceRepository
	Translator  output.T
	Locale      application.LocaleConfig
	IdleTimeout time.Duration
	Logger      *zap.Logger
	Metrics     *observability.Metrics
}

// Sessions is the registry of live sessions keyed by client ID.
type Sessions struct {
	cfg SessionConfig
	now func() time.Time

	mu   sync.Mutex
	byID map[string]*Session
}

func NewSessions(cfg SessionConfig) *Sessions {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.IdleTimeout <= 0 {
		cfg.IdleTimeout = 30 * time.Minute
	}
	return &Sessions{cfg: cfg, now: time.Now, byID: make(map[string]*Session)}
}

// Acquire returns the session of the requesting browser, issuing a client
// cookie and building the session on first sight. The color-scheme hint of
// every request is fed to the session's scheme source.
func (s *Sessions) Acquire(w http.ResponseWriter, r *http.Request) *Session {
	id := clientID(r)
	if id == "" {
		id = uuid.NewString()
		http.SetCookie(w, &http.Cookie{
			Name:     ClientCookie,
			Value:    id,
			Path:     "/",
			MaxAge:   int(clientCookieMaxAge.Seconds()),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
			Secure:   r.TLS != nil,
		})
	}

	hint := r.Header.Get(HeaderPrefersColorScheme)
	now := s.now()

	s.mu.Lock()
	sess, ok := s.byID[id]
	s.mu.Unlock()
	if !ok {
		sess = s.insert(s.build(r.Context(), id, r.Header.Get("Accept-Language"), hint))
	}

	sess.touch(now)
	sess.Scheme.Observe(hint)
	return sess
}

func clientID(r *http.Request) string {
	c, err := r.Cookie(ClientCookie)
	if err != nil {
		return ""
	}
	if _, err := uuid.Parse(c.Value); err != nil {
		return ""
	}
	return c.Value
}

func (s *Sessions) build(ctx context.Context, id, acceptLanguage, hint string) *Session {
	store := application.NewPreferenceStore(s.cfg.Repo, id, s.cfg.Logger, s.cfg.Metrics)

	locale := application.NewLocaleService(store, s.cfg.Translator, s.cfg.Locale)
	locale.Initialize(ctx, acceptLanguage)

	os, ok := ParseColorSchemeHint(hint)
	if !ok {
		os = entities.ThemeLight
	}
	scheme := NewClientHintScheme(os)
	theme := application.NewThemeService(store, scheme, s.cfg.Logger, s.cfg.Metrics)
	theme.Initialize(ctx)

	s.cfg.Logger.Debug("session created",
		zap.String("client_id", id),
		zap.String("locale", locale.Current()),
		zap.String("theme", theme.RootClass()))
	return &Session{ID: id, Locale: locale, Theme: theme, Scheme: scheme}
}

// insert registers built unless a concurrent request for the same client
// got there first, in which case built is closed and the winner returned.
func (s *Sessions) insert(built *Session) *Session {
	s.mu.Lock()
	existing, ok := s.byID[built.ID]
	if !ok {
		s.byID[built.ID] = built
		s.cfg.Metrics.SetActiveSessions(len(s.byID))
	}
	s.mu.Unlock()

	if ok {
		built.Theme.Close()
		return existing
	}
	return built
}

// Len returns the number of live sessions.
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.byID)
}

// Sweep drops sessions idle for longer than the idle timeout and releases
// their OS listeners. It returns how many were dropped.
func (s *Sessions) Sweep(now time.Time) int {
	var expired []*Session
	s.mu.Lock()
	for id, sess := range s.byID {
		if sess.idleSince(now) > s.cfg.IdleTimeout {
			expired = append(expired, sess)
			delete(s.byID, id)
		}
	}
	s.cfg.Metrics.SetActiveSessions(len(s.byID))
	s.mu.Unlock()

	for _, sess := range expired {
		sess.Theme.Close()
	}
	if len(expired) > 0 {
		s.cfg.Logger.Debug("idle sessions swept", zap.Int("count", len(expired)))
	}
	return len(expired)
}

// Run sweeps idle sessions until ctx is done, then closes the rest.
func (s *Sessions) Run(ctx context.Context) error {
	interval := s.cfg.IdleTimeout / 2
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			s.closeAll()
			return nil
		case <-ticker.C:
			s.Sweep(s.now())
		}
	}
}

func (s *Sessions) closeAll() {
	s.mu.Lock()
	all := make([]*Session, 0, len(s.byID))
	for id, sess := range s.byID {
		all = append(all, sess)
		delete(s.byID, id)
	}
	s.cfg.Metrics.SetActiveSessions(0)
	s.mu.Unlock()
	for _, sess := range all {
		sess.Theme.Close()
	}
}

type sessionKey struct{}

func withSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// SessionFrom returns the session attached by the session middleware.
func SessionFrom(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(*Session)
	return s, ok
}
