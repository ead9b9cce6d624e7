package web

import (
	"html/template"
	"net/http"

	"go.uber.org/zap"

	"storedash/internal/infrastructure/observability"
	"storedash/internal/ports/input"
)

// Handler serves the dashboard pages and the preference API.
type Handler struct {
	sessions *Sessions
	stats    input.StatsUseCase
	alerts   input.AlertUseCase
	metrics  *observability.Metrics
	logger   *zap.Logger
	pages    *template.Template
}

// NewHandler creates a Handler.
func NewHandler(sessions *Sessions, stats input.StatsUseCase, alerts input.AlertUseCase, metrics *observability.Metrics, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		sessions: sessions,
		stats:    stats,
		alerts:   alerts,
		metrics:  metrics,
		logger:   logger,
		pages:    pageTemplates,
	}
}

// Routes returns the complete HTTP surface:
//
//	GET    <page paths>                 HTML pages, unknown paths render 404
//	POST   /settings/locale             form: locale
//	POST   /settings/theme/toggle
//	POST   /settings/theme/reset
//	GET    /api/preferences
//	PUT    /api/preferences/locale      {"locale": "en"}
//	POST   /api/preferences/theme/toggle
//	DELETE /api/preferences/theme
//	GET    /api/stats?period=
//	GET    /api/alerts
//	POST   /api/alerts/dispatch
//	GET    /static/app.css
//	GET    /healthz
//	GET    /metrics
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()

	for _, p := range pages {
		mux.HandleFunc("GET "+p.pattern(), h.withSession(h.pageHandler(p)))
	}
	mux.HandleFunc("/", h.withSession(h.handleNotFound))

	mux.HandleFunc("POST /settings/locale", h.withSession(h.handleSettingsLocale))
	mux.HandleFunc("POST /settings/theme/toggle", h.withSession(h.handleSettingsToggleTheme))
	mux.HandleFunc("POST /settings/theme/reset", h.withSession(h.handleSettingsResetTheme))

	mux.HandleFunc("GET /api/preferences", h.withSession(h.handleGetPreferences))
	mux.HandleFunc("PUT /api/preferences/locale", h.withSession(h.handleSetLocale))
	mux.HandleFunc("POST /api/preferences/theme/toggle", h.withSession(h.handleToggleTheme))
	mux.HandleFunc("DELETE /api/preferences/theme", h.withSession(h.handleResetTheme))
	mux.HandleFunc("GET /api/stats", h.withSession(h.handleStats))
	mux.HandleFunc("GET /api/alerts", h.withSession(h.handleAlerts))
	mux.HandleFunc("POST /api/alerts/dispatch", h.withSession(h.handleDispatchAlerts))

	mux.Handle("GET /static/", http.FileServerFS(staticFS))
	mux.HandleFunc("GET /healthz", h.handleHealth)
	mux.Handle("GET /metrics", h.metrics.Handler())

	return h.observe(mux)
}
