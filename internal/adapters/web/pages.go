package web

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"storedash/internal/domain/entities"
	"storedash/internal/ports/input"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

var pageTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// Page kinds with dedicated content. Everything else renders its title only.
const (
	kindDashboard     = "dashboard"
	kindAlerts        = "alerts"
	kindSearch        = "search"
	kindSettings      = "settings"
	kindNotifications = "notifications"
	kindPlain         = "plain"
	kindNotFound      = "notFound"
)

type page struct {
	Path     string
	TitleKey string
	Kind     string
}

func (p page) pattern() string {
	if p.Path == "/" {
		return "/{$}"
	}
	return p.Path
}

var pages = []page{
	{Path: "/", TitleKey: "dashboard.title", Kind: kindDashboard},
	{Path: "/sales", TitleKey: "sales.title", Kind: kindPlain},
	{Path: "/sales/new", TitleKey: "sales.newSale", Kind: kindPlain},
	{Path: "/inventory", TitleKey: "inventory.title", Kind: kindPlain},
	{Path: "/inventory/scanner", TitleKey: "inventory.scanner", Kind: kindPlain},
	{Path: "/inventory/replenishment", TitleKey: "inventory.replenishment", Kind: kindPlain},
	{Path: "/finance", TitleKey: "finance.title", Kind: kindPlain},
	{Path: "/finance/new", TitleKey: "finance.newTransaction", Kind: kindPlain},
	{Path: "/purchases", TitleKey: "purchases.title", Kind: kindPlain},
	{Path: "/customers", TitleKey: "customers.title", Kind: kindPlain},
	{Path: "/alerts", TitleKey: "alerts.title", Kind: kindAlerts},
	{Path: "/notifications", TitleKey: "notifications.title", Kind: kindNotifications},
	{Path: "/search", TitleKey: "search.title", Kind: kindSearch},
	{Path: "/settings", TitleKey: "settings.title", Kind: kindSettings},
	{Path: "/activity", TitleKey: "activity.title", Kind: kindPlain},
	{Path: "/menu", TitleKey: "menu.title", Kind: kindPlain},
}

var navigation = []struct {
	Path, Key string
}{
	{"/", "navigation.dashboard"},
	{"/sales", "navigation.sales"},
	{"/inventory", "navigation.inventory"},
	{"/finance", "navigation.finance"},
	{"/customers", "navigation.customers"},
	{"/alerts", "navigation.alerts"},
	{"/settings", "navigation.settings"},
}

type link struct {
	Href   string
	Label  string
	Active bool
}

type localeOption struct {
	Code     string
	Name     string
	Selected bool
}

// pageView is the data behind templates/layout.html.
type pageView struct {
	locale input.LocaleUseCase

	Lang       string
	ThemeClass string
	Path       string
	Kind       string
	Title      string
	Today      string
	Nav        []link

	Stats         input.StatsView
	Periods       []link
	Digest        entities.AlertDigest
	Query         string
	Locales       []localeOption
	ThemeExplicit bool
}

// T translates key in the request's locale.
func (v pageView) T(key string) string { return v.locale.T(key, nil) }

// Tn translates a plural key with count.
func (v pageView) Tn(key string, count int) string {
	return v.locale.T(key, map[string]any{"count": count})
}

// SearchResults is the heading of the search page for Query.
func (v pageView) SearchResults() string {
	return v.locale.T("search.resultsFor", map[string]any{"query": v.Query})
}

func (h *Handler) newView(r *http.Request, sess *Session, p page) pageView {
	today, err := sess.Locale.FormatDate(time.Now())
	if err != nil {
		today = ""
	}
	v := pageView{
		locale:     sess.Locale,
		Lang:       sess.Locale.Current(),
		ThemeClass: sess.Theme.RootClass(),
		Path:       r.URL.Path,
		Kind:       p.Kind,
		Title:      sess.Locale.T(p.TitleKey, nil),
		Today:      today,
	}
	for _, n := range navigation {
		v.Nav = append(v.Nav, link{Href: n.Path, Label: sess.Locale.T(n.Key, nil), Active: n.Path == p.Path})
	}
	return v
}

func (h *Handler) pageHandler(p page) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, _ := SessionFrom(r.Context())
		v := h.newView(r, sess, p)

		switch p.Kind {
		case kindDashboard:
			period, err := entities.ParsePeriod(r.URL.Query().Get("period"))
			if err != nil {
				period = entities.PeriodToday
			}
			stats, err := h.stats.Present(r.Context(), sess.Locale, period)
			if err != nil {
				h.logger.Error("stats unavailable", zap.Error(err))
				h.renderError(w, r, sess)
				return
			}
			v.Stats = stats
			for _, pp := range entities.Periods() {
				v.Periods = append(v.Periods, link{
					Href:   "/?period=" + string(pp),
					Label:  sess.Locale.T("common.periods."+string(pp), nil),
					Active: pp == period,
				})
			}
			if d, err := h.alerts.Digest(r.Context(), sess.Locale); err == nil {
				v.Digest = d
			}
		case kindAlerts:
			d, err := h.alerts.Digest(r.Context(), sess.Locale)
			if err != nil {
				h.logger.Error("alerts unavailable", zap.Error(err))
				h.renderError(w, r, sess)
				return
			}
			v.Digest = d
		case kindSearch:
			v.Query = strings.TrimSpace(r.URL.Query().Get("q"))
		case kindSettings:
			cur := sess.Locale.Current()
			for _, l := range sess.Locale.AvailableLocales() {
				v.Locales = append(v.Locales, localeOption{Code: l.Code, Name: l.Name, Selected: l.Code == cur})
			}
			v.ThemeExplicit = sess.Theme.State().IsExplicit()
		}
		h.render(w, http.StatusOK, v)
	}
}

func (h *Handler) handleNotFound(w http.ResponseWriter, r *http.Request) {
	sess, _ := SessionFrom(r.Context())
	h.render(w, http.StatusNotFound, h.newView(r, sess, page{TitleKey: "errors.notFound", Kind: kindNotFound}))
}

func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, sess *Session) {
	h.render(w, http.StatusInternalServerError, h.newView(r, sess, page{TitleKey: "errors.general", Kind: kindNotFound}))
}

func (h *Handler) render(w http.ResponseWriter, status int, v pageView) {
	var buf bytes.Buffer
	if err := h.pages.ExecuteTemplate(&buf, "layout.html", v); err != nil {
		h.logger.Error("template render failed", zap.String("kind", v.Kind), zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// POST /settings/locale
func (h *Handler) handleSettingsLocale(w http.ResponseWriter, r *http.Request) {
	sess, _ := SessionFrom(r.Context())
	if err := sess.Locale.SetLocale(r.Context(), r.PostFormValue("locale")); err != nil {
		h.logger.Debug("settings locale rejected", zap.String("client_id", sess.ID), zap.Error(err))
		v := h.newView(r, sess, page{Path: "/settings", TitleKey: "errors.validation", Kind: kindNotFound})
		h.render(w, http.StatusBadRequest, v)
		return
	}
	redirectBack(w, r)
}

// POST /settings/theme/toggle
func (h *Handler) handleSettingsToggleTheme(w http.ResponseWriter, r *http.Request) {
	sess, _ := SessionFrom(r.Context())
	sess.Theme.ToggleTheme(r.Context())
	redirectBack(w, r)
}

// POST /settings/theme/reset
func (h *Handler) handleSettingsResetTheme(w http.ResponseWriter, r *http.Request) {
	sess, _ := SessionFrom(r.Context())
	sess.Theme.ResetToSystemTheme(r.Context())
	redirectBack(w, r)
}

// redirectBack sends the browser to the local path in the "return" form
// field, or to /settings.
func redirectBack(w http.ResponseWriter, r *http.Request) {
	target := "/settings"
	if ret := r.PostFormValue("return"); ret != "" {
		if u, err := url.Parse(ret); err == nil && u.Scheme == "" && u.Host == "" && strings.HasPrefix(u.Path, "/") &&
			!strings.HasPrefix(ret, "//") && !strings.HasPrefix(ret, "/\\") {
			target = u.RequestURI()
		}
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
