package web

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"storedash/internal/domain"
	"storedash/internal/domain/entities"
)

// maxRequestBodySize limits JSON request bodies.
const maxRequestBodySize = 1 << 16

type selectionJSON struct {
	Value  string `json:"value"`
	Source string `json:"source"`
}

type preferencesJSON struct {
	Locale           selectionJSON               `json:"locale"`
	Theme            selectionJSON               `json:"theme"`
	RootClass        string                      `json:"rootClass"`
	Currency         string                      `json:"currency"`
	AvailableLocales []entities.LocaleDescriptor `json:"availableLocales"`
}

type errorJSON struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func preferencesOf(s *Session) preferencesJSON {
	loc := s.Locale.State()
	th := s.Theme.State()
	return preferencesJSON{
		Locale:           selectionJSON{Value: loc.Value(), Source: loc.Source().String()},
		Theme:            selectionJSON{Value: th.Value().String(), Source: th.Source().String()},
		RootClass:        s.Theme.RootClass(),
		Currency:         s.Locale.Currency(),
		AvailableLocales: s.Locale.AvailableLocales(),
	}
}

// GET /api/preferences
func (h *Handler) handleGetPreferences(w http.ResponseWriter, r *http.Request) {
	sess, _ := SessionFrom(r.Context())
	writeJSON(w, http.StatusOK, preferencesOf(sess))
}

// PUT /api/preferences/locale
func (h *Handler) handleSetLocale(w http.ResponseWriter, r *http.Request) {
	sess, _ := SessionFrom(r.Context())

	var body struct {
		Locale string `json:"locale"`
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, errorJSON{
			Error: sess.Locale.T("errors.validation", nil),
			Code:  "invalid_request",
		})
		return
	}
	if err := sess.Locale.SetLocale(r.Context(), body.Locale); err != nil {
		h.writeError(w, sess, err)
		return
	}
	writeJSON(w, http.StatusOK, preferencesOf(sess))
}

// POST /api/preferences/theme/toggle
func (h *Handler) handleToggleTheme(w http.ResponseWriter, r *http.Request) {
	sess, _ := SessionFrom(r.Context())
	sess.Theme.ToggleTheme(r.Context())
	writeJSON(w, http.StatusOK, preferencesOf(sess))
}

// DELETE /api/preferences/theme
func (h *Handler) handleResetTheme(w http.ResponseWriter, r *http.Request) {
	sess, _ := SessionFrom(r.Context())
	sess.Theme.ResetToSystemTheme(r.Context())
	writeJSON(w, http.StatusOK, preferencesOf(sess))
}

// GET /api/stats?period=today|week|month
func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	sess, _ := SessionFrom(r.Context())
	period, err := entities.ParsePeriod(r.URL.Query().Get("period"))
	if err != nil {
		h.writeError(w, sess, err)
		return
	}
	view, err := h.stats.Present(r.Context(), sess.Locale, period)
	if err != nil {
		h.writeError(w, sess, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

type alertsJSON struct {
	Summary  string           `json:"summary"`
	Critical int              `json:"critical"`
	Lines    []string         `json:"lines"`
	Alerts   []entities.Alert `json:"alerts"`
}

// GET /api/alerts
func (h *Handler) handleAlerts(w http.ResponseWriter, r *http.Request) {
	sess, _ := SessionFrom(r.Context())
	alerts, err := h.alerts.List(r.Context())
	if err != nil {
		h.writeError(w, sess, err)
		return
	}
	digest, err := h.alerts.Digest(r.Context(), sess.Locale)
	if err != nil {
		h.writeError(w, sess, err)
		return
	}
	writeJSON(w, http.StatusOK, alertsJSON{
		Summary:  digest.Summary,
		Critical: digest.Critical,
		Lines:    digest.Lines,
		Alerts:   alerts,
	})
}

// POST /api/alerts/dispatch
func (h *Handler) handleDispatchAlerts(w http.ResponseWriter, r *http.Request) {
	sess, _ := SessionFrom(r.Context())
	n, err := h.alerts.Dispatch(r.Context(), sess.Locale)
	if err != nil {
		h.logger.Warn("alert dispatch failed", zap.Error(err))
		writeJSON(w, http.StatusBadGateway, errorJSON{
			Error: sess.Locale.T("errors.general", nil),
			Code:  "dispatch_failed",
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"dispatched": n})
}

// GET /healthz
func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// writeError maps validation errors to 400 and everything else to 500, with
// a message in the session's locale.
func (h *Handler) writeError(w http.ResponseWriter, sess *Session, err error) {
	if domain.IsValidation(err) {
		writeJSON(w, http.StatusBadRequest, errorJSON{
			Error: sess.Locale.T("errors.validation", nil),
			Code:  domain.Code(err),
		})
		return
	}
	h.logger.Error("request failed", zap.String("client_id", sess.ID), zap.Error(err))
	writeJSON(w, http.StatusInternalServerError, errorJSON{
		Error: sess.Locale.T("errors.general", nil),
		Code:  "internal",
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
