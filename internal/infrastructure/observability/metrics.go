package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"storedash/internal/ports/output"
)

var _ output.Metrics = (*Metrics)(nil)

// Metrics groups the counters the dashboard exports. A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	registry           *prometheus.Registry
	translationMisses  *prometheus.CounterVec
	preferenceFailures *prometheus.CounterVec
	preferenceChanges  *prometheus.CounterVec
	alertsDispatched   prometheus.Counter
	httpRequests       *prometheus.CounterVec
	httpDuration       *prometheus.HistogramVec
	activeSessions     prometheus.Gauge
}

// NewMetrics registers the dashboard counters plus the Go and process
// collectors on a private registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		translationMisses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "storedash",
			Name:      "translation_misses_total",
			Help:      "Translation lookups that resolved to the raw key.",
		}, []string{"locale"}),
		preferenceFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "storedash",
			Name:      "preference_failures_total",
			Help:      "Preference storage operations that failed and were swallowed.",
		}, []string{"op"}),
		preferenceChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "storedash",
			Name:      "preference_changes_total",
			Help:      "Explicit preference changes by key and value.",
		}, []string{"key", "value"}),
		alertsDispatched: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "storedash",
			Name:      "alerts_dispatched_total",
			Help:      "Alert digests handed to the notifier.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "storedash",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route pattern and status code.",
		}, []string{"route", "code"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "storedash",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		activeSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "storedash",
			Name:      "active_sessions",
			Help:      "Client sessions currently held in memory.",
		}),
	}
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.translationMisses,
		m.preferenceFailures,
		m.preferenceChanges,
		m.alertsDispatched,
		m.httpRequests,
		m.httpDuration,
		m.activeSessions,
	)
	return m
}

func (m *Metrics) TranslationMiss(locale string) {
	if m == nil {
		return
	}
	m.translationMisses.WithLabelValues(locale).Inc()
}

func (m *Metrics) PreferenceFailure(op string) {
	if m == nil {
		return
	}
	m.preferenceFailures.WithLabelValues(op).Inc()
}

func (m *Metrics) PreferenceChanged(key, value string) {
	if m == nil {
		return
	}
	m.preferenceChanges.WithLabelValues(key, value).Inc()
}

func (m *Metrics) AlertsDispatched() {
	if m == nil {
		return
	}
	m.alertsDispatched.Inc()
}

func (m *Metrics) ObserveRequest(route string, code int, d time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(route, strconv.Itoa(code)).Inc()
	m.httpDuration.WithLabelValues(route).Observe(d.Seconds())
}

func (m *Metrics) SetActiveSessions(n int) {
	if m == nil {
		return
	}
	m.activeSessions.Set(float64(n))
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry for tests.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }
