// Package metrics owns the prometheus collectors of the API. All methods
// are safe on a nil *Metrics so callers can run without instrumentation.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry *prometheus.Registry

	httpRequests         *prometheus.CounterVec
	httpDuration         *prometheus.HistogramVec
	transitions          *prometheus.CounterVec
	persists             *prometheus.CounterVec
	persistDuration      *prometheus.HistogramVec
	credentialMigrations prometheus.Counter
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		httpRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "stylists_http_requests_total",
			Help: "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "stylists_http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		transitions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "stylists_appointment_transitions_total",
			Help: "Appointment lifecycle operations by action and outcome.",
		}, []string{"action", "outcome"}),
		persists: f.NewCounterVec(prometheus.CounterOpts{
			Name: "stylists_store_persist_total",
			Help: "Collection flushes by collection and result.",
		}, []string{"collection", "result"}),
		persistDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "stylists_store_persist_duration_seconds",
			Help:    "Time spent encoding and writing a collection.",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"collection"}),
		credentialMigrations: f.NewCounter(prometheus.CounterOpts{
			Name: "stylists_credential_migrations_total",
			Help: "Legacy plaintext credentials re-hashed after a successful login.",
		}),
	}
}

func (m *Metrics) ObserveRequest(method, route string, status int, took time.Duration) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(took.Seconds())
}

func (m *Metrics) ObserveTransition(action string, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.transitions.WithLabelValues(action, outcome).Inc()
}

func (m *Metrics) ObservePersist(collection string, took time.Duration, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.persists.WithLabelValues(collection, result).Inc()
	m.persistDuration.WithLabelValues(collection).Observe(took.Seconds())
}

func (m *Metrics) CredentialMigrated() {
	if m == nil {
		return
	}
	m.credentialMigrations.Inc()
}

func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}
