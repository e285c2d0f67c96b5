// Package metrics owns the process Prometheus registry.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"weathercompare/internal/climate"
)

const namespace = "weathercompare"

// Metrics is safe for concurrent use. A nil *Metrics records nothing.
type Metrics struct {
	registry     *prometheus.Registry
	requests     *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	viewsDerived *prometheus.CounterVec
}

// New builds a fresh registry with the Go and process collectors attached.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route pattern and status code.",
		}, []string{"route", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		viewsDerived: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "comparison_views_derived_total",
			Help:      "Comparison views derived by period and unit.",
		}, []string{"period", "unit"}),
	}
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requests,
		m.duration,
		m.viewsDerived,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveRequest records one finished request. route should be the mux
// pattern, not the raw path, to keep label cardinality bounded.
func (m *Metrics) ObserveRequest(route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.requests.WithLabelValues(route, strconv.Itoa(status)).Inc()
	m.duration.WithLabelValues(route).Observe(elapsed.Seconds())
}

// ViewDerived counts one successful view derivation.
func (m *Metrics) ViewDerived(p climate.Period, u climate.Unit) {
	if m == nil {
		return
	}
	m.viewsDerived.WithLabelValues(string(p), string(u)).Inc()
}

// RequestsTotal returns the counter for route and status.
func (m *Metrics) RequestsTotal(route string, status int) prometheus.Counter {
	return m.requests.WithLabelValues(route, strconv.Itoa(status))
}

// ViewsDerivedTotal returns the counter for p and u.
func (m *Metrics) ViewsDerivedTotal(p climate.Period, u climate.Unit) prometheus.Counter {
	return m.viewsDerived.WithLabelValues(string(p), string(u))
}
