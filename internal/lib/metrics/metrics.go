// Package metrics holds the Prometheus collectors exported at /metrics.
//
// Each Metrics value owns its own registry, so several servers (or
// tests) in one process never collide on registration.
package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics tracks request rate, errors, and duration (RED metrics).
type Metrics struct {
	registry *prometheus.Registry
	prefix   string

	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	requestsInFlight prometheus.Gauge
}

// New creates the collectors, namespaced by service (e.g. "menu-api"
// becomes "menu_api_http_requests_total").
func New(service string) *Metrics {
	prefix := strings.ReplaceAll(service, "-", "_")
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		prefix:   prefix,
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    prefix + "_http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		requestsInFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: prefix + "_http_requests_in_flight",
				Help: "Current number of HTTP requests being processed",
			},
		),
	}

	registry.MustRegister(
		m.requestsTotal,
		m.requestDuration,
		m.requestsInFlight,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// RequestStarted marks a request as in flight. Call the returned func
// with the final status once the response is written.
func (m *Metrics) RequestStarted(method, route string) func(status int) {
	start := time.Now()
	m.requestsInFlight.Inc()

	return func(status int) {
		m.requestsInFlight.Dec()
		m.requestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
		m.requestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}

// TrackMenuItems exports a gauge that reads the live item count on scrape.
func (m *Metrics) TrackMenuItems(count func() int) {
	m.registry.MustRegister(prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: m.prefix + "_menu_items",
			Help: "Number of menu items currently in the store",
		},
		func() float64 { return float64(count()) },
	))
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry for inspection in tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
