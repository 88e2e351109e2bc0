// Package metrics exposes Prometheus instruments for brief generation.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Generation sources.
const (
	SourcePayload = "payload"
	SourceEvent   = "event"
	SourcePreview = "preview"
)

// Generation outcomes.
const (
	OutcomeOK       = "ok"
	OutcomeInvalid  = "invalid"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

// Metrics owns a private registry so tests and multiple servers never clash
// on the global default registerer.
type Metrics struct {
	registry *prometheus.Registry

	generations   *prometheus.CounterVec
	duration      *prometheus.HistogramVec
	documentBytes *prometheus.HistogramVec
	approved      prometheus.Histogram
}

// New creates and registers every instrument.
func New() *Metrics {
	m := &Metrics{registry: prometheus.NewRegistry()}

	m.generations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "briefd",
		Name:      "generations_total",
		Help:      "Brief generations by source and outcome",
	}, []string{"source", "outcome"})
	m.duration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "briefd",
		Name:      "generation_duration_seconds",
		Help:      "Time spent validating, resolving and writing a brief",
		Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
	}, []string{"source"})
	m.documentBytes = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "briefd",
		Name:      "document_size_bytes",
		Help:      "Size of generated documents",
		Buckets:   prometheus.ExponentialBuckets(1024, 2, 10),
	}, []string{"format"})
	m.approved = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "briefd",
		Name:      "approved_proposals",
		Help:      "Approved proposals that fed each generated brief",
		Buckets:   []float64{0, 1, 2, 5, 10, 20, 50},
	})

	m.registry.MustRegister(
		m.generations, m.duration, m.documentBytes, m.approved,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveGeneration records one generation attempt.
func (m *Metrics) ObserveGeneration(source, outcome string, elapsed time.Duration) {
	m.generations.WithLabelValues(source, outcome).Inc()
	m.duration.WithLabelValues(source).Observe(elapsed.Seconds())
}

// ObserveDocument records a successfully written document.
func (m *Metrics) ObserveDocument(format string, size, approved int) {
	m.documentBytes.WithLabelValues(format).Observe(float64(size))
	m.approved.Observe(float64(approved))
}

// Registry returns the private registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
