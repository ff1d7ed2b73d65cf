// Package metrics provides Prometheus metrics for the sherrin fixture
// service and generator.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the generator.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Generation metrics
	rowsGenerated      *prometheus.CounterVec
	matchesGenerated   prometheus.Counter
	seasonsGenerated   prometheus.Counter
	generationDuration *prometheus.HistogramVec

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "sherrin",
		subsystem:        "generator",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.rowsGenerated = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "rows_generated_total",
		Help:      "Total number of dataset rows generated, by dataset",
	}, []string{"dataset"})

	m.matchesGenerated = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "matches_generated_total",
		Help:      "Total number of base matches generated",
	})

	m.seasonsGenerated = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "seasons_generated_total",
		Help:      "Total number of seasons generated",
	})

	m.generationDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "generation_duration_seconds",
		Help:      "Histogram of dataset generation duration in seconds, by dataset",
		Buckets:   m.histogramBuckets,
	}, []string{"dataset"})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of HTTP requests, by endpoint, method and status",
	}, []string{"endpoint", "method", "status"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Histogram of HTTP request duration in seconds",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint", "method"})
}

// GetRegistry returns the registry backing the global manager, for use
// with promhttp handlers.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// RecordRowsGenerated counts rows produced for a dataset.
func RecordRowsGenerated(dataset string, count int) {
	globalManager.rowsGenerated.WithLabelValues(dataset).Add(float64(count))
}

// RecordMatchesGenerated counts base matches produced by the schedule generator.
func RecordMatchesGenerated(count int) {
	globalManager.matchesGenerated.Add(float64(count))
}

// RecordSeasonsGenerated counts seasons covered by a generation run.
func RecordSeasonsGenerated(count int) {
	globalManager.seasonsGenerated.Add(float64(count))
}

// ObserveGenerationDuration records how long a dataset build took.
func ObserveGenerationDuration(dataset string, seconds float64) {
	globalManager.generationDuration.WithLabelValues(dataset).Observe(seconds)
}

// RecordHTTPRequest counts a served HTTP request.
func RecordHTTPRequest(endpoint, method, status string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, status).Inc()
}

// ObserveHTTPRequestDuration records a request's duration.
func ObserveHTTPRequestDuration(endpoint, method string, seconds float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method).Observe(seconds)
}
