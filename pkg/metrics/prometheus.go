// Package metrics provides Prometheus metrics for the dropout-risk service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the beacon service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Analysis pipeline metrics
	analysesTotal    prometheus.Counter
	analysisDuration prometheus.Histogram
	studentsScored   prometheus.Counter
	flagsRaised      *prometheus.CounterVec
	studentsByLevel  *prometheus.GaugeVec
	rosterSize       prometheus.Gauge
	runsRetained     prometheus.Gauge

	// Ingestion metrics
	ingestErrors prometheus.Counter

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// System metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
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
		namespace:        "beacon",
		subsystem:        "risk",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.analysesTotal = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "analyses_total",
		Help:      "Total number of analysis runs completed",
	})

	m.analysisDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "analysis_duration_milliseconds",
		Help:      "Histogram of full merge-and-score pipeline duration in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.studentsScored = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "students_scored_total",
		Help:      "Total number of student profiles scored across all runs",
	})

	m.flagsRaised = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "flags_raised_total",
			Help:      "Total number of risk flags raised, by rule",
		},
		[]string{"rule"},
	)

	m.studentsByLevel = auto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "students_by_level",
			Help:      "Students per risk level in the latest run",
		},
		[]string{"level"},
	)

	m.rosterSize = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "roster_size",
		Help:      "Number of distinct students in the latest run",
	})

	m.runsRetained = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "runs_retained",
		Help:      "Number of analysis runs currently held in memory",
	})

	m.ingestErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "ingest_errors_total",
		Help:      "Total number of rejected source files",
	})

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint and method",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_memory_bytes",
		Help:      "System memory usage in bytes",
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_goroutine_count",
		Help:      "Number of goroutines",
	})
}

// RecordAnalysis increments the run counter and observes the duration.
func RecordAnalysis(durationMs float64) {
	globalManager.analysesTotal.Inc()
	globalManager.analysisDuration.Observe(durationMs)
}

// RecordStudentsScored adds n to the scored-students counter.
func RecordStudentsScored(n int) {
	globalManager.studentsScored.Add(float64(n))
}

// RecordFlagRaised increments the raised-flags counter for a rule.
func RecordFlagRaised(rule string) {
	globalManager.flagsRaised.WithLabelValues(rule).Inc()
}

// UpdateStudentsByLevel sets the per-level gauges from the latest run.
func UpdateStudentsByLevel(safe, watchlist, atRisk int) {
	globalManager.studentsByLevel.WithLabelValues("safe").Set(float64(safe))
	globalManager.studentsByLevel.WithLabelValues("watchlist").Set(float64(watchlist))
	globalManager.studentsByLevel.WithLabelValues("at-risk").Set(float64(atRisk))
}

// UpdateRosterSize sets the latest roster size gauge.
func UpdateRosterSize(n int) {
	globalManager.rosterSize.Set(float64(n))
}

// UpdateRunsRetained sets the retained-runs gauge.
func UpdateRunsRetained(n int) {
	globalManager.runsRetained.Set(float64(n))
}

// RecordIngestError increments the rejected source file counter.
func RecordIngestError() {
	globalManager.ingestErrors.Inc()
}

// RecordHTTPRequest increments HTTP request counters.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// UpdateSystemMemoryUsage updates system memory usage in bytes.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount updates the number of goroutines.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// GetRegistry returns the custom Prometheus registry for serving /healthz.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
