package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// reading pipeline.
type Metrics struct {
	ReadingsConsumed prometheus.Counter
	ReadingsProduced prometheus.Counter
	TransformErrors  prometheus.Counter
	PipelineRunning  prometheus.Gauge

	// Batch processing metrics.
	BatchSize               prometheus.Histogram
	BatchProcessingDuration prometheus.Histogram

	// Scale enrichment metrics.
	ConceptsDerived     *prometheus.CounterVec // labels: concept={frigid,...,sweltering,none}
	WaypointsIdentified *prometheus.CounterVec // labels: waypoint={freezing,boiling,body}

	// Station registry metrics.
	StationRequests    *prometheus.CounterVec // labels: outcome={success,error,empty}
	StationCache       *prometheus.CounterVec // labels: result={hit,miss}
	StationAPIDuration prometheus.Histogram
	StationEnabled     prometheus.Gauge
}

// NewMetrics creates and registers all pipeline metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.ReadingsConsumed,
		m.ReadingsProduced,
		m.TransformErrors,
		m.PipelineRunning,
		m.BatchSize,
		m.BatchProcessingDuration,
		m.ConceptsDerived,
		m.WaypointsIdentified,
		m.StationRequests,
		m.StationCache,
		m.StationAPIDuration,
		m.StationEnabled,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		ReadingsConsumed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "thermoscale",
			Name:      "readings_consumed_total",
			Help:      "Total messages read from the source topic.",
		}),
		ReadingsProduced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "thermoscale",
			Name:      "readings_produced_total",
			Help:      "Total enriched readings written to the sink topic.",
		}),
		TransformErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "thermoscale",
			Name:      "transform_errors_total",
			Help:      "Total readings that failed to parse or enrich.",
		}),
		PipelineRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "thermoscale",
			Name:      "pipeline_running",
			Help:      "1 when the pipeline is active, 0 when shut down.",
		}),
		BatchSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "thermoscale",
			Name:      "batch_size",
			Help:      "Number of messages per batch extracted from Kafka.",
			Buckets:   []float64{1, 5, 10, 20, 30, 40, 50, 75, 100},
		}),
		BatchProcessingDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "thermoscale",
			Name:      "batch_processing_duration_seconds",
			Help:      "Duration of a complete batch extract-transform-load cycle.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
		}),
		ConceptsDerived: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "thermoscale",
			Name:      "concepts_derived_total",
			Help:      "Classified readings by comfort concept.",
		}, []string{"concept"}),
		WaypointsIdentified: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "thermoscale",
			Name:      "waypoints_identified_total",
			Help:      "Readings that landed exactly on a scale waypoint.",
		}, []string{"waypoint"}),
		StationRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "thermoscale",
			Name:      "station_requests_total",
			Help:      "Station registry API requests by outcome.",
		}, []string{"outcome"}),
		StationCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "thermoscale",
			Name:      "station_cache_total",
			Help:      "Station registry cache lookups by result.",
		}, []string{"result"}),
		StationAPIDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "thermoscale",
			Name:      "station_api_duration_seconds",
			Help:      "Station registry API request duration in seconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
		StationEnabled: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "thermoscale",
			Name:      "station_enabled",
			Help:      "1 when station enrichment is enabled, 0 otherwise.",
		}),
	}
}
