package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Query outcome labels for QueriesTotal.
const (
	OutcomeSuccess      = "success"
	OutcomeInvalidInput = "invalid_input"
	OutcomeTransport    = "transport_error"
	OutcomeHTTPStatus   = "http_status_error"
	OutcomeParse        = "parse_error"
	OutcomeInternal     = "internal_error"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// query pipeline.
type Metrics struct {
	QueriesTotal     *prometheus.CounterVec // labels: outcome
	QueriesInFlight  prometheus.Gauge
	QueryDuration    prometheus.Histogram
	EventsReturned   prometheus.Histogram
	FeaturesSkipped  prometheus.Counter
	FetchDuration    prometheus.Histogram
	FetchStatusCodes *prometheus.CounterVec // labels: code
}

// NewMetrics creates and registers all query metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		QueriesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "quake_query",
			Name:      "queries_total",
			Help:      "Completed queries by outcome.",
		}, []string{"outcome"}),
		QueriesInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "quake_query",
			Name:      "queries_in_flight",
			Help:      "Queries currently executing.",
		}),
		QueryDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "quake_query",
			Name:      "query_duration_seconds",
			Help:      "Duration of a complete validate-fetch-parse-format query.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),
		EventsReturned: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "quake_query",
			Name:      "events_returned",
			Help:      "Number of events in a successful report.",
			Buckets:   []float64{0, 1, 10, 50, 100, 500, 1000, 5000, 10000},
		}),
		FeaturesSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "quake_query",
			Name:      "features_skipped_total",
			Help:      "Features excluded for a null or absent magnitude.",
		}),
		FetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "quake_query",
			Name:      "fetch_duration_seconds",
			Help:      "USGS request duration in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),
		FetchStatusCodes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "quake_query",
			Name:      "fetch_status_codes_total",
			Help:      "USGS response status codes.",
		}, []string{"code"}),
	}

	prometheus.MustRegister(
		m.QueriesTotal,
		m.QueriesInFlight,
		m.QueryDuration,
		m.EventsReturned,
		m.FeaturesSkipped,
		m.FetchDuration,
		m.FetchStatusCodes,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		QueriesTotal:     prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "quake_query", Name: "queries_total"}, []string{"outcome"}),
		QueriesInFlight:  prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "quake_query", Name: "queries_in_flight"}),
		QueryDuration:    prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "quake_query", Name: "query_duration_seconds"}),
		EventsReturned:   prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "quake_query", Name: "events_returned"}),
		FeaturesSkipped:  prometheus.NewCounter(prometheus.CounterOpts{Namespace: "quake_query", Name: "features_skipped_total"}),
		FetchDuration:    prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "quake_query", Name: "fetch_duration_seconds"}),
		FetchStatusCodes: prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "quake_query", Name: "fetch_status_codes_total"}, []string{"code"}),
	}
}
