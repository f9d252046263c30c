package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	reportRequests      *prometheus.CounterVec
	aggregationDuration *prometheus.HistogramVec
	recordsAggregated   *prometheus.GaugeVec
}

// NewPrometheusMetrics registers the report metrics with reg.
// Pass prometheus.DefaultRegisterer in the server and a fresh registry in tests.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		reportRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "purchase_report_requests_total",
				Help: "Total number of purchase report requests by endpoint and outcome",
			},
			[]string{"endpoint", "status"},
		),
		aggregationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "purchase_aggregation_duration_seconds",
				Help:    "Purchase record aggregation duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"backend"},
		),
		recordsAggregated: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "purchase_records_aggregated",
				Help: "Number of records covered by the last daily summary",
			},
			[]string{"backend"},
		),
	}
}

func (m *PrometheusMetrics) IncReportRequest(endpoint, status string) {
	m.reportRequests.WithLabelValues(endpoint, status).Inc()
}

func (m *PrometheusMetrics) ObserveAggregation(backend string, duration time.Duration) {
	m.aggregationDuration.WithLabelValues(backend).Observe(duration.Seconds())
}

func (m *PrometheusMetrics) SetRecordsAggregated(backend string, count int64) {
	m.recordsAggregated.WithLabelValues(backend).Set(float64(count))
}
