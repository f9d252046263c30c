package services

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gatherFamilies(t *testing.T, reg *prometheus.Registry) map[string]*dto.MetricFamily {
	t.Helper()

	families, err := reg.Gather()
	require.NoError(t, err)

	byName := make(map[string]*dto.MetricFamily, len(families))
	for _, f := range families {
		byName[f.GetName()] = f
	}
	return byName
}

func labelValue(m *dto.Metric, name string) string {
	for _, l := range m.GetLabel() {
		if l.GetName() == name {
			return l.GetValue()
		}
	}
	return ""
}

func TestPrometheusMetrics_RecordsReportMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	recorder := NewPrometheusMetrics(reg)

	recorder.IncReportRequest("check", "success")
	recorder.IncReportRequest("check", "success")
	recorder.IncReportRequest("daily_summary", "not_found")
	recorder.SetRecordsAggregated("store", 42)
	recorder.ObserveAggregation("store", 5*time.Millisecond)
	recorder.ObserveAggregation("memory", time.Second)

	families := gatherFamilies(t, reg)

	requests := families["purchase_report_requests_total"]
	require.NotNil(t, requests)
	require.Len(t, requests.GetMetric(), 2)
	counts := map[string]float64{}
	for _, m := range requests.GetMetric() {
		counts[labelValue(m, "endpoint")+"/"+labelValue(m, "status")] = m.GetCounter().GetValue()
	}
	assert.Equal(t, map[string]float64{"check/success": 2, "daily_summary/not_found": 1}, counts)

	aggregated := families["purchase_records_aggregated"]
	require.NotNil(t, aggregated)
	require.Len(t, aggregated.GetMetric(), 1)
	assert.Equal(t, "store", labelValue(aggregated.GetMetric()[0], "backend"))
	assert.Equal(t, float64(42), aggregated.GetMetric()[0].GetGauge().GetValue())

	duration := families["purchase_aggregation_duration_seconds"]
	require.NotNil(t, duration)
	require.Len(t, duration.GetMetric(), 2)
	for _, m := range duration.GetMetric() {
		assert.Contains(t, []string{"store", "memory"}, labelValue(m, "backend"))
		assert.Equal(t, uint64(1), m.GetHistogram().GetSampleCount())
	}
}

func TestNewPrometheusMetrics_SeparateRegistries(t *testing.T) {
	require.NotPanics(t, func() {
		NewPrometheusMetrics(prometheus.NewRegistry())
		NewPrometheusMetrics(prometheus.NewRegistry())
	})
}
