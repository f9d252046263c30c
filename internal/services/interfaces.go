package services

import (
	"context"
	"time"

	"purchase-report/internal/models"
)

// AggregatorInterface turns the records matching filters into the nested purchaser summary.
// Every backend returns purchasers, sources and types in first-seen order.
type AggregatorInterface interface {
	Aggregate(ctx context.Context, filters models.PurchaseRecordFilters) ([]models.PurchaserSummary, error)
	Backend() string
}

// PurchaseReportServiceInterface defines the reporting operations exposed over HTTP
type PurchaseReportServiceInterface interface {
	// GetDailySummary aggregates every record of the calendar day. ErrNoPurchaseRecords when the day is empty.
	GetDailySummary(ctx context.Context, date time.Time) ([]models.PurchaserSummary, error)

	// CheckCategoryTotals computes per-type totals for one purchaser and source on the day
	// and writes them to the diagnostic stream
	CheckCategoryTotals(ctx context.Context, purchaserName, source string, date time.Time) ([]models.CategoryAggregate, error)
}

// MetricsRecorderInterface records report outcomes. Labels are passed as typed arguments.
type MetricsRecorderInterface interface {
	IncReportRequest(endpoint, status string)
	ObserveAggregation(backend string, duration time.Duration)
	SetRecordsAggregated(backend string, count int64)
}

// PurchaseRecordGeneratorInterface generates realistic purchase records for local development
type PurchaseRecordGeneratorInterface interface {
	GenerateDay(date time.Time, loc *time.Location, count int) []models.PurchaseRecord
}
