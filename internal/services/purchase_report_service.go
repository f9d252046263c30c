package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"purchase-report/internal/logging"
	"purchase-report/internal/models"
	"purchase-report/internal/repositories"

	"github.com/sirupsen/logrus"
)

var (
	ErrNoPurchaseRecords = errors.New("no purchase records found for this date")
)

const (
	endpointDailySummary = "daily_summary"
	endpointCheck        = "check"

	statusSuccess  = "success"
	statusNotFound = "not_found"
	statusError    = "error"
)

type purchaseReportService struct {
	repo        repositories.PurchaseRecordRepositoryInterface
	aggregator  AggregatorInterface
	metrics     MetricsRecorderInterface
	logger      logrus.FieldLogger
	diagnostics logrus.FieldLogger
	location    *time.Location
}

// NewPurchaseReportService creates the report service. Calendar dates are resolved in loc,
// operational logs go to logger and check results are written to diagnostics.
func NewPurchaseReportService(
	repo repositories.PurchaseRecordRepositoryInterface,
	aggregator AggregatorInterface,
	metrics MetricsRecorderInterface,
	logger logrus.FieldLogger,
	diagnostics logrus.FieldLogger,
	loc *time.Location,
) PurchaseReportServiceInterface {
	if loc == nil {
		loc = time.UTC
	}
	return &purchaseReportService{
		repo:        repo,
		aggregator:  aggregator,
		metrics:     metrics,
		logger:      logger,
		diagnostics: diagnostics,
		location:    loc,
	}
}

func (s *purchaseReportService) GetDailySummary(ctx context.Context, date time.Time) ([]models.PurchaserSummary, error) {
	day := models.NewDayRange(date, s.location)
	backend := s.aggregator.Backend()
	log := logging.FromContext(ctx, s.logger).WithFields(logrus.Fields{
		"purchase_date": date.Format(models.PurchaseDateLayout),
		"backend":       backend,
	})

	start := time.Now()
	summary, err := s.aggregator.Aggregate(ctx, day.Filters())
	s.metrics.ObserveAggregation(backend, time.Since(start))

	if err != nil {
		s.metrics.IncReportRequest(endpointDailySummary, statusError)
		log.WithError(err).Error("failed to aggregate purchase records")
		return nil, fmt.Errorf("failed to aggregate purchase records: %w", err)
	}

	if len(summary) == 0 {
		s.metrics.IncReportRequest(endpointDailySummary, statusNotFound)
		return nil, ErrNoPurchaseRecords
	}

	s.metrics.IncReportRequest(endpointDailySummary, statusSuccess)
	s.metrics.SetRecordsAggregated(backend, countRecords(summary))

	log.WithField("purchaser_count", len(summary)).Info("daily purchase summary generated")

	return summary, nil
}

func (s *purchaseReportService) CheckCategoryTotals(ctx context.Context, purchaserName, source string, date time.Time) ([]models.CategoryAggregate, error) {
	filters := models.NewDayRange(date, s.location).Filters()
	filters.PurchaserName = &purchaserName
	filters.Source = &source

	totals, err := s.repo.GetCategoryTotals(ctx, filters)
	if err != nil {
		s.metrics.IncReportRequest(endpointCheck, statusError)
		logging.FromContext(ctx, s.logger).WithError(err).WithFields(logrus.Fields{
			"purchaser_name": purchaserName,
			"source":         source,
			"purchase_date":  date.Format(models.PurchaseDateLayout),
		}).Error("failed to compute category totals")
		return nil, fmt.Errorf("failed to compute category totals: %w", err)
	}

	for _, total := range totals {
		s.diagnostics.Infof("Type: %s, Total Count: %d, Total Amount: %s",
			total.Type, total.TotalCount, total.TotalAmount.StringFixed(2))
	}

	s.metrics.IncReportRequest(endpointCheck, statusSuccess)

	return totals, nil
}

func countRecords(summary []models.PurchaserSummary) int64 {
	var n int64
	for _, p := range summary {
		for _, src := range p.Sources {
			n += src.TotalCount
		}
	}
	return n
}
