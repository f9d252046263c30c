package repositories

import (
	"context"
	"time"

	"purchase-report/internal/models"
)

// PurchaseRecordRepositoryInterface defines the contract for purchase record repository operations
type PurchaseRecordRepositoryInterface interface {
	Create(ctx context.Context, record *models.PurchaseRecord) error
	CreateBatch(ctx context.Context, records []models.PurchaseRecord) error
	GetByTimeRange(ctx context.Context, start, end time.Time) ([]models.PurchaseRecord, error)
	GetWithFilters(ctx context.Context, filters models.PurchaseRecordFilters) ([]models.PurchaseRecord, error)

	// GetCategoryTotals pushes the purchaser/source/type grouping down to the database
	GetCategoryTotals(ctx context.Context, filters models.PurchaseRecordFilters) ([]models.CategoryAggregate, error)
}
