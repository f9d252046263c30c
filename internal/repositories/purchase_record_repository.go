package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"purchase-report/internal/models"

	"gorm.io/gorm"
)

var (
	ErrNilPurchaseRecord = errors.New("purchase record cannot be nil")

	// ErrDatabase marks failures reported by the database. The driver error stays in the chain.
	ErrDatabase = errors.New("database error")
)

// purchaseRecordRepository implements PurchaseRecordRepositoryInterface
type purchaseRecordRepository struct {
	db *gorm.DB
}

// NewPurchaseRecordRepository creates a new purchase record repository
func NewPurchaseRecordRepository(db *gorm.DB) PurchaseRecordRepositoryInterface {
	return &purchaseRecordRepository{
		db: db,
	}
}

// Create inserts a single purchase record
func (r *purchaseRecordRepository) Create(ctx context.Context, record *models.PurchaseRecord) error {
	if record == nil {
		return ErrNilPurchaseRecord
	}
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("failed to create purchase record: %w: %w", ErrDatabase, err)
	}
	return nil
}

// CreateBatch inserts multiple purchase records in a single database transaction
func (r *purchaseRecordRepository) CreateBatch(ctx context.Context, records []models.PurchaseRecord) error {
	if len(records) == 0 {
		return nil
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(&records, 500).Error
	})
	if err != nil {
		return fmt.Errorf("failed to create purchase records: %w: %w", ErrDatabase, err)
	}
	return nil
}

// GetByTimeRange retrieves records whose purchase time lies in [start, end]
func (r *purchaseRecordRepository) GetByTimeRange(ctx context.Context, start, end time.Time) ([]models.PurchaseRecord, error) {
	return r.GetWithFilters(ctx, models.PurchaseRecordFilters{
		StartTime: &start,
		EndTime:   &end,
	})
}

// GetWithFilters retrieves records matching all set filters, oldest id first
func (r *purchaseRecordRepository) GetWithFilters(ctx context.Context, filters models.PurchaseRecordFilters) ([]models.PurchaseRecord, error) {
	var records []models.PurchaseRecord

	query := applyFilters(r.db.WithContext(ctx).Model(&models.PurchaseRecord{}), filters)

	if err := query.Order("id ASC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to get purchase records: %w: %w", ErrDatabase, err)
	}

	return records, nil
}

// GetCategoryTotals retrieves count and price totals grouped by purchaser, source and type.
// Groups come back in order of their first record id.
func (r *purchaseRecordRepository) GetCategoryTotals(ctx context.Context, filters models.PurchaseRecordFilters) ([]models.CategoryAggregate, error) {
	var totals []models.CategoryAggregate

	query := applyFilters(r.db.WithContext(ctx).Model(&models.PurchaseRecord{}), filters)

	if err := query.
		Select(`purchaser_name, source, type,
			COUNT(*) AS total_count,
			COALESCE(SUM(total_price), 0) AS total_amount,
			MIN(id) AS first_id`).
		Group("purchaser_name, source, type").
		Order("first_id ASC").
		Scan(&totals).Error; err != nil {
		return nil, fmt.Errorf("failed to get category totals: %w: %w", ErrDatabase, err)
	}

	return totals, nil
}

// applyFilters compares timestamps in UTC, the zone records are written in.
func applyFilters(query *gorm.DB, filters models.PurchaseRecordFilters) *gorm.DB {
	if filters.StartTime != nil {
		query = query.Where("purchase_time >= ?", filters.StartTime.UTC())
	}
	if filters.EndTime != nil {
		query = query.Where("purchase_time <= ?", filters.EndTime.UTC())
	}
	if filters.PurchaserName != nil {
		query = query.Where("purchaser_name = ?", *filters.PurchaserName)
	}
	if filters.Source != nil {
		query = query.Where("source = ?", *filters.Source)
	}
	return query
}
