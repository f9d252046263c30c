package services

import (
	"context"
	"errors"
	"fmt"

	"purchase-report/internal/config"
	"purchase-report/internal/models"
	"purchase-report/internal/repositories"
)

var ErrUnknownAggregationBackend = errors.New("unknown aggregation backend")

// memoryAggregator fetches the raw rows and aggregates them in process
type memoryAggregator struct {
	repo repositories.PurchaseRecordRepositoryInterface
}

// storeAggregator pushes the grouping down to the database
type storeAggregator struct {
	repo repositories.PurchaseRecordRepositoryInterface
}

// NewAggregator returns the aggregation backend registered under name
func NewAggregator(backend string, repo repositories.PurchaseRecordRepositoryInterface) (AggregatorInterface, error) {
	switch backend {
	case config.AggregationBackendMemory:
		return NewMemoryAggregator(repo), nil
	case config.AggregationBackendStore:
		return NewStoreAggregator(repo), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAggregationBackend, backend)
	}
}

func NewMemoryAggregator(repo repositories.PurchaseRecordRepositoryInterface) AggregatorInterface {
	return &memoryAggregator{repo: repo}
}

func NewStoreAggregator(repo repositories.PurchaseRecordRepositoryInterface) AggregatorInterface {
	return &storeAggregator{repo: repo}
}

func (a *memoryAggregator) Aggregate(ctx context.Context, filters models.PurchaseRecordFilters) ([]models.PurchaserSummary, error) {
	records, err := a.repo.GetWithFilters(ctx, filters)
	if err != nil {
		return nil, err
	}
	return AggregateRecords(records), nil
}

func (a *memoryAggregator) Backend() string {
	return config.AggregationBackendMemory
}

func (a *storeAggregator) Aggregate(ctx context.Context, filters models.PurchaseRecordFilters) ([]models.PurchaserSummary, error) {
	rows, err := a.repo.GetCategoryTotals(ctx, filters)
	if err != nil {
		return nil, err
	}
	return NestCategoryAggregates(rows), nil
}

func (a *storeAggregator) Backend() string {
	return config.AggregationBackendStore
}
