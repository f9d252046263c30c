package services

import (
	"purchase-report/internal/models"

	"github.com/shopspring/decimal"
)

// categoryKey identifies one leaf of the summary tree
type categoryKey struct {
	purchaser  string
	source     string
	recordType string
}

type sourceKey struct {
	purchaser string
	source    string
}

// summaryBuilder accumulates leaf totals in a single pass and remembers
// the order in which each purchaser, source and type was first seen.
type summaryBuilder struct {
	totals map[categoryKey]*models.CategoryTotal

	purchasers []string
	sources    map[string][]string
	types      map[sourceKey][]string

	seenPurchasers map[string]struct{}
	seenSources    map[sourceKey]struct{}
}

func newSummaryBuilder() *summaryBuilder {
	return &summaryBuilder{
		totals:         make(map[categoryKey]*models.CategoryTotal),
		sources:        make(map[string][]string),
		types:          make(map[sourceKey][]string),
		seenPurchasers: make(map[string]struct{}),
		seenSources:    make(map[sourceKey]struct{}),
	}
}

func (b *summaryBuilder) add(purchaser, source, recordType string, count int64, amount decimal.Decimal) {
	key := categoryKey{purchaser: purchaser, source: source, recordType: recordType}

	total, ok := b.totals[key]
	if !ok {
		b.track(key)
		total = &models.CategoryTotal{Type: recordType, TotalAmount: decimal.Zero}
		b.totals[key] = total
	}

	total.TotalCount += count
	total.TotalAmount = total.TotalAmount.Add(amount)
}

func (b *summaryBuilder) track(key categoryKey) {
	if _, ok := b.seenPurchasers[key.purchaser]; !ok {
		b.seenPurchasers[key.purchaser] = struct{}{}
		b.purchasers = append(b.purchasers, key.purchaser)
	}

	sk := sourceKey{purchaser: key.purchaser, source: key.source}
	if _, ok := b.seenSources[sk]; !ok {
		b.seenSources[sk] = struct{}{}
		b.sources[key.purchaser] = append(b.sources[key.purchaser], key.source)
	}

	// a new leaf is always a new type within its source
	b.types[sk] = append(b.types[sk], key.recordType)
}

func (b *summaryBuilder) build() []models.PurchaserSummary {
	result := make([]models.PurchaserSummary, 0, len(b.purchasers))

	for _, purchaser := range b.purchasers {
		summary := models.PurchaserSummary{
			PurchaserName: purchaser,
			Sources:       make([]models.SourceSummary, 0, len(b.sources[purchaser])),
		}

		for _, source := range b.sources[purchaser] {
			sk := sourceKey{purchaser: purchaser, source: source}
			sourceSummary := models.SourceSummary{
				Source:      source,
				TotalAmount: decimal.Zero,
				Categories:  make([]models.CategoryTotal, 0, len(b.types[sk])),
			}

			for _, recordType := range b.types[sk] {
				total := *b.totals[categoryKey{purchaser: purchaser, source: source, recordType: recordType}]
				sourceSummary.TotalCount += total.TotalCount
				sourceSummary.TotalAmount = sourceSummary.TotalAmount.Add(total.TotalAmount)
				sourceSummary.Categories = append(sourceSummary.Categories, total)
			}

			summary.Sources = append(summary.Sources, sourceSummary)
		}

		result = append(result, summary)
	}

	return result
}

// AggregateRecords groups records by purchaser, source and type in one pass.
// Each record counts once and contributes its exact price. Purchasers, sources
// and types keep the order of their first record, so the same input always yields the same output.
func AggregateRecords(records []models.PurchaseRecord) []models.PurchaserSummary {
	b := newSummaryBuilder()
	for i := range records {
		r := &records[i]
		b.add(r.PurchaserName, r.Source, r.Type, 1, r.TotalPrice)
	}
	return b.build()
}

// NestCategoryAggregates nests store-side group rows the same way AggregateRecords nests records.
// Rows are expected in order of their first record id.
func NestCategoryAggregates(rows []models.CategoryAggregate) []models.PurchaserSummary {
	b := newSummaryBuilder()
	for i := range rows {
		row := &rows[i]
		b.add(row.PurchaserName, row.Source, row.Type, row.TotalCount, row.TotalAmount)
	}
	return b.build()
}
