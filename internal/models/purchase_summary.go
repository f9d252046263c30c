package models

import "github.com/shopspring/decimal"

// PurchaserSummary groups one purchaser's totals by source.
type PurchaserSummary struct {
	PurchaserName string          `json:"purchaser_name"`
	Sources       []SourceSummary `json:"sources"`
}

// SourceSummary groups one source's totals by record type.
// TotalCount and TotalAmount are the sums over Categories.
type SourceSummary struct {
	Source      string          `json:"source"`
	TotalCount  int64           `json:"total_count"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Categories  []CategoryTotal `json:"categories"`
}

// CategoryTotal is the number of records of one type and the sum of their prices.
type CategoryTotal struct {
	Type        string          `json:"type"`
	TotalCount  int64           `json:"total_count"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// CategoryAggregate is one row of the store-side GROUP BY purchaser, source, type.
// FirstID is the smallest record id in the group and orders groups by first appearance.
type CategoryAggregate struct {
	PurchaserName string
	Source        string
	Type          string
	TotalCount    int64
	TotalAmount   decimal.Decimal
	FirstID       uint
}
