package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PurchaseRecord is one purchased item as stored in purchase_records.
// Rows are written by upstream systems; this service only reads them.
type PurchaseRecord struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	PurchaserName string          `gorm:"type:varchar(255);not null;index:idx_purchase_records_purchaser_source" json:"purchaser_name"`
	Source        string          `gorm:"type:varchar(255);not null;index:idx_purchase_records_purchaser_source" json:"source"`
	Type          string          `gorm:"column:type;type:varchar(100);not null" json:"type"`
	TotalPrice    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total_price"`
	PurchaseTime  time.Time       `gorm:"not null;index" json:"purchase_time"`
	CreatedAt     time.Time       `json:"created_at"`
}

func (PurchaseRecord) TableName() string {
	return "purchase_records"
}

// BeforeCreate hook for PurchaseRecord
func (r *PurchaseRecord) BeforeCreate(tx *gorm.DB) error {
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	return nil
}
