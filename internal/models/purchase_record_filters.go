package models

import "time"

// PurchaseRecordFilters contains filtering options for purchase record queries.
// Time bounds are inclusive. A nil field does not filter; a set field matches exactly,
// including the empty string.
type PurchaseRecordFilters struct {
	StartTime     *time.Time
	EndTime       *time.Time
	PurchaserName *string
	Source        *string
}
