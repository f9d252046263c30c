package dto

// CheckQuery is the query string of GET /api/v1/check.
// purchaser_name and source must be present but may be blank.
type CheckQuery struct {
	PurchaserName *string `query:"purchaser_name" validate:"required"`
	Source        *string `query:"source" validate:"required"`
	PurchaseDate  string `query:"purchase_date" validate:"omitempty,iso_date"`
}
