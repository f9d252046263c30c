package handlers

import (
	"errors"
	"net/http"

	"purchase-report/internal/dto"
	apierrors "purchase-report/internal/errors"
	"purchase-report/internal/models"
	"purchase-report/internal/services"

	"github.com/labstack/echo/v4"
)

const invalidDateDetail = "purchase_date: must be a date in YYYY-MM-DD format"

type PurchaseRecordHandler struct {
	reportService    services.PurchaseReportServiceInterface
	defaultCheckDate string
}

func NewPurchaseRecordHandler(
	reportService services.PurchaseReportServiceInterface,
	defaultCheckDate string,
) *PurchaseRecordHandler {
	return &PurchaseRecordHandler{
		reportService:    reportService,
		defaultCheckDate: defaultCheckDate,
	}
}

// GetPurchaseRecords returns the day's purchase totals grouped by purchaser, source and type
//
// Method: GET /api/v1/purchase-records/:purchase_date
//
// Path parameters:
//   - purchase_date: calendar date, YYYY-MM-DD
//
// Success Response: 200 OK
//   - array of purchasers in order of their first record, each with
//     purchaser_name and sources[] (source, total_count, total_amount, categories[])
//
// Error Responses:
//   - 400: Malformed purchase_date (VALIDATION_007)
//   - 404: No records on that date (PURCHASE_001)
//   - 500: Internal server error
func (h *PurchaseRecordHandler) GetPurchaseRecords(c echo.Context) error {
	date, err := models.ParsePurchaseDate(c.Param("purchase_date"))
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidDate, apierrors.WithDetails(invalidDateDetail))
	}

	summary, err := h.reportService.GetDailySummary(c.Request().Context(), date)
	if err != nil {
		if errors.Is(err, services.ErrNoPurchaseRecords) {
			return SendError(c, apierrors.PurchaseRecordsNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, summary)
}

// CheckPurchaseRecords recomputes per-type totals for one purchaser and source in the
// database and writes them to the diagnostic stream
//
// Method: GET /api/v1/check
//
// Query parameters:
//   - purchaser_name: required, matched exactly (blank allowed)
//   - source: required, matched exactly (blank allowed)
//   - purchase_date: YYYY-MM-DD (optional, defaults to the configured check date)
//
// Success Response: 200 OK with an empty body
//
// Error Responses:
//   - 400: Missing purchaser_name or source, malformed purchase_date
//   - 500: Internal server error
func (h *PurchaseRecordHandler) CheckPurchaseRecords(c echo.Context) error {
	var query dto.CheckQuery
	if err := c.Bind(&query); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid query parameters"))
	}

	if err := c.Validate(&query); err != nil {
		return SendValidationError(c, err)
	}

	if query.PurchaseDate == "" {
		query.PurchaseDate = h.defaultCheckDate
	}

	date, err := models.ParsePurchaseDate(query.PurchaseDate)
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidDate, apierrors.WithDetails(invalidDateDetail))
	}

	if _, err := h.reportService.CheckCategoryTotals(c.Request().Context(), *query.PurchaserName, *query.Source, date); err != nil {
		return SendSystemError(c, err)
	}

	return c.NoContent(http.StatusOK)
}
