package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"purchase-report/internal/config"
	"purchase-report/internal/logging"
	"purchase-report/internal/models"
	"purchase-report/internal/repositories"
	"purchase-report/internal/services"
	"purchase-report/internal/services/service_mocks"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type PurchaseRecordHandlerTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	echo              *echo.Echo
	mockReportService *service_mocks.MockPurchaseReportServiceInterface
	handler           *PurchaseRecordHandler
}

func TestPurchaseRecordHandlerSuite(t *testing.T) {
	suite.Run(t, new(PurchaseRecordHandlerTestSuite))
}

func (s *PurchaseRecordHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.mockReportService = service_mocks.NewMockPurchaseReportServiceInterface(s.ctrl)
	s.handler = NewPurchaseRecordHandler(s.mockReportService, config.DefaultCheckDate)
}

func (s *PurchaseRecordHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *PurchaseRecordHandlerTestSuite) summaryContext(date string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/purchase-records/"+date, nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetPath("/api/v1/purchase-records/:purchase_date")
	c.SetParamNames("purchase_date")
	c.SetParamValues(date)
	c.Set(logging.TraceIDContextKey, "test-trace-id")
	return c, rec
}

func (s *PurchaseRecordHandlerTestSuite) checkContext(query url.Values) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/check?"+query.Encode(), nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set(logging.TraceIDContextKey, "test-trace-id")
	return c, rec
}

func (s *PurchaseRecordHandlerTestSuite) decodeError(rec *httptest.ResponseRecorder) ErrorResponse {
	var response ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	return response
}

// ========================================
// GET /api/v1/purchase-records/:purchase_date Tests
// ========================================

func (s *PurchaseRecordHandlerTestSuite) TestGetPurchaseRecords_Success() {
	c, rec := s.summaryContext("2024-02-21")
	purchaser := gofakeit.FirstName()

	summary := []models.PurchaserSummary{{
		PurchaserName: purchaser,
		Sources: []models.SourceSummary{{
			Source:      "web",
			TotalCount:  3,
			TotalAmount: decimal.RequireFromString("18"),
			Categories: []models.CategoryTotal{
				{Type: "gold", TotalCount: 2, TotalAmount: decimal.RequireFromString("15")},
				{Type: "bronze", TotalCount: 1, TotalAmount: decimal.RequireFromString("3")},
			},
		}},
	}}

	s.mockReportService.EXPECT().
		GetDailySummary(gomock.Any(), time.Date(2024, 2, 21, 0, 0, 0, 0, time.UTC)).
		Return(summary, nil)

	err := s.handler.GetPurchaseRecords(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`[{
		"purchaser_name": "`+purchaser+`",
		"sources": [{
			"source": "web",
			"total_count": 3,
			"total_amount": "18",
			"categories": [
				{"type": "gold", "total_count": 2, "total_amount": "15"},
				{"type": "bronze", "total_count": 1, "total_amount": "3"}
			]
		}]
	}]`, rec.Body.String())
}

func (s *PurchaseRecordHandlerTestSuite) TestGetPurchaseRecords_NotFound() {
	c, rec := s.summaryContext("2030-01-01")

	s.mockReportService.EXPECT().
		GetDailySummary(gomock.Any(), gomock.Any()).
		Return(nil, services.ErrNoPurchaseRecords)

	err := s.handler.GetPurchaseRecords(c)

	s.NoError(err)
	s.Equal(http.StatusNotFound, rec.Code)
	response := s.decodeError(rec)
	s.Equal("PURCHASE_001", response.Error.Code)
	s.Equal("No purchase records found for this date", response.Error.Message)
	s.Equal("test-trace-id", response.Error.TraceID)
}

func (s *PurchaseRecordHandlerTestSuite) TestGetPurchaseRecords_InvalidDate() {
	for _, date := range []string{"21-02-2024", "2024-02-30", "today"} {
		s.Run(date, func() {
			c, rec := s.summaryContext(date)

			err := s.handler.GetPurchaseRecords(c)

			s.NoError(err)
			s.Equal(http.StatusBadRequest, rec.Code)
			s.Equal("VALIDATION_007", s.decodeError(rec).Error.Code)
		})
	}
}

func (s *PurchaseRecordHandlerTestSuite) TestGetPurchaseRecords_StoreFailureIsHidden() {
	c, rec := s.summaryContext("2024-02-21")

	s.mockReportService.EXPECT().
		GetDailySummary(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("pq: password authentication failed for user \"report\""))

	err := s.handler.GetPurchaseRecords(c)

	s.NoError(err)
	s.Equal(http.StatusInternalServerError, rec.Code)
	response := s.decodeError(rec)
	s.Equal("SYSTEM_001", response.Error.Code)
	s.NotContains(rec.Body.String(), "password")
}

// ========================================
// GET /api/v1/check Tests
// ========================================

func (s *PurchaseRecordHandlerTestSuite) TestCheckPurchaseRecords_Success() {
	c, rec := s.checkContext(url.Values{
		"purchaser_name": {"jack"},
		"source":         {"web"},
		"purchase_date":  {"2024-03-01"},
	})

	s.mockReportService.EXPECT().
		CheckCategoryTotals(gomock.Any(), "jack", "web", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)).
		Return([]models.CategoryAggregate{{Type: "gold", TotalCount: 1}}, nil)

	err := s.handler.CheckPurchaseRecords(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
	s.Empty(rec.Body.String())
}

func (s *PurchaseRecordHandlerTestSuite) TestCheckPurchaseRecords_DefaultDate() {
	c, rec := s.checkContext(url.Values{
		"purchaser_name": {"jack"},
		"source":         {"web"},
	})

	s.mockReportService.EXPECT().
		CheckCategoryTotals(gomock.Any(), "jack", "web", time.Date(2024, 2, 21, 0, 0, 0, 0, time.UTC)).
		Return(nil, nil)

	err := s.handler.CheckPurchaseRecords(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *PurchaseRecordHandlerTestSuite) TestCheckPurchaseRecords_MissingParameters() {
	c, rec := s.checkContext(url.Values{"source": {"web"}})

	err := s.handler.CheckPurchaseRecords(c)

	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
	response := s.decodeError(rec)
	s.Equal("VALIDATION_002", response.Error.Code)
	s.Equal([]string{"purchaser_name: is required"}, response.Error.Details)
}

func (s *PurchaseRecordHandlerTestSuite) TestCheckPurchaseRecords_BlankValuesAreFilters() {
	testCases := []struct {
		name      string
		purchaser string
		source    string
	}{
		{"blank source", "jack", " "},
		{"empty source", "jack", ""},
		{"empty purchaser", "", "web"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			c, rec := s.checkContext(url.Values{
				"purchaser_name": {tc.purchaser},
				"source":         {tc.source},
			})

			s.mockReportService.EXPECT().
				CheckCategoryTotals(gomock.Any(), tc.purchaser, tc.source, gomock.Any()).
				Return(nil, nil)

			err := s.handler.CheckPurchaseRecords(c)

			s.NoError(err)
			s.Equal(http.StatusOK, rec.Code)
		})
	}
}

func (s *PurchaseRecordHandlerTestSuite) TestCheckPurchaseRecords_InvalidDate() {
	c, rec := s.checkContext(url.Values{
		"purchaser_name": {"jack"},
		"source":         {"web"},
		"purchase_date":  {"02/21/2024"},
	})

	err := s.handler.CheckPurchaseRecords(c)

	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
	response := s.decodeError(rec)
	s.Equal("VALIDATION_007", response.Error.Code)
	s.Contains(response.Error.Details, "purchase_date: must be a date in YYYY-MM-DD format")
}

func (s *PurchaseRecordHandlerTestSuite) TestCheckPurchaseRecords_StoreFailure() {
	c, rec := s.checkContext(url.Values{
		"purchaser_name": {"jack"},
		"source":         {"web"},
	})

	s.mockReportService.EXPECT().
		CheckCategoryTotals(gomock.Any(), "jack", "web", gomock.Any()).
		Return(nil, errors.New("connection refused"))

	err := s.handler.CheckPurchaseRecords(c)

	s.NoError(err)
	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal("SYSTEM_001", s.decodeError(rec).Error.Code)
}

func (s *PurchaseRecordHandlerTestSuite) TestCheckPurchaseRecords_DatabaseFailure() {
	c, rec := s.checkContext(url.Values{
		"purchaser_name": {"jack"},
		"source":         {"web"},
	})

	s.mockReportService.EXPECT().
		CheckCategoryTotals(gomock.Any(), "jack", "web", gomock.Any()).
		Return(nil, fmt.Errorf("failed to get category totals: %w: %w", repositories.ErrDatabase, errors.New("connection refused")))

	err := s.handler.CheckPurchaseRecords(c)

	s.NoError(err)
	s.Equal(http.StatusInternalServerError, rec.Code)
	response := s.decodeError(rec)
	s.Equal("SYSTEM_002", response.Error.Code)
	s.Equal("Database connection error", response.Error.Message)
	s.NotContains(rec.Body.String(), "connection refused")
}
