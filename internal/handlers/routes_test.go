package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"purchase-report/internal/config"
	"purchase-report/internal/database"
	"purchase-report/internal/logging"
	"purchase-report/internal/models"
	"purchase-report/internal/repositories"
	"purchase-report/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/suite"
)

// RoutesSuite drives the registered routes against a seeded sqlite database
type RoutesSuite struct {
	suite.Suite
	db          *database.DB
	diagnostics *bytes.Buffer
}

func TestRoutesSuite(t *testing.T) {
	suite.Run(t, new(RoutesSuite))
}

func (s *RoutesSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.diagnostics = &bytes.Buffer{}

	day := time.Date(2024, 2, 21, 9, 0, 0, 0, time.UTC)
	database.CreateTestPurchaseRecord(s.T(), s.db, "jack", "web", "gold", "10", day)
	database.CreateTestPurchaseRecord(s.T(), s.db, "jack", "web", "gold", "5", day.Add(time.Hour))
	database.CreateTestPurchaseRecord(s.T(), s.db, "jack", "web", "bronze", "3", day.Add(2*time.Hour))
	database.CreateTestPurchaseRecord(s.T(), s.db, "jack", "store", "gold", "7.5", day.Add(3*time.Hour))
	database.CreateTestPurchaseRecord(s.T(), s.db, "anna", "web", "silver", "2.25", day.Add(4*time.Hour))
	database.CreateTestPurchaseRecord(s.T(), s.db, "jack", "web", "gold", "99", day.AddDate(0, 0, 1))
}

func (s *RoutesSuite) newServer(backend string, withDocs bool) *echo.Echo {
	repo := repositories.NewPurchaseRecordRepository(s.db.DB)
	aggregator, err := services.NewAggregator(backend, repo)
	s.Require().NoError(err)
	logger, _ := logtest.NewNullLogger()

	reportService := services.NewPurchaseReportService(
		repo,
		aggregator,
		services.NewPrometheusMetrics(prometheus.NewRegistry()),
		logger,
		logging.NewDiagnosticLogger(s.diagnostics),
		time.UTC,
	)

	h := Handlers{
		PurchaseRecords: NewPurchaseRecordHandler(reportService, config.DefaultCheckDate),
		Health:          NewHealthCheckHandler(s.db.DB),
	}
	if withDocs {
		h.Docs = NewDocsHandler(s.T().TempDir())
	}

	e := echo.New()
	e.Validator = NewValidator()
	RegisterRoutes(e, h)
	return e
}

func (s *RoutesSuite) get(e *echo.Echo, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

const dailySummaryJSON = `[
	{"purchaser_name": "jack", "sources": [
		{"source": "web", "total_count": 3, "total_amount": "18", "categories": [
			{"type": "gold", "total_count": 2, "total_amount": "15"},
			{"type": "bronze", "total_count": 1, "total_amount": "3"}
		]},
		{"source": "store", "total_count": 1, "total_amount": "7.5", "categories": [
			{"type": "gold", "total_count": 1, "total_amount": "7.5"}
		]}
	]},
	{"purchaser_name": "anna", "sources": [
		{"source": "web", "total_count": 1, "total_amount": "2.25", "categories": [
			{"type": "silver", "total_count": 1, "total_amount": "2.25"}
		]}
	]}
]`

func (s *RoutesSuite) TestPurchaseRecords_BothBackendsAgree() {
	for _, backend := range []string{config.AggregationBackendMemory, config.AggregationBackendStore} {
		s.Run(backend, func() {
			rec := s.get(s.newServer(backend, false), "/api/v1/purchase-records/2024-02-21")

			s.Equal(http.StatusOK, rec.Code)
			s.JSONEq(dailySummaryJSON, rec.Body.String())
		})
	}
}

func (s *RoutesSuite) TestPurchaseRecords_EmptyDay() {
	rec := s.get(s.newServer(config.AggregationBackendMemory, false), "/api/v1/purchase-records/2023-01-01")

	s.Equal(http.StatusNotFound, rec.Code)
	var response ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("PURCHASE_001", response.Error.Code)
}

func (s *RoutesSuite) TestPurchaseRecords_MalformedDate() {
	rec := s.get(s.newServer(config.AggregationBackendMemory, false), "/api/v1/purchase-records/2024-2-21")

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *RoutesSuite) TestCheck_WritesDiagnostics() {
	rec := s.get(s.newServer(config.AggregationBackendMemory, false), "/api/v1/check?purchaser_name=jack&source=web")

	s.Equal(http.StatusOK, rec.Code)
	s.Empty(rec.Body.String())

	lines := strings.Split(strings.TrimSpace(s.diagnostics.String()), "\n")
	s.Equal([]string{
		"Type: gold, Total Count: 2, Total Amount: 15.00",
		"Type: bronze, Total Count: 1, Total Amount: 3.00",
	}, lines)
}

func (s *RoutesSuite) TestCheck_NoMatchesStillSucceeds() {
	rec := s.get(s.newServer(config.AggregationBackendStore, false), "/api/v1/check?purchaser_name=nobody&source=web&purchase_date=2024-02-21")

	s.Equal(http.StatusOK, rec.Code)
	s.Empty(s.diagnostics.String())
}

func (s *RoutesSuite) TestCheck_MissingSource() {
	rec := s.get(s.newServer(config.AggregationBackendMemory, false), "/api/v1/check?purchaser_name=jack")

	s.Equal(http.StatusBadRequest, rec.Code)
	var response ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("VALIDATION_002", response.Error.Code)
	s.Equal([]string{"source: is required"}, response.Error.Details)
	s.Empty(s.diagnostics.String())
}

func (s *RoutesSuite) TestCheck_BlankSourceMatchesBlankRecords() {
	database.CreateTestPurchaseRecord(s.T(), s.db, "jack", " ", "gold", "4", time.Date(2024, 2, 21, 15, 0, 0, 0, time.UTC))

	rec := s.get(s.newServer(config.AggregationBackendStore, false), "/api/v1/check?purchaser_name=jack&source=%20")

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("Type: gold, Total Count: 1, Total Amount: 4.00\n", s.diagnostics.String())
}

func (s *RoutesSuite) TestBlankSourceIsReportedAndCheckable() {
	database.CreateTestPurchaseRecord(s.T(), s.db, "zed", "", "gold", "1", time.Date(2024, 2, 21, 16, 0, 0, 0, time.UTC))
	e := s.newServer(config.AggregationBackendMemory, false)

	rec := s.get(e, "/api/v1/purchase-records/2024-02-21")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `{"purchaser_name":"zed","sources":[{"source":"","total_count":1`)

	rec = s.get(e, "/api/v1/check?purchaser_name=zed&source=")
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("Type: gold, Total Count: 1, Total Amount: 1.00\n", s.diagnostics.String())
}

func (s *RoutesSuite) TestDatabaseFailureIsReportedAsDatabaseError() {
	e := s.newServer(config.AggregationBackendStore, false)
	s.Require().NoError(s.db.Close())

	for _, target := range []string{
		"/api/v1/purchase-records/2024-02-21",
		"/api/v1/check?purchaser_name=jack&source=web",
	} {
		rec := s.get(e, target)

		s.Equal(http.StatusInternalServerError, rec.Code, target)
		var response ErrorResponse
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
		s.Equal("SYSTEM_002", response.Error.Code, target)
		s.NotContains(rec.Body.String(), "sql", target)
	}
}

func (s *RoutesSuite) TestHealthAndMetricsAreMounted() {
	e := s.newServer(config.AggregationBackendMemory, false)

	s.Equal(http.StatusOK, s.get(e, "/health").Code)
	s.Equal(http.StatusOK, s.get(e, "/metrics").Code)
}

func (s *RoutesSuite) TestDocsRoutesFollowConfiguration() {
	s.Equal(http.StatusNotFound, s.get(s.newServer(config.AggregationBackendMemory, false), "/docs").Code)
	s.Equal(http.StatusOK, s.get(s.newServer(config.AggregationBackendMemory, true), "/docs").Code)
}

func (s *RoutesSuite) TestRecordsOutsideTheDayAreIgnored() {
	var count int64
	s.Require().NoError(s.db.Model(&models.PurchaseRecord{}).Count(&count).Error)
	s.Equal(int64(6), count)

	rec := s.get(s.newServer(config.AggregationBackendStore, false), "/api/v1/purchase-records/2024-02-22")

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`[{"purchaser_name": "jack", "sources": [
		{"source": "web", "total_count": 1, "total_amount": "99", "categories": [
			{"type": "gold", "total_count": 1, "total_amount": "99"}
		]}
	]}]`, rec.Body.String())
}
