package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"purchase-report/internal/config"
	"purchase-report/internal/database"
	"purchase-report/internal/handlers"
	"purchase-report/internal/logging"
	"purchase-report/internal/middleware"
	"purchase-report/internal/repositories"
	"purchase-report/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

const docsDir = "docs"

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logrus.WithError(err).Warn("failed to load .env file")
	}

	cfg := config.Load()
	logger := logging.Configure(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.Initialize(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("failed to initialize database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			logrus.WithError(err).Error("failed to close database")
		}
	}()

	repo := repositories.NewPurchaseRecordRepository(db.DB)

	aggregator, err := services.NewAggregator(cfg.Report.AggregationBackend, repo)
	if err != nil {
		logrus.WithError(err).Fatal("invalid REPORT_AGGREGATION_BACKEND")
	}

	reportService := services.NewPurchaseReportService(
		repo,
		aggregator,
		services.NewPrometheusMetrics(prometheus.DefaultRegisterer),
		logger,
		logging.NewDiagnosticLogger(os.Stdout),
		cfg.Report.Location,
	)

	h := handlers.Handlers{
		PurchaseRecords: handlers.NewPurchaseRecordHandler(reportService, cfg.Report.DefaultCheckDate),
		Health:          handlers.NewHealthCheckHandler(db.DB),
	}
	if !cfg.IsProduction() {
		h.Docs = handlers.NewDocsHandler(docsDir)
	}

	e := newServer(ctx, cfg, logger, h)

	go func() {
		logrus.WithFields(logrus.Fields{
			"address":     cfg.Server.Address(),
			"environment": cfg.Server.Environment,
			"backend":     aggregator.Backend(),
		}).Info("starting purchase report API")

		if err := e.Start(cfg.Server.Address()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Fatal("server error")
		}
	}()

	<-ctx.Done()
	logrus.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("server shutdown error")
	}
	logrus.Info("server stopped")
}

func newServer(ctx context.Context, cfg *config.Config, logger *logrus.Logger, h handlers.Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger(logger))
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.NewHTTPMetrics(prometheus.DefaultRegisterer).Middleware())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.Server.CORSAllowOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderContentType, middleware.TraceIDHeader},
		ExposeHeaders:    []string{middleware.TraceIDHeader},
		AllowCredentials: true,
	}))
	e.Use(middleware.RateLimiter(ctx, cfg.Security))

	handlers.RegisterRoutes(e, h)
	return e
}
