package handlers

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers groups every HTTP handler the server exposes
type Handlers struct {
	PurchaseRecords *PurchaseRecordHandler
	Health          *HealthCheckHandler
	// Docs is nil when the API reference is disabled
	Docs *DocsHandler
}

// RegisterRoutes mounts the API, health, metrics and docs routes on e
func RegisterRoutes(e *echo.Echo, h Handlers) {
	e.GET("/health", h.Health.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	if h.Docs != nil {
		e.GET("/docs", h.Docs.ServeScalarUI)
		e.GET("/docs/openapi.json", h.Docs.ServeOAS3JSON)
	}

	v1 := e.Group("/api/v1")
	v1.GET("/purchase-records/:purchase_date", h.PurchaseRecords.GetPurchaseRecords)
	v1.GET("/check", h.PurchaseRecords.CheckPurchaseRecords)
}
