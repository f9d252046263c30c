package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// RequestLogger writes one access log line per request
func RequestLogger(logger logrus.FieldLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				// let the error handler write the response so the status is final
				c.Error(err)
			}

			req := c.Request()
			status := c.Response().Status
			entry := logger.WithFields(logrus.Fields{
				"trace_id":    GetTraceID(c),
				"method":      req.Method,
				"path":        req.URL.Path,
				"query":       req.URL.RawQuery,
				"status":      status,
				"latency_ms":  time.Since(start).Milliseconds(),
				"remote_addr": c.RealIP(),
				"bytes_out":   c.Response().Size,
			})

			switch {
			case status >= 500:
				entry.Error("request completed")
			case status >= 400:
				entry.Warn("request completed")
			default:
				entry.Info("request completed")
			}

			return nil
		}
	}
}
