package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"purchase-report/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// PanicRecovery turns a panic in a handler into a SYSTEM_001 response
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				traceID := GetTraceID(c)
				if traceID == "" {
					traceID = "unknown"
				}

				log := logrus.WithFields(logrus.Fields{
					"trace_id": traceID,
					"path":     c.Request().URL.Path,
					"method":   c.Request().Method,
				})
				log.WithFields(logrus.Fields{
					"panic":       fmt.Sprintf("%v", r),
					"stack_trace": string(debug.Stack()),
				}).Error("panic recovered")

				if c.Response().Committed {
					return
				}

				errorResponse := errors.NewErrorResponse(errors.SystemInternalError, traceID)
				if err := c.JSON(http.StatusInternalServerError, errorResponse); err != nil {
					log.WithError(err).Error("failed to send panic recovery response")
				}
			}()

			return next(c)
		}
	}
}
