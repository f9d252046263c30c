package middleware

import (
	"github.com/labstack/echo/v4"
)

const (
	apiContentSecurityPolicy = "default-src 'self'"

	// the Scalar reference page loads its bundle, styles and fonts from CDNs
	docsContentSecurityPolicy = "default-src 'self'; " +
		"script-src 'self' 'unsafe-inline' 'unsafe-eval' https://cdn.jsdelivr.net; " +
		"style-src 'self' 'unsafe-inline' https://fonts.googleapis.com https://cdn.jsdelivr.net; " +
		"font-src 'self' https://fonts.gstatic.com https://cdn.jsdelivr.net data:; " +
		"img-src 'self' data: https: blob:; " +
		"connect-src 'self'; " +
		"worker-src 'self' blob:"
)

// SecurityHeaders adds security headers to responses
func SecurityHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("X-Frame-Options", "DENY")
			h.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			h.Set("Permissions-Policy", "geolocation=(), microphone=(), camera=()")

			if c.Path() == "/docs" {
				h.Set("Content-Security-Policy", docsContentSecurityPolicy)
			} else {
				h.Set("Content-Security-Policy", apiContentSecurityPolicy)
			}

			// reports are recomputed from live data on every call
			h.Set("Cache-Control", "no-store")

			return next(c)
		}
	}
}
