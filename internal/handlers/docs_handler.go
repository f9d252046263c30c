package handlers

import (
	"crypto/md5"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/labstack/echo/v4"
)

// DocsHandler serves the API reference UI and its OpenAPI document
type DocsHandler struct {
	scalarHTML []byte
	scalarETag string
	oas3Path   string
}

// NewDocsHandler loads the docs UI from dir
func NewDocsHandler(dir string) *DocsHandler {
	scalarHTML, err := os.ReadFile(filepath.Join(dir, "scalar.html"))
	if err != nil {
		scalarHTML = []byte{}
	}

	return &DocsHandler{
		scalarHTML: scalarHTML,
		scalarETag: generateETag(scalarHTML),
		oas3Path:   filepath.Join(dir, "openapi.json"),
	}
}

// ServeScalarUI serves the Scalar HTML page
//
// Method: GET /docs
func (h *DocsHandler) ServeScalarUI(c echo.Context) error {
	c.Response().Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	c.Response().Header().Set("Pragma", "no-cache")
	c.Response().Header().Set("Expires", "0")

	if h.scalarETag != "" {
		c.Response().Header().Set("ETag", h.scalarETag)
		if match := c.Request().Header.Get("If-None-Match"); match != "" && match == h.scalarETag {
			return c.NoContent(http.StatusNotModified)
		}
	}

	return c.HTMLBlob(http.StatusOK, h.scalarHTML)
}

// ServeOAS3JSON serves the OpenAPI document loaded by the Scalar page
//
// Method: GET /docs/openapi.json
func (h *DocsHandler) ServeOAS3JSON(c echo.Context) error {
	c.Response().Header().Set("Cache-Control", "public, max-age=300")
	c.Response().Header().Set("Content-Type", "application/json; charset=utf-8")
	return c.File(h.oas3Path)
}

// generateETag creates an ETag hash for cache control
func generateETag(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	hash := md5.Sum(data)
	return fmt.Sprintf("\"%x\"", hash)
}
