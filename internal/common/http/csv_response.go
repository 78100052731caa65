package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// CSVSuccessResponse writes the given document as a CSV attachment.
func CSVSuccessResponse(c echo.Context, fileName, body string) error {
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", fileName))
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", []byte(body))
}
