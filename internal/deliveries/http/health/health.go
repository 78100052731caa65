package health

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type healthHandler struct{}

func New(app *echo.Group) {
	handler := healthHandler{}
	app.GET("/healthcheck", handler.healthcheck)
}

func (h healthHandler) healthcheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"ping": map[string]bool{"healthy": true},
	})
}
