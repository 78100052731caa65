package team

import (
	"errors"
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	"github.com/payportal/go-selfservice/internal/common"
	"github.com/payportal/go-selfservice/internal/common/http"
	"github.com/payportal/go-selfservice/internal/services"
)

type teamHandler struct {
	teamSrv services.TeamService
}

func New(app *echo.Group, teamSrv services.TeamService) {
	handler := teamHandler{teamSrv}
	app.GET("/team-members", handler.teamMembers)
}

func (th *teamHandler) teamMembers(c echo.Context) error {
	serviceExternalID := c.QueryParam("service_id")
	if serviceExternalID == "" {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, common.ErrMissingServiceExternalID)
	}

	view, err := th.teamSrv.TeamMembers(c.Request().Context(), serviceExternalID)
	if err != nil {
		if errors.Is(err, common.ErrServiceNotFound) {
			return http.RestErrorResponse(c, nethttp.StatusNotFound, err)
		}
		return http.RestErrorResponse(c, nethttp.StatusInternalServerError, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, view)
}
