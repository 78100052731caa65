package psptestaccount

import (
	"errors"
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	"github.com/payportal/go-selfservice/internal/common"
	"github.com/payportal/go-selfservice/internal/common/http"
	"github.com/payportal/go-selfservice/internal/common/validation"
	"github.com/payportal/go-selfservice/internal/services"
)

type pspTestAccountHandler struct {
	pspTestAccountSrv services.PspTestAccountService
}

func New(app *echo.Group, pspTestAccountSrv services.PspTestAccountService) {
	handler := pspTestAccountHandler{pspTestAccountSrv}
	app.POST("/psp-test-account", handler.requestTestAccount)
}

func (ph *pspTestAccountHandler) requestTestAccount(c echo.Context) error {
	req := new(services.PspTestAccountRequest)
	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	result, err := ph.pspTestAccountSrv.RequestTestAccount(c.Request().Context(), *req)
	if err != nil {
		if errors.Is(err, common.ErrTestAccountAlreadyExists) {
			return http.RestSuccessResponse(c, nethttp.StatusOK, result)
		}
		return http.RestErrorResponse(c, nethttp.StatusInternalServerError, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusCreated, result)
}
