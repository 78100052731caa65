package http

import (
	"errors"
	"net/http"

	"github.com/hashicorp/go-multierror"
	"github.com/labstack/echo/v4"

	"github.com/payportal/go-selfservice/internal/common"
)

type (
	RestErrorResponseModel struct {
		Status  string      `json:"status" example:"error"`
		Code    interface{} `json:"code"`
		Message string      `json:"message" example:"error"`
	}

	RestTotalRowResponseModel struct {
		Kind      string      `json:"kind" example:"collection"`
		Contents  interface{} `json:"contents"`
		TotalRows int         `json:"total_rows" example:"100"`
	}

	RestErrorValidationResponseModel struct {
		Status  string      `json:"status" example:"error"`
		Message string      `json:"message" example:"validation error"`
		Errors  interface{} `json:"errors"`
	}

	// MaskedErrorResponseModel is the body returned when a downstream
	// failure must not leak details or status codes to the caller.
	MaskedErrorResponseModel struct {
		Message string `json:"message" example:"Internal server error"`
	}
)

func RestSuccessResponse(c echo.Context, code int, in interface{}) error {
	return c.JSON(code, in)
}

func RestSuccessResponseListWithTotalRows(c echo.Context, data interface{}, totalRows int) error {
	return c.JSON(http.StatusOK, RestTotalRowResponseModel{
		Kind:      "collection",
		Contents:  data,
		TotalRows: totalRows,
	})
}

func RestErrorResponse(c echo.Context, statusCode int, err error) error {
	res := RestErrorResponseModel{
		Status:  "error",
		Code:    statusCode,
		Message: err.Error(),
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		res.Code = echoErr.Code
		if msg, ok := echoErr.Message.(string); ok {
			res.Message = msg
		}
	}

	return c.JSON(statusCode, res)
}

func RestErrorValidationResponse(c echo.Context, errs error) error {
	res := RestErrorValidationResponseModel{
		Status:  "error",
		Message: common.ErrValidation.Error(),
	}
	var data *multierror.Error
	if errors.As(errs, &data) {
		res.Errors = data.Errors
	}

	return c.JSON(http.StatusUnprocessableEntity, res)
}

// RestMaskedErrorResponse substitutes a generic error body with HTTP 200.
// The export endpoints must never propagate downstream errors or status
// codes verbatim.
func RestMaskedErrorResponse(c echo.Context) error {
	return c.JSON(http.StatusOK, MaskedErrorResponseModel{Message: "Internal server error"})
}
