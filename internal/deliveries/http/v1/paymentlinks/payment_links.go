package paymentlinks

import (
	"errors"
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	"github.com/payportal/go-selfservice/internal/common"
	"github.com/payportal/go-selfservice/internal/common/http"
	"github.com/payportal/go-selfservice/internal/common/validation"
	"github.com/payportal/go-selfservice/internal/models"
	"github.com/payportal/go-selfservice/internal/services"
)

type paymentLinksHandler struct {
	paymentLinkSrv services.PaymentLinkService
}

func New(app *echo.Group, paymentLinkSrv services.PaymentLinkService) {
	handler := paymentLinksHandler{paymentLinkSrv}
	links := app.Group("/payment-links")
	links.GET("", handler.listPaymentLinks)
	links.POST("", handler.createPaymentLink)
}

func (ph *paymentLinksHandler) listPaymentLinks(c echo.Context) error {
	gatewayAccountID := c.QueryParam("account_id")
	if gatewayAccountID == "" {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, common.ErrMissingGatewayAccountID)
	}

	links, err := ph.paymentLinkSrv.ListPaymentLinks(c.Request().Context(), gatewayAccountID)
	if err != nil {
		if errors.Is(err, common.ErrPaymentLinkNotFound) {
			return http.RestErrorResponse(c, nethttp.StatusNotFound, err)
		}
		return http.RestErrorResponse(c, nethttp.StatusInternalServerError, err)
	}

	return http.RestSuccessResponseListWithTotalRows(c, links, len(links))
}

func (ph *paymentLinksHandler) createPaymentLink(c echo.Context) error {
	gatewayAccountID := c.QueryParam("account_id")
	if gatewayAccountID == "" {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, common.ErrMissingGatewayAccountID)
	}

	req := new(models.CreatePaymentLinkRequest)
	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	link, err := ph.paymentLinkSrv.CreatePaymentLink(c.Request().Context(), gatewayAccountID, *req)
	if err != nil {
		if errors.Is(err, common.ErrPaymentLinkNotFound) {
			return http.RestErrorResponse(c, nethttp.StatusNotFound, err)
		}
		return http.RestErrorResponse(c, nethttp.StatusInternalServerError, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusCreated, link)
}
