package transactions

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

type transactionsHandler struct {
	transactionSrv services.TransactionService
}

// New registers the transactions resource endpoints.
func New(app *echo.Group, transactionSrv services.TransactionService) {
	handler := transactionsHandler{transactionSrv}
	transactions := app.Group("/transactions")
	transactions.GET("", handler.searchTransactions)
	transactions.GET("/download", handler.downloadTransactions)
	transactions.GET("/summary", handler.transactionSummary)
	transactions.GET("/:transactionId", handler.getTransaction)
}

func (th *transactionsHandler) searchTransactions(c echo.Context) error {
	gatewayAccountID := c.QueryParam("account_id")
	if gatewayAccountID == "" {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, common.ErrMissingGatewayAccountID)
	}

	filters := new(models.TransactionFilters)
	if err := c.Bind(filters); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	if err := validation.ValidateStruct(filters); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	views, total, err := th.transactionSrv.SearchTransactions(c.Request().Context(), gatewayAccountID, *filters)
	if err != nil {
		return http.RestErrorResponse(c, getHTTPStatusCode(err), err)
	}

	return http.RestSuccessResponseListWithTotalRows(c, views, total)
}

func (th *transactionsHandler) getTransaction(c echo.Context) error {
	gatewayAccountID := c.QueryParam("account_id")
	if gatewayAccountID == "" {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, common.ErrMissingGatewayAccountID)
	}

	view, err := th.transactionSrv.GetPaymentView(c.Request().Context(), gatewayAccountID, c.Param("transactionId"))
	if err != nil {
		return http.RestErrorResponse(c, getHTTPStatusCode(err), err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, view)
}

func (th *transactionsHandler) transactionSummary(c echo.Context) error {
	gatewayAccountID := c.QueryParam("account_id")
	if gatewayAccountID == "" {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, common.ErrMissingGatewayAccountID)
	}

	summary, err := th.transactionSrv.TransactionSummary(c.Request().Context(),
		gatewayAccountID, c.QueryParam("from_date"), c.QueryParam("to_date"))
	if err != nil {
		return http.RestErrorResponse(c, getHTTPStatusCode(err), err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, summary)
}

func getHTTPStatusCode(err error) int {
	switch {
	case errors.Is(err, common.ErrTransactionNotFound),
		errors.Is(err, common.ErrGatewayAccountNotFound):
		return nethttp.StatusNotFound
	default:
		return nethttp.StatusInternalServerError
	}
}
