package transactions

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	"github.com/payportal/go-selfservice/internal/common"
	"github.com/payportal/go-selfservice/internal/common/http"
	"github.com/payportal/go-selfservice/internal/common/log"
	"github.com/payportal/go-selfservice/internal/common/validation"
	"github.com/payportal/go-selfservice/internal/models"
)

// downloadTransactions streams the filtered transaction list as a CSV
// attachment. Downstream failures are masked: the caller gets HTTP 200
// with a generic error body, never the upstream status or message.
func (th *transactionsHandler) downloadTransactions(c echo.Context) error {
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

	ctx := c.Request().Context()
	body, fileName, err := th.transactionSrv.ExportTransactionsCSV(ctx, gatewayAccountID, *filters)
	if err != nil {
		log.Error(ctx, "[TRANSACTIONS-DOWNLOAD]", log.Err(err))
		return http.RestMaskedErrorResponse(c)
	}

	return http.CSVSuccessResponse(c, fileName, body)
}
