package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/payportal/go-selfservice/internal/common"
	"github.com/payportal/go-selfservice/internal/common/httpclient"
	"github.com/payportal/go-selfservice/internal/common/metrics"
	"github.com/payportal/go-selfservice/internal/config"
	"github.com/payportal/go-selfservice/internal/models"
)

const serviceName = "ledger"

var logMessage = "[LEDGER-CLIENT]"

type Client interface {
	Transaction(ctx context.Context, transactionID, gatewayAccountID string) (models.Transaction, error)
	Events(ctx context.Context, transactionID, gatewayAccountID string) ([]models.TransactionEvent, error)
	Transactions(ctx context.Context, gatewayAccountID string, filters models.TransactionFilters) (TransactionSearchResult, error)
	DisputeForTransaction(ctx context.Context, transactionID, gatewayAccountID string) (*models.DisputeData, error)
	TransactionSummary(ctx context.Context, gatewayAccountID, fromDate, toDate string) (models.TransactionSummary, error)
}

type client struct {
	baseURL string
	wrapper *httpclient.RequestWrapper
}

func New(configuration config.HTTPConfiguration, m metrics.Metrics) Client {
	restyClient := httpclient.NewRestyClient(configuration)

	return &client{
		baseURL: configuration.BaseURL,
		wrapper: httpclient.NewRequestWrapper(restyClient, m, serviceName, logMessage),
	}
}

func (c *client) Transaction(ctx context.Context, transactionID, gatewayAccountID string) (res models.Transaction, err error) {
	url := fmt.Sprintf("%s/v1/transaction/%s", c.baseURL, transactionID)

	httpRes, err := c.wrapper.DoRequest(ctx, http.MethodGet, url, "/v1/transaction/:transactionId", func(r *resty.Request) *resty.Request {
		return r.SetQueryParam("account_id", gatewayAccountID)
	})
	if err != nil {
		return res, err
	}

	switch httpRes.StatusCode() {
	case http.StatusOK:
	case http.StatusNotFound:
		return res, common.ErrTransactionNotFound
	default:
		return res, fmt.Errorf("%w: ledger returned %d", common.ErrUpstreamResponse, httpRes.StatusCode())
	}

	if err = json.Unmarshal(httpRes.Body(), &res); err != nil {
		return res, fmt.Errorf("error unmarshal response: %w", err)
	}

	return res, nil
}

func (c *client) Events(ctx context.Context, transactionID, gatewayAccountID string) ([]models.TransactionEvent, error) {
	url := fmt.Sprintf("%s/v1/transaction/%s/event", c.baseURL, transactionID)

	httpRes, err := c.wrapper.DoRequest(ctx, http.MethodGet, url, "/v1/transaction/:transactionId/event", func(r *resty.Request) *resty.Request {
		return r.SetQueryParam("gateway_account_id", gatewayAccountID)
	})
	if err != nil {
		return nil, err
	}

	switch httpRes.StatusCode() {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, common.ErrTransactionNotFound
	default:
		return nil, fmt.Errorf("%w: ledger returned %d", common.ErrUpstreamResponse, httpRes.StatusCode())
	}

	var res eventsResponse
	if err = json.Unmarshal(httpRes.Body(), &res); err != nil {
		return nil, fmt.Errorf("error unmarshal response: %w", err)
	}

	return res.Events, nil
}

func (c *client) Transactions(ctx context.Context, gatewayAccountID string, filters models.TransactionFilters) (res TransactionSearchResult, err error) {
	url := fmt.Sprintf("%s/v1/transaction", c.baseURL)

	httpRes, err := c.wrapper.DoRequest(ctx, http.MethodGet, url, "/v1/transaction", func(r *resty.Request) *resty.Request {
		r = r.SetQueryParam("account_id", gatewayAccountID)
		r = r.SetQueryParam("with_parent_transaction", "true")
		return r.SetQueryParams(filters.ToQueryParams())
	})
	if err != nil {
		return res, err
	}

	if httpRes.StatusCode() != http.StatusOK {
		return res, fmt.Errorf("%w: ledger returned %d", common.ErrUpstreamResponse, httpRes.StatusCode())
	}

	if err = json.Unmarshal(httpRes.Body(), &res); err != nil {
		return res, fmt.Errorf("error unmarshal response: %w", err)
	}

	return res, nil
}

// DisputeForTransaction fetches the DISPUTE record attached to a payment.
// Returns ErrDisputeNotFound when the ledger holds none.
func (c *client) DisputeForTransaction(ctx context.Context, transactionID, gatewayAccountID string) (*models.DisputeData, error) {
	url := fmt.Sprintf("%s/v1/transaction/%s", c.baseURL, transactionID)

	httpRes, err := c.wrapper.DoRequest(ctx, http.MethodGet, url, "/v1/transaction/:transactionId", func(r *resty.Request) *resty.Request {
		return r.
			SetQueryParam("account_id", gatewayAccountID).
			SetQueryParam("transaction_type", "DISPUTE").
			SetQueryParam("parent_external_id", transactionID)
	})
	if err != nil {
		return nil, err
	}

	switch httpRes.StatusCode() {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, common.ErrDisputeNotFound
	default:
		return nil, fmt.Errorf("%w: ledger returned %d", common.ErrUpstreamResponse, httpRes.StatusCode())
	}

	var res models.DisputeData
	if err = json.Unmarshal(httpRes.Body(), &res); err != nil {
		return nil, fmt.Errorf("error unmarshal response: %w", err)
	}

	return &res, nil
}

func (c *client) TransactionSummary(ctx context.Context, gatewayAccountID, fromDate, toDate string) (res models.TransactionSummary, err error) {
	url := fmt.Sprintf("%s/v1/report/transactions-summary", c.baseURL)

	httpRes, err := c.wrapper.DoRequest(ctx, http.MethodGet, url, "/v1/report/transactions-summary", func(r *resty.Request) *resty.Request {
		return r.
			SetQueryParam("account_id", gatewayAccountID).
			SetQueryParam("from_date", fromDate).
			SetQueryParam("to_date", toDate)
	})
	if err != nil {
		return res, err
	}

	if httpRes.StatusCode() != http.StatusOK {
		return res, fmt.Errorf("%w: ledger returned %d", common.ErrUpstreamResponse, httpRes.StatusCode())
	}

	if err = json.Unmarshal(httpRes.Body(), &res); err != nil {
		return res, fmt.Errorf("error unmarshal response: %w", err)
	}

	return res, nil
}
