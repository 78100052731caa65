package products

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

const serviceName = "products"

var logMessage = "[PRODUCTS-CLIENT]"

type Client interface {
	PaymentLinks(ctx context.Context, gatewayAccountID string) ([]models.PaymentLink, error)
	CreatePaymentLink(ctx context.Context, gatewayAccountID string, req models.CreatePaymentLinkRequest) (models.PaymentLink, error)
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

func (c *client) PaymentLinks(ctx context.Context, gatewayAccountID string) ([]models.PaymentLink, error) {
	url := fmt.Sprintf("%s/v1/api/gateway-account/%s/products", c.baseURL, gatewayAccountID)

	httpRes, err := c.wrapper.DoRequest(ctx, http.MethodGet, url, "/v1/api/gateway-account/:accountId/products", func(r *resty.Request) *resty.Request {
		return r.SetQueryParam("type", "ADHOC")
	})
	if err != nil {
		return nil, err
	}

	if httpRes.StatusCode() == http.StatusNotFound {
		return nil, common.ErrPaymentLinkNotFound
	}

	if httpRes.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("%w: products returned %d", common.ErrUpstreamResponse, httpRes.StatusCode())
	}

	var res []models.PaymentLink
	if err = json.Unmarshal(httpRes.Body(), &res); err != nil {
		return nil, fmt.Errorf("error unmarshal response: %w", err)
	}

	return res, nil
}

func (c *client) CreatePaymentLink(ctx context.Context, gatewayAccountID string, req models.CreatePaymentLinkRequest) (res models.PaymentLink, err error) {
	url := fmt.Sprintf("%s/v1/api/gateway-account/%s/products", c.baseURL, gatewayAccountID)

	httpRes, err := c.wrapper.DoRequest(ctx, http.MethodPost, url, "/v1/api/gateway-account/:accountId/products", func(r *resty.Request) *resty.Request {
		return r.
			SetHeader("Content-Type", "application/json").
			SetBody(req)
	})
	if err != nil {
		return res, err
	}

	if httpRes.StatusCode() == http.StatusNotFound {
		return res, common.ErrPaymentLinkNotFound
	}

	if httpRes.StatusCode() != http.StatusCreated && httpRes.StatusCode() != http.StatusOK {
		return res, fmt.Errorf("%w: products returned %d", common.ErrUpstreamResponse, httpRes.StatusCode())
	}

	if err = json.Unmarshal(httpRes.Body(), &res); err != nil {
		return res, fmt.Errorf("error unmarshal response: %w", err)
	}

	return res, nil
}
