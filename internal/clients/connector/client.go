package connector

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/payportal/go-selfservice/internal/common"
	"github.com/payportal/go-selfservice/internal/common/cache"
	"github.com/payportal/go-selfservice/internal/common/httpclient"
	"github.com/payportal/go-selfservice/internal/common/metrics"
	"github.com/payportal/go-selfservice/internal/config"
	"github.com/payportal/go-selfservice/internal/models"
)

const serviceName = "connector"

var logMessage = "[CONNECTOR-CLIENT]"

type Client interface {
	GetGatewayAccount(ctx context.Context, gatewayAccountID string) (models.GatewayAccount, error)
	PatchEmailNotification(ctx context.Context, gatewayAccountID string, update models.EmailNotificationUpdate) error
}

type client struct {
	baseURL string
	wrapper *httpclient.RequestWrapper

	accountCache cache.Client[models.GatewayAccount]
	cacheTTL     time.Duration
}

func New(
	configuration config.HTTPConfiguration,
	m metrics.Metrics,
	accountCache cache.Client[models.GatewayAccount],
	cacheTTL time.Duration,
) Client {
	restyClient := httpclient.NewRestyClient(configuration)

	return &client{
		baseURL:      configuration.BaseURL,
		wrapper:      httpclient.NewRequestWrapper(restyClient, m, serviceName, logMessage),
		accountCache: accountCache,
		cacheTTL:     cacheTTL,
	}
}

// GetGatewayAccount looks up a gateway account, served from cache when
// fresh. The record carries the corporate-exemptions feature flag and the
// email notification settings.
func (c *client) GetGatewayAccount(ctx context.Context, gatewayAccountID string) (models.GatewayAccount, error) {
	return c.accountCache.GetOrSet(ctx, cache.GetOrSetOpts[models.GatewayAccount]{
		Key: fmt.Sprintf("selfservice:connector:gateway-account:%s", gatewayAccountID),
		TTL: c.cacheTTL,
		Callback: func() (models.GatewayAccount, error) {
			return c.fetchGatewayAccount(ctx, gatewayAccountID)
		},
	})
}

func (c *client) fetchGatewayAccount(ctx context.Context, gatewayAccountID string) (res models.GatewayAccount, err error) {
	url := fmt.Sprintf("%s/v1/api/accounts/%s", c.baseURL, gatewayAccountID)

	httpRes, err := c.wrapper.DoRequest(ctx, http.MethodGet, url, "/v1/api/accounts/:accountId", nil)
	if err != nil {
		return res, err
	}

	switch httpRes.StatusCode() {
	case http.StatusOK:
	case http.StatusNotFound:
		return res, common.ErrGatewayAccountNotFound
	default:
		return res, fmt.Errorf("%w: connector returned %d", common.ErrUpstreamResponse, httpRes.StatusCode())
	}

	if err = json.Unmarshal(httpRes.Body(), &res); err != nil {
		return res, fmt.Errorf("error unmarshal response: %w", err)
	}

	return res, nil
}

func (c *client) PatchEmailNotification(ctx context.Context, gatewayAccountID string, update models.EmailNotificationUpdate) error {
	url := fmt.Sprintf("%s/v1/api/accounts/%s/email-notification", c.baseURL, gatewayAccountID)

	httpRes, err := c.wrapper.DoRequest(ctx, http.MethodPatch, url, "/v1/api/accounts/:accountId/email-notification", func(r *resty.Request) *resty.Request {
		return r.
			SetHeader("Content-Type", "application/json").
			SetBody(update)
	})
	if err != nil {
		return err
	}

	switch httpRes.StatusCode() {
	case http.StatusOK, http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		return common.ErrGatewayAccountNotFound
	default:
		return fmt.Errorf("%w: connector returned %d", common.ErrUpstreamResponse, httpRes.StatusCode())
	}
}
