package adminusers

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

const serviceName = "adminusers"

var logMessage = "[ADMINUSERS-CLIENT]"

type Client interface {
	ServiceUsers(ctx context.Context, serviceExternalID string) ([]models.User, error)
	InvitedUsers(ctx context.Context, serviceExternalID string) ([]models.InvitedUser, error)
	UpdatePspTestAccountStage(ctx context.Context, serviceExternalID, stage string) error
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

func (c *client) ServiceUsers(ctx context.Context, serviceExternalID string) ([]models.User, error) {
	url := fmt.Sprintf("%s/v1/api/services/%s/users", c.baseURL, serviceExternalID)

	httpRes, err := c.wrapper.DoRequest(ctx, http.MethodGet, url, "/v1/api/services/:serviceId/users", nil)
	if err != nil {
		return nil, err
	}

	switch httpRes.StatusCode() {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, common.ErrServiceNotFound
	default:
		return nil, fmt.Errorf("%w: adminusers returned %d", common.ErrUpstreamResponse, httpRes.StatusCode())
	}

	var res []models.User
	if err = json.Unmarshal(httpRes.Body(), &res); err != nil {
		return nil, fmt.Errorf("error unmarshal response: %w", err)
	}

	return res, nil
}

func (c *client) InvitedUsers(ctx context.Context, serviceExternalID string) ([]models.InvitedUser, error) {
	url := fmt.Sprintf("%s/v1/api/invites", c.baseURL)

	httpRes, err := c.wrapper.DoRequest(ctx, http.MethodGet, url, "/v1/api/invites", func(r *resty.Request) *resty.Request {
		return r.SetQueryParam("serviceId", serviceExternalID)
	})
	if err != nil {
		return nil, err
	}

	if httpRes.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("%w: adminusers returned %d", common.ErrUpstreamResponse, httpRes.StatusCode())
	}

	var res []models.InvitedUser
	if err = json.Unmarshal(httpRes.Body(), &res); err != nil {
		return nil, fmt.Errorf("error unmarshal response: %w", err)
	}

	return res, nil
}

func (c *client) UpdatePspTestAccountStage(ctx context.Context, serviceExternalID, stage string) error {
	url := fmt.Sprintf("%s/v1/api/services/%s", c.baseURL, serviceExternalID)

	httpRes, err := c.wrapper.DoRequest(ctx, http.MethodPatch, url, "/v1/api/services/:serviceId", func(r *resty.Request) *resty.Request {
		return r.
			SetHeader("Content-Type", "application/json").
			SetBody(map[string]interface{}{
				"op":    "replace",
				"path":  "current_psp_test_account_stage",
				"value": stage,
			})
	})
	if err != nil {
		return err
	}

	switch httpRes.StatusCode() {
	case http.StatusOK, http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		return common.ErrServiceNotFound
	default:
		return fmt.Errorf("%w: adminusers returned %d", common.ErrUpstreamResponse, httpRes.StatusCode())
	}
}
