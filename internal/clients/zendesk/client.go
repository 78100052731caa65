package zendesk

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/payportal/go-selfservice/internal/common"
	"github.com/payportal/go-selfservice/internal/common/httpclient"
	"github.com/payportal/go-selfservice/internal/common/metrics"
	"github.com/payportal/go-selfservice/internal/config"
)

const serviceName = "zendesk"

var logMessage = "[ZENDESK-CLIENT]"

type Client interface {
	CreateTicket(ctx context.Context, opts TicketOpts) error
}

type client struct {
	conf    config.ZendeskConfig
	wrapper *httpclient.RequestWrapper
}

func New(conf config.ZendeskConfig, m metrics.Metrics) Client {
	restyClient := httpclient.NewRestyClient(config.HTTPConfiguration{
		BaseURL: conf.BaseURL,
		Timeout: conf.Timeout,
	})

	return &client{
		conf:    conf,
		wrapper: httpclient.NewRequestWrapper(restyClient, m, serviceName, logMessage),
	}
}

// CreateTicket raises a support ticket. The idempotency key lets the
// caller retry safely without raising duplicates.
func (c *client) CreateTicket(ctx context.Context, opts TicketOpts) error {
	url := fmt.Sprintf("%s/api/v2/tickets.json", c.conf.BaseURL)

	body := ticketRequest{}
	body.Ticket.Subject = opts.Subject
	body.Ticket.Comment.Body = opts.Message
	body.Ticket.GroupID = c.conf.GroupID
	body.Ticket.Type = opts.Type
	body.Ticket.Tags = opts.Tags
	body.Ticket.Requester.Email = opts.Email
	body.Ticket.Requester.Name = opts.Name

	httpRes, err := c.wrapper.DoRequest(ctx, http.MethodPost, url, "/api/v2/tickets.json", func(r *resty.Request) *resty.Request {
		r = r.
			SetHeader("Content-Type", "application/json").
			SetBasicAuth(c.conf.APIUser+"/token", c.conf.APIToken).
			SetBody(body)
		if opts.IdempotencyKey != "" {
			r = r.SetHeader("Idempotency-Key", opts.IdempotencyKey)
		}
		return r
	})
	if err != nil {
		return err
	}

	if httpRes.StatusCode() != http.StatusCreated && httpRes.StatusCode() != http.StatusOK {
		return fmt.Errorf("%w: zendesk returned %d", common.ErrUpstreamResponse, httpRes.StatusCode())
	}

	return nil
}
