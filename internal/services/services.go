package services

import (
	"time"

	"github.com/payportal/go-selfservice/internal/clients/adminusers"
	"github.com/payportal/go-selfservice/internal/clients/connector"
	"github.com/payportal/go-selfservice/internal/clients/ledger"
	"github.com/payportal/go-selfservice/internal/clients/products"
	"github.com/payportal/go-selfservice/internal/clients/zendesk"
	"github.com/payportal/go-selfservice/internal/common/metrics"
	"github.com/payportal/go-selfservice/internal/config"
)

type service struct {
	srv *Services
}

type Services struct {
	conf config.Config

	ledgerClient     ledger.Client
	connectorClient  connector.Client
	adminUsersClient adminusers.Client
	zendeskClient    zendesk.Client
	productsClient   products.Client
	metrics          metrics.Metrics

	// injectable clock for the export filename
	now func() time.Time

	common service

	Transaction    *transaction
	Team           *team
	Email          *email
	PaymentLink    *paymentLink
	PspTestAccount *pspTestAccount
}

func New(
	conf config.Config,
	ledgerClient ledger.Client,
	connectorClient connector.Client,
	adminUsersClient adminusers.Client,
	zendeskClient zendesk.Client,
	productsClient products.Client,
	metrics metrics.Metrics,
) *Services {
	srv := &Services{
		conf:             conf,
		ledgerClient:     ledgerClient,
		connectorClient:  connectorClient,
		adminUsersClient: adminUsersClient,
		zendeskClient:    zendeskClient,
		productsClient:   productsClient,
		metrics:          metrics,
		now:              time.Now,
	}
	srv.common.srv = srv
	srv.Transaction = (*transaction)(&srv.common)
	srv.Team = (*team)(&srv.common)
	srv.Email = (*email)(&srv.common)
	srv.PaymentLink = (*paymentLink)(&srv.common)
	srv.PspTestAccount = (*pspTestAccount)(&srv.common)

	return srv
}

// WithClock overrides the clock, for tests.
func (s *Services) WithClock(now func() time.Time) *Services {
	s.now = now
	return s
}
