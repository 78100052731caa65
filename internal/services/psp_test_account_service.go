package services

import (
	"context"
	"fmt"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"

	"github.com/payportal/go-selfservice/internal/clients/zendesk"
	"github.com/payportal/go-selfservice/internal/common"
	"github.com/payportal/go-selfservice/internal/common/log"
	"github.com/payportal/go-selfservice/internal/models"
)

type PspTestAccountRequest struct {
	Service        models.PortalService `json:"service" validate:"required"`
	RequesterEmail string               `json:"requester_email" validate:"required,email"`
	RequesterName  string               `json:"requester_name" validate:"required"`
}

type PspTestAccountResult struct {
	Submitted bool   `json:"submitted"`
	Stage     string `json:"stage"`
}

type PspTestAccountService interface {
	RequestTestAccount(ctx context.Context, req PspTestAccountRequest) (PspTestAccountResult, error)
}

type pspTestAccount service

var _ PspTestAccountService = (*pspTestAccount)(nil)

// RequestTestAccount raises a support ticket for a PSP test account and
// records the stage change on the service. The ticket carries an
// idempotency key and the stage update is retried, so a crash between the
// two steps cannot leave a ticket raised but the stage unrecorded without
// a way to converge.
func (p *pspTestAccount) RequestTestAccount(ctx context.Context, req PspTestAccountRequest) (PspTestAccountResult, error) {
	stage := req.Service.CurrentPspTestAccountStage
	if stage != "" && stage != models.PspTestAccountNotStarted {
		return PspTestAccountResult{Submitted: false, Stage: stage}, common.ErrTestAccountAlreadyExists
	}

	message := fmt.Sprintf("Service name: %s\nService ID: %s\nPSP: Stripe\nEmail address: %s\nService created at: %s",
		req.Service.Name, req.Service.ExternalID, req.RequesterEmail, req.Service.CreatedDate)

	err := p.srv.zendeskClient.CreateTicket(ctx, zendesk.TicketOpts{
		Email:          req.RequesterEmail,
		Name:           req.RequesterName,
		Type:           "task",
		Subject:        fmt.Sprintf("Request for test Stripe account from service (%s)", req.Service.Name),
		Tags:           []string{"portal_support"},
		Message:        message,
		IdempotencyKey: uuid.NewString(),
	})
	if err != nil {
		return PspTestAccountResult{}, fmt.Errorf("unable to raise support ticket: %w", err)
	}

	// the stage update is idempotent on adminusers, retry it rather than
	// leaving the ticket orphaned
	operation := func() error {
		return p.srv.adminUsersClient.UpdatePspTestAccountStage(ctx, req.Service.ExternalID, models.PspTestAccountRequestSubmitted)
	}
	if err := backoff.Retry(operation, backoff.WithContext(backoff.NewExponentialBackOff(), ctx)); err != nil {
		return PspTestAccountResult{}, fmt.Errorf("ticket raised but stage update failed: %w", err)
	}

	log.Info(ctx, "[PSP-TEST-ACCOUNT]",
		log.String("message", "submitted request for test Stripe account"),
		log.String("serviceExternalId", req.Service.ExternalID))

	return PspTestAccountResult{Submitted: true, Stage: models.PspTestAccountRequestSubmitted}, nil
}
