package services

import (
	"context"
	"fmt"

	"github.com/payportal/go-selfservice/internal/common"
	"github.com/payportal/go-selfservice/internal/models"
)

type EmailService interface {
	SetCollectionMode(ctx context.Context, gatewayAccountID, mode string) error
	SetConfirmationEnabled(ctx context.Context, gatewayAccountID string, enabled bool) error
	SetConfirmationTemplateBody(ctx context.Context, gatewayAccountID, body string) error
	SetRefundEmailEnabled(ctx context.Context, gatewayAccountID string, enabled bool) error
}

type email service

var _ EmailService = (*email)(nil)

func (e *email) SetCollectionMode(ctx context.Context, gatewayAccountID, mode string) error {
	switch mode {
	case models.EmailCollectionMandatory, models.EmailCollectionOptional, models.EmailCollectionOff:
	default:
		return fmt.Errorf("%w: unknown collection mode %q", common.ErrInvalidEmailPatchOp, mode)
	}

	return e.patch(ctx, gatewayAccountID, models.EmailPathCollectionMode, mode)
}

func (e *email) SetConfirmationEnabled(ctx context.Context, gatewayAccountID string, enabled bool) error {
	return e.patch(ctx, gatewayAccountID, models.EmailPathConfirmationEnabled, enabled)
}

func (e *email) SetConfirmationTemplateBody(ctx context.Context, gatewayAccountID, body string) error {
	return e.patch(ctx, gatewayAccountID, models.EmailPathConfirmationBody, body)
}

func (e *email) SetRefundEmailEnabled(ctx context.Context, gatewayAccountID string, enabled bool) error {
	return e.patch(ctx, gatewayAccountID, models.EmailPathRefundEnabled, enabled)
}

func (e *email) patch(ctx context.Context, gatewayAccountID, path string, value interface{}) error {
	err := e.srv.connectorClient.PatchEmailNotification(ctx, gatewayAccountID, models.EmailNotificationUpdate{
		Op:    "replace",
		Path:  path,
		Value: value,
	})
	if err != nil {
		return fmt.Errorf("calling connector to update email notifications failed: %w", err)
	}
	return nil
}
