package services

import (
	"context"

	"github.com/payportal/go-selfservice/internal/models"
)

type PaymentLinkService interface {
	ListPaymentLinks(ctx context.Context, gatewayAccountID string) ([]models.PaymentLink, error)
	CreatePaymentLink(ctx context.Context, gatewayAccountID string, req models.CreatePaymentLinkRequest) (models.PaymentLink, error)
}

type paymentLink service

var _ PaymentLinkService = (*paymentLink)(nil)

func (p *paymentLink) ListPaymentLinks(ctx context.Context, gatewayAccountID string) ([]models.PaymentLink, error) {
	return p.srv.productsClient.PaymentLinks(ctx, gatewayAccountID)
}

func (p *paymentLink) CreatePaymentLink(ctx context.Context, gatewayAccountID string, req models.CreatePaymentLinkRequest) (models.PaymentLink, error) {
	if req.Language == "" {
		req.Language = "en"
	}
	return p.srv.productsClient.CreatePaymentLink(ctx, gatewayAccountID, req)
}
