package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/payportal/go-selfservice/internal/models"
)

func TestPaymentLinkService_ListPaymentLinks(t *testing.T) {
	helper := serviceTestHelper(t)
	ctx := context.Background()

	links := []models.PaymentLink{
		{ExternalID: "link-1", Name: "Pay for a parking permit"},
	}
	helper.mockProducts.EXPECT().PaymentLinks(gomock.Any(), "42").Return(links, nil)

	got, err := helper.services.PaymentLink.ListPaymentLinks(ctx, "42")
	require.NoError(t, err)
	assert.Equal(t, links, got)
}

func TestPaymentLinkService_CreatePaymentLink_DefaultsLanguage(t *testing.T) {
	helper := serviceTestHelper(t)
	ctx := context.Background()

	helper.mockProducts.EXPECT().CreatePaymentLink(gomock.Any(), "42", models.CreatePaymentLinkRequest{
		Name:     "Donate",
		Language: "en",
	}).Return(models.PaymentLink{ExternalID: "link-1", Name: "Donate"}, nil)

	got, err := helper.services.PaymentLink.CreatePaymentLink(ctx, "42", models.CreatePaymentLinkRequest{Name: "Donate"})
	require.NoError(t, err)
	assert.Equal(t, "link-1", got.ExternalID)
}

func TestPaymentLinkService_CreatePaymentLink_KeepsWelsh(t *testing.T) {
	helper := serviceTestHelper(t)
	ctx := context.Background()

	helper.mockProducts.EXPECT().CreatePaymentLink(gomock.Any(), "42", models.CreatePaymentLinkRequest{
		Name:     "Talu am drwydded barcio",
		Language: "cy",
	}).Return(models.PaymentLink{ExternalID: "link-2"}, nil)

	_, err := helper.services.PaymentLink.CreatePaymentLink(ctx, "42", models.CreatePaymentLinkRequest{
		Name:     "Talu am drwydded barcio",
		Language: "cy",
	})
	assert.NoError(t, err)
}
