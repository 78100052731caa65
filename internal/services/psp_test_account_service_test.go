package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/payportal/go-selfservice/internal/clients/zendesk"
	"github.com/payportal/go-selfservice/internal/common"
	"github.com/payportal/go-selfservice/internal/models"
	"github.com/payportal/go-selfservice/internal/services"
)

func testAccountRequest(stage string) services.PspTestAccountRequest {
	return services.PspTestAccountRequest{
		Service: models.PortalService{
			ExternalID:                 "svc-1",
			Name:                       "Parking permits",
			CreatedDate:                "2023-01-02T10:00:00.000Z",
			CurrentPspTestAccountStage: stage,
		},
		RequesterEmail: "merchant@example.com",
		RequesterName:  "Merchant",
	}
}

func TestPspTestAccountService_RequestTestAccount(t *testing.T) {
	helper := serviceTestHelper(t)
	ctx := context.Background()

	var gotTicket zendesk.TicketOpts
	helper.mockZendesk.EXPECT().CreateTicket(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, opts zendesk.TicketOpts) error {
			gotTicket = opts
			return nil
		})
	helper.mockAdminUsers.EXPECT().
		UpdatePspTestAccountStage(gomock.Any(), "svc-1", models.PspTestAccountRequestSubmitted).
		Return(nil)

	result, err := helper.services.PspTestAccount.RequestTestAccount(ctx, testAccountRequest(""))
	require.NoError(t, err)

	assert.True(t, result.Submitted)
	assert.Equal(t, models.PspTestAccountRequestSubmitted, result.Stage)

	assert.Equal(t, "merchant@example.com", gotTicket.Email)
	assert.Contains(t, gotTicket.Subject, "Parking permits")
	assert.Contains(t, gotTicket.Message, "Service ID: svc-1")
	assert.NotEmpty(t, gotTicket.IdempotencyKey)
}

func TestPspTestAccountService_RequestTestAccount_AlreadyRequested(t *testing.T) {
	helper := serviceTestHelper(t)
	ctx := context.Background()

	result, err := helper.services.PspTestAccount.RequestTestAccount(ctx, testAccountRequest(models.PspTestAccountRequestSubmitted))
	assert.ErrorIs(t, err, common.ErrTestAccountAlreadyExists)
	assert.False(t, result.Submitted)
	assert.Equal(t, models.PspTestAccountRequestSubmitted, result.Stage)
}

func TestPspTestAccountService_RequestTestAccount_NotStartedStage(t *testing.T) {
	helper := serviceTestHelper(t)
	ctx := context.Background()

	helper.mockZendesk.EXPECT().CreateTicket(gomock.Any(), gomock.Any()).Return(nil)
	helper.mockAdminUsers.EXPECT().
		UpdatePspTestAccountStage(gomock.Any(), "svc-1", models.PspTestAccountRequestSubmitted).
		Return(nil)

	result, err := helper.services.PspTestAccount.RequestTestAccount(ctx, testAccountRequest(models.PspTestAccountNotStarted))
	require.NoError(t, err)
	assert.True(t, result.Submitted)
}

func TestPspTestAccountService_RequestTestAccount_TicketFailure(t *testing.T) {
	helper := serviceTestHelper(t)
	ctx := context.Background()

	helper.mockZendesk.EXPECT().CreateTicket(gomock.Any(), gomock.Any()).
		Return(errors.New("zendesk down"))

	_, err := helper.services.PspTestAccount.RequestTestAccount(ctx, testAccountRequest(""))
	assert.ErrorContains(t, err, "unable to raise support ticket")
}

func TestPspTestAccountService_RequestTestAccount_StageUpdateRetries(t *testing.T) {
	helper := serviceTestHelper(t)
	ctx := context.Background()

	helper.mockZendesk.EXPECT().CreateTicket(gomock.Any(), gomock.Any()).Return(nil)

	// first attempt fails transiently, the retry converges
	gomock.InOrder(
		helper.mockAdminUsers.EXPECT().
			UpdatePspTestAccountStage(gomock.Any(), "svc-1", models.PspTestAccountRequestSubmitted).
			Return(errors.New("adminusers timeout")),
		helper.mockAdminUsers.EXPECT().
			UpdatePspTestAccountStage(gomock.Any(), "svc-1", models.PspTestAccountRequestSubmitted).
			Return(nil),
	)

	result, err := helper.services.PspTestAccount.RequestTestAccount(ctx, testAccountRequest(""))
	require.NoError(t, err)
	assert.True(t, result.Submitted)
}

func TestPspTestAccountService_RequestTestAccount_StageUpdateAborted(t *testing.T) {
	helper := serviceTestHelper(t)
	ctx, cancel := context.WithCancel(context.Background())

	helper.mockZendesk.EXPECT().CreateTicket(gomock.Any(), gomock.Any()).Return(nil)
	helper.mockAdminUsers.EXPECT().
		UpdatePspTestAccountStage(gomock.Any(), "svc-1", models.PspTestAccountRequestSubmitted).
		DoAndReturn(func(context.Context, string, string) error {
			cancel()
			return errors.New("adminusers down")
		})

	_, err := helper.services.PspTestAccount.RequestTestAccount(ctx, testAccountRequest(""))
	assert.ErrorContains(t, err, "ticket raised but stage update failed")
}
