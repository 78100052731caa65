package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/payportal/go-selfservice/internal/clients/ledger"
	"github.com/payportal/go-selfservice/internal/common"
	"github.com/payportal/go-selfservice/internal/models"
)

func TestTransactionService_GetPaymentView(t *testing.T) {
	helper := serviceTestHelper(t)
	ctx := context.Background()

	trx := models.Transaction{
		ChargeID:      "ch_123",
		Amount:        12345,
		Reference:     "ref-1",
		State:         models.TransactionState{Status: "success", Finished: true},
		RefundSummary: &models.RefundSummary{Status: models.RefundStatusAvailable},
		CreatedDate:   "2018-05-01T13:27:00.057Z",
	}
	events := []models.TransactionEvent{
		{EventType: "PAYMENT_CREATED", Status: "created", Timestamp: "2018-05-01T13:27:00.057Z"},
	}

	helper.mockLedger.EXPECT().Transaction(gomock.Any(), "ch_123", "42").Return(trx, nil)
	helper.mockLedger.EXPECT().Events(gomock.Any(), "ch_123", "42").Return(events, nil)
	helper.mockConnector.EXPECT().GetGatewayAccount(gomock.Any(), "42").
		Return(models.GatewayAccount{GatewayAccountID: "42", CorporateExemptionsEnabled: true}, nil)

	view, err := helper.services.Transaction.GetPaymentView(ctx, "42", "ch_123")
	require.NoError(t, err)

	assert.Equal(t, "ch_123", view.ChargeID)
	assert.Equal(t, "£123.45", view.AmountFriendly)
	assert.True(t, view.Refundable)
	assert.Len(t, view.Events, 1)
	if assert.NotNil(t, view.CorporateExemptionRequested) {
		assert.Equal(t, models.CorporateExemptionNotRequested, *view.CorporateExemptionRequested)
	}
}

func TestTransactionService_GetPaymentView_Disputed(t *testing.T) {
	helper := serviceTestHelper(t)
	ctx := context.Background()

	trx := models.Transaction{
		ChargeID:      "ch_123",
		Amount:        12345,
		Disputed:      true,
		RefundSummary: &models.RefundSummary{Status: models.RefundStatusUnavailable},
		CreatedDate:   "2018-05-01T13:27:00.057Z",
	}

	helper.mockLedger.EXPECT().Transaction(gomock.Any(), "ch_123", "42").Return(trx, nil)
	helper.mockLedger.EXPECT().Events(gomock.Any(), "ch_123", "42").Return(nil, nil)
	helper.mockConnector.EXPECT().GetGatewayAccount(gomock.Any(), "42").Return(models.GatewayAccount{}, nil)
	helper.mockLedger.EXPECT().DisputeForTransaction(gomock.Any(), "ch_123", "42").
		Return(&models.DisputeData{Amount: 1000, Reason: "fraudulent"}, nil)

	view, err := helper.services.Transaction.GetPaymentView(ctx, "42", "ch_123")
	require.NoError(t, err)

	assert.True(t, view.RefundUnavailableDueToDispute)
	if assert.NotNil(t, view.Dispute) {
		assert.Equal(t, "£10.00", view.Dispute.AmountFriendly)
	}
}

func TestTransactionService_GetPaymentView_DisputeRecordMissing(t *testing.T) {
	helper := serviceTestHelper(t)
	ctx := context.Background()

	trx := models.Transaction{
		ChargeID:    "ch_123",
		Disputed:    true,
		CreatedDate: "2018-05-01T13:27:00.057Z",
	}

	helper.mockLedger.EXPECT().Transaction(gomock.Any(), "ch_123", "42").Return(trx, nil)
	helper.mockLedger.EXPECT().Events(gomock.Any(), "ch_123", "42").Return(nil, nil)
	helper.mockConnector.EXPECT().GetGatewayAccount(gomock.Any(), "42").Return(models.GatewayAccount{}, nil)
	helper.mockLedger.EXPECT().DisputeForTransaction(gomock.Any(), "ch_123", "42").
		Return(nil, common.ErrDisputeNotFound)

	view, err := helper.services.Transaction.GetPaymentView(ctx, "42", "ch_123")
	require.NoError(t, err)

	assert.Nil(t, view.Dispute)
}

func TestTransactionService_GetPaymentView_TransactionNotFound(t *testing.T) {
	helper := serviceTestHelper(t)
	ctx := context.Background()

	helper.mockLedger.EXPECT().Transaction(gomock.Any(), "ch_123", "42").
		Return(models.Transaction{}, common.ErrTransactionNotFound)
	helper.mockLedger.EXPECT().Events(gomock.Any(), "ch_123", "42").Return(nil, nil).AnyTimes()
	helper.mockConnector.EXPECT().GetGatewayAccount(gomock.Any(), "42").Return(models.GatewayAccount{}, nil).AnyTimes()

	_, err := helper.services.Transaction.GetPaymentView(ctx, "42", "ch_123")
	assert.ErrorIs(t, err, common.ErrTransactionNotFound)
}

func TestTransactionService_SearchTransactions(t *testing.T) {
	helper := serviceTestHelper(t)
	ctx := context.Background()

	helper.mockConnector.EXPECT().GetGatewayAccount(gomock.Any(), "42").Return(models.GatewayAccount{}, nil)
	helper.mockLedger.EXPECT().Transactions(gomock.Any(), "42", models.TransactionFilters{Reference: "ref"}).
		Return(ledger.TransactionSearchResult{
			Total: 2,
			Results: []models.Transaction{
				{ChargeID: "ch_1", Amount: 100, CreatedDate: "2018-05-01T13:27:00.057Z"},
				{ChargeID: "ch_2", Amount: 200, CreatedDate: "2018-05-02T13:27:00.057Z"},
			},
		}, nil)

	views, total, err := helper.services.Transaction.SearchTransactions(ctx, "42", models.TransactionFilters{Reference: "ref"})
	require.NoError(t, err)

	assert.Equal(t, 2, total)
	require.Len(t, views, 2)
	assert.Equal(t, "£1.00", views[0].AmountFriendly)
}

func TestTransactionService_ExportTransactionsCSV(t *testing.T) {
	helper := serviceTestHelper(t)
	ctx := context.Background()

	helper.services.WithClock(func() time.Time {
		return time.Date(2020, time.June, 19, 9, 30, 5, 0, time.UTC)
	})

	helper.mockLedger.EXPECT().
		Transactions(gomock.Any(), "42", models.TransactionFilters{Reference: "red", DisplaySize: 100}).
		Return(ledger.TransactionSearchResult{
			Total: 1,
			Results: []models.Transaction{
				{
					ChargeID:             "charge1",
					GatewayTransactionID: "transaction-1",
					Amount:               12345,
					Reference:            "red",
					State:                models.TransactionState{Status: "succeeded"},
					CreatedDate:          "2016-05-12T16:37:29.245Z",
				},
			},
		}, nil)

	body, fileName, err := helper.services.Transaction.ExportTransactionsCSV(ctx, "42", models.TransactionFilters{Reference: "red"})
	require.NoError(t, err)

	assert.Equal(t, "GOVUK Pay 2020-06-19 10:30:05.csv", fileName)
	assert.Equal(t,
		"Reference,Amount,State,Finished,Error Code,Error Message,Gateway Transaction ID,GOV.UK Pay ID,Date Created\n"+
			"red,123.45,succeeded,false,,,transaction-1,charge1,12 May 2016 — 17:37:29",
		body)
}

func TestTransactionService_ExportTransactionsCSV_LedgerError(t *testing.T) {
	helper := serviceTestHelper(t)
	ctx := context.Background()

	helper.mockLedger.EXPECT().Transactions(gomock.Any(), "42", gomock.Any()).
		Return(ledger.TransactionSearchResult{}, errors.New("ledger unreachable"))

	_, _, err := helper.services.Transaction.ExportTransactionsCSV(ctx, "42", models.TransactionFilters{})
	assert.ErrorContains(t, err, "unable to download list of transactions")
}

func TestTransactionService_TransactionSummary(t *testing.T) {
	helper := serviceTestHelper(t)
	ctx := context.Background()

	summary := models.TransactionSummary{NetIncome: 4750}
	helper.mockLedger.EXPECT().
		TransactionSummary(gomock.Any(), "42", "2023-01-01T00:00:00Z", "2023-02-01T00:00:00Z").
		Return(summary, nil)

	got, err := helper.services.Transaction.TransactionSummary(ctx, "42", "2023-01-01T00:00:00Z", "2023-02-01T00:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, summary, got)
}
