package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/payportal/go-selfservice/internal/common"
	"github.com/payportal/go-selfservice/internal/common/dateutil"
	"github.com/payportal/go-selfservice/internal/common/log"
	"github.com/payportal/go-selfservice/internal/models"
	"github.com/payportal/go-selfservice/internal/services/transformer"
)

// Exports always page through with the ledger's maximum page size.
const exportDisplaySize = 100

type TransactionService interface {
	GetPaymentView(ctx context.Context, gatewayAccountID, transactionID string) (models.PaymentView, error)
	SearchTransactions(ctx context.Context, gatewayAccountID string, filters models.TransactionFilters) ([]models.PaymentView, int, error)
	ExportTransactionsCSV(ctx context.Context, gatewayAccountID string, filters models.TransactionFilters) (body, fileName string, err error)
	TransactionSummary(ctx context.Context, gatewayAccountID, fromDate, toDate string) (models.TransactionSummary, error)
}

type transaction service

var _ TransactionService = (*transaction)(nil)

// GetPaymentView assembles the detail view for one payment. The ledger
// transaction, its event history and the gateway account are fetched
// concurrently; the dispute record only when the payment is disputed.
func (ts *transaction) GetPaymentView(ctx context.Context, gatewayAccountID, transactionID string) (models.PaymentView, error) {
	var (
		trx     models.Transaction
		events  []models.TransactionEvent
		account models.GatewayAccount
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		trx, err = ts.srv.ledgerClient.Transaction(gctx, transactionID, gatewayAccountID)
		return err
	})
	g.Go(func() (err error) {
		events, err = ts.srv.ledgerClient.Events(gctx, transactionID, gatewayAccountID)
		return err
	})
	g.Go(func() (err error) {
		account, err = ts.srv.connectorClient.GetGatewayAccount(gctx, gatewayAccountID)
		return err
	})
	if err := g.Wait(); err != nil {
		return models.PaymentView{}, err
	}

	var disputeData *models.DisputeData
	if trx.Disputed {
		data, err := ts.srv.ledgerClient.DisputeForTransaction(ctx, transactionID, gatewayAccountID)
		switch {
		case err == nil:
			disputeData = data
		case errors.Is(err, common.ErrDisputeNotFound):
			// the ledger marks payments disputed before the dispute
			// record lands; render without it
			log.Warn(ctx, "[TRANSACTION-SERVICE]",
				log.String("message", "disputed payment has no dispute record"),
				log.String("transactionId", transactionID))
		default:
			return models.PaymentView{}, err
		}
	}

	return transformer.BuildPaymentView(trx, events, disputeData, account.CorporateExemptionsEnabled), nil
}

func (ts *transaction) SearchTransactions(ctx context.Context, gatewayAccountID string, filters models.TransactionFilters) ([]models.PaymentView, int, error) {
	account, err := ts.srv.connectorClient.GetGatewayAccount(ctx, gatewayAccountID)
	if err != nil {
		return nil, 0, err
	}

	result, err := ts.srv.ledgerClient.Transactions(ctx, gatewayAccountID, filters)
	if err != nil {
		return nil, 0, err
	}

	views := make([]models.PaymentView, 0, len(result.Results))
	for _, trx := range result.Results {
		views = append(views, transformer.BuildPaymentView(trx, nil, nil, account.CorporateExemptionsEnabled))
	}

	return views, result.Total, nil
}

// ExportTransactionsCSV fetches the filtered transaction list and renders
// it as a CSV document plus the attachment filename for the response.
func (ts *transaction) ExportTransactionsCSV(ctx context.Context, gatewayAccountID string, filters models.TransactionFilters) (string, string, error) {
	filters.DisplaySize = exportDisplaySize

	result, err := ts.srv.ledgerClient.Transactions(ctx, gatewayAccountID, filters)
	if err != nil {
		return "", "", fmt.Errorf("unable to download list of transactions: %w", err)
	}

	body, err := transformer.FormatTransactionsCSV(result.Results)
	if err != nil {
		return "", "", err
	}

	return body, dateutil.ExportFilename(ts.srv.now()), nil
}

func (ts *transaction) TransactionSummary(ctx context.Context, gatewayAccountID, fromDate, toDate string) (models.TransactionSummary, error) {
	return ts.srv.ledgerClient.TransactionSummary(ctx, gatewayAccountID, fromDate, toDate)
}
