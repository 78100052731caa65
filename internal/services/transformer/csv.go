package transformer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/payportal/go-selfservice/internal/common/currency"
	"github.com/payportal/go-selfservice/internal/common/dateutil"
	"github.com/payportal/go-selfservice/internal/models"
)

// ExportHeader is the fixed first row of every transaction export.
var ExportHeader = []string{
	"Reference",
	"Amount",
	"State",
	"Finished",
	"Error Code",
	"Error Message",
	"Gateway Transaction ID",
	"GOV.UK Pay ID",
	"Date Created",
}

// ExportRow maps one raw transaction to its CSV fields, in header order.
func ExportRow(transaction models.Transaction) ([]string, error) {
	created, err := dateutil.FormatDisplay(transaction.CreatedDate)
	if err != nil {
		return nil, fmt.Errorf("transaction %s: %w", transaction.ChargeID, err)
	}

	return []string{
		transaction.Reference,
		currency.PenceToPounds(transaction.Amount),
		transaction.State.Status,
		strconv.FormatBool(transaction.State.Finished),
		transaction.State.Code,
		transaction.State.Message,
		transaction.GatewayTransactionID,
		transaction.ChargeID,
		created,
	}, nil
}

// FormatTransactionsCSV renders the transaction list as one CSV document:
// header row plus one row per transaction, rows joined with "\n" and no
// trailing newline. Bounded result sets only, assembled in memory.
func FormatTransactionsCSV(transactions []models.Transaction) (string, error) {
	var buf bytes.Buffer

	w := csv.NewWriter(&buf)
	if err := w.Write(ExportHeader); err != nil {
		return "", fmt.Errorf("failed to write header: %w", err)
	}

	for _, transaction := range transactions {
		row, err := ExportRow(transaction)
		if err != nil {
			return "", err
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("failed to write row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	out := buf.Bytes()
	out = bytes.TrimSuffix(out, []byte("\n"))
	return string(out), nil
}
