package currency

import "github.com/shopspring/decimal"

// Amounts arrive from the ledger in minor units (pence) and are only ever
// converted to major-unit strings at presentation time.

// PenceToPounds converts minor units to a two-decimal major-unit string
// with no symbol and no grouping: 12345 -> "123.45".
func PenceToPounds(pence int64) string {
	return decimal.NewFromInt(pence).Shift(-2).StringFixed(2)
}

// PoundsFriendly renders minor units with the currency symbol:
// 1000 -> "£10.00".
func PoundsFriendly(pence int64) string {
	return "£" + PenceToPounds(pence)
}
