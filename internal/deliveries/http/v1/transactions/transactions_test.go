package transactions

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/payportal/go-selfservice/internal/common"
	"github.com/payportal/go-selfservice/internal/models"
)

func TestHandler_searchTransactions(t *testing.T) {
	helper := transactionsTestHelper(t)

	helper.mockTrxService.EXPECT().
		SearchTransactions(gomock.Any(), "42", models.TransactionFilters{Reference: "ref-1", State: "success"}).
		Return([]models.PaymentView{
			{ChargeID: "ch_1", AmountFriendly: "£1.00"},
		}, 1, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/transactions?account_id=42&reference=ref-1&state=success", nil)
	rec := httptest.NewRecorder()
	helper.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var res struct {
		Kind      string               `json:"kind"`
		Contents  []models.PaymentView `json:"contents"`
		TotalRows int                  `json:"total_rows"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "collection", res.Kind)
	assert.Equal(t, 1, res.TotalRows)
	require.Len(t, res.Contents, 1)
	assert.Equal(t, "ch_1", res.Contents[0].ChargeID)
}

func TestHandler_searchTransactions_MissingAccountID(t *testing.T) {
	helper := transactionsTestHelper(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/transactions", nil)
	rec := httptest.NewRecorder()
	helper.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_searchTransactions_InvalidDateFilter(t *testing.T) {
	helper := transactionsTestHelper(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/transactions?account_id=42&from_date=yesterday", nil)
	rec := httptest.NewRecorder()
	helper.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "from_date")
}

func TestHandler_getTransaction(t *testing.T) {
	helper := transactionsTestHelper(t)

	threeDSecure := models.ThreeDSecureRequired
	helper.mockTrxService.EXPECT().
		GetPaymentView(gomock.Any(), "42", "ch_123").
		Return(models.PaymentView{
			ChargeID:       "ch_123",
			AmountFriendly: "£123.45",
			ThreeDSecure:   &threeDSecure,
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/transactions/ch_123?account_id=42", nil)
	rec := httptest.NewRecorder()
	helper.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var view models.PaymentView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, "ch_123", view.ChargeID)
	require.NotNil(t, view.ThreeDSecure)
	assert.Equal(t, models.ThreeDSecureRequired, *view.ThreeDSecure)
}

func TestHandler_getTransaction_AbsentOptionalFieldsOmitted(t *testing.T) {
	helper := transactionsTestHelper(t)

	helper.mockTrxService.EXPECT().
		GetPaymentView(gomock.Any(), "42", "ch_123").
		Return(models.PaymentView{ChargeID: "ch_123"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/transactions/ch_123?account_id=42", nil)
	rec := httptest.NewRecorder()
	helper.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	assert.NotContains(t, raw, "three_d_secure")
	assert.NotContains(t, raw, "corporate_exemption_requested")
	assert.NotContains(t, raw, "dispute")
}

func TestHandler_getTransaction_NotFound(t *testing.T) {
	helper := transactionsTestHelper(t)

	helper.mockTrxService.EXPECT().
		GetPaymentView(gomock.Any(), "42", "ch_404").
		Return(models.PaymentView{}, common.ErrTransactionNotFound)

	req := httptest.NewRequest(http.MethodGet, "/v1/transactions/ch_404?account_id=42", nil)
	rec := httptest.NewRecorder()
	helper.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_transactionSummary(t *testing.T) {
	helper := transactionsTestHelper(t)

	summary := models.TransactionSummary{NetIncome: 4750}
	summary.Payments.Count = 10
	helper.mockTrxService.EXPECT().
		TransactionSummary(gomock.Any(), "42", "2023-01-01T00:00:00Z", "2023-02-01T00:00:00Z").
		Return(summary, nil)

	req := httptest.NewRequest(http.MethodGet,
		"/v1/transactions/summary?account_id=42&from_date=2023-01-01T00%3A00%3A00Z&to_date=2023-02-01T00%3A00%3A00Z", nil)
	rec := httptest.NewRecorder()
	helper.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.TransactionSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, int64(4750), got.NetIncome)
	assert.Equal(t, int64(10), got.Payments.Count)
}
