package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCollaboratorMetrics_RecordRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := newCollaboratorMetrics(reg)

	m.RecordRequest(150*time.Millisecond, "ledger", "GET", "/v1/transaction/:transactionId", 200)
	m.RecordRequest(2*time.Second, "ledger", "GET", "/v1/transaction/:transactionId", 502)
	m.RecordRequest(30*time.Millisecond, "connector", "PATCH", "/v1/api/accounts/:accountId", 200)

	// one series per distinct label set
	assert.Equal(t, 3, testutil.CollectAndCount(reg, "external_api_request_duration_seconds"))
}
