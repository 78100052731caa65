package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// CollaboratorMetrics tracks outbound calls to the platform collaborator
// services (ledger, connector, adminusers, products, zendesk).
type CollaboratorMetrics struct {
	requestDuration *prometheus.HistogramVec
}

func newCollaboratorMetrics(reg prometheus.Registerer) *CollaboratorMetrics {
	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "external_api_request_duration_seconds",
			Help:    "Time spent on requests to collaborator services, by endpoint and outcome.",
			Buckets: []float64{0.005, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"collaborator", "method", "endpoint", "status_code"},
	)

	reg.MustRegister(requestDuration)

	return &CollaboratorMetrics{requestDuration: requestDuration}
}

// RecordRequest observes one outbound call. endpoint is the route pattern,
// not the concrete URL, so label cardinality stays bounded.
func (m *CollaboratorMetrics) RecordRequest(duration time.Duration, collaborator, method, endpoint string, statusCode int) {
	m.requestDuration.WithLabelValues(collaborator, method, endpoint, strconv.Itoa(statusCode)).
		Observe(duration.Seconds())
}
