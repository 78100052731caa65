package httpclient

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/payportal/go-selfservice/internal/common/log"
	"github.com/payportal/go-selfservice/internal/common/metrics"
	"github.com/payportal/go-selfservice/internal/config"
)

// NewRestyClient builds a resty client with the retry/timeout policy for a
// downstream service. Retries stay in this layer; callers above it only see
// the final outcome.
func NewRestyClient(configuration config.HTTPConfiguration) *resty.Client {
	retryWaitTime := time.Duration(configuration.RetryWaitTime) * time.Millisecond

	client := resty.New()
	client = client.AddRetryCondition(func(r *resty.Response, err error) bool {
		if r == nil {
			return false
		}
		switch r.StatusCode() {
		case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			return true
		}
		return false
	})

	return client.
		SetRetryCount(configuration.RetryCount).
		SetRetryWaitTime(retryWaitTime).
		SetTimeout(configuration.Timeout)
}

type RequestWrapper struct {
	client      *resty.Client
	metrics     metrics.Metrics
	serviceName string
	logPrefix   string
}

func NewRequestWrapper(client *resty.Client, metrics metrics.Metrics, serviceName, logPrefix string) *RequestWrapper {
	return &RequestWrapper{
		client:      client,
		metrics:     metrics,
		serviceName: serviceName,
		logPrefix:   logPrefix,
	}
}

// DoRequest sends one request and records duration metrics per endpoint.
// endpointLabel is the route pattern (ids collapsed) so the metric
// cardinality stays bounded.
func (w *RequestWrapper) DoRequest(ctx context.Context, method, url, endpointLabel string, reqFunc func(*resty.Request) *resty.Request) (*resty.Response, error) {
	startTime := time.Now()

	logFields := []log.Field{
		log.String("url", url),
		log.String("method", method),
	}

	log.Debug(ctx, w.logPrefix, append(logFields, log.String("message", "send request"))...)

	req := w.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetHeader("X-Correlation-Id", log.GetCorrelationID(ctx))
	if reqFunc != nil {
		req = reqFunc(req)
	}

	var httpRes *resty.Response
	var err error

	switch method {
	case http.MethodGet:
		httpRes, err = req.Get(url)
	case http.MethodPost:
		httpRes, err = req.Post(url)
	case http.MethodPut:
		httpRes, err = req.Put(url)
	case http.MethodPatch:
		httpRes, err = req.Patch(url)
	case http.MethodDelete:
		httpRes, err = req.Delete(url)
	default:
		return nil, fmt.Errorf("unsupported HTTP method: %s", method)
	}

	if err != nil {
		log.Warn(ctx, w.logPrefix, append(logFields, log.Err(err))...)
		return nil, fmt.Errorf("failed send request: %w", err)
	}

	if w.metrics != nil {
		w.metrics.Collaborator().RecordRequest(
			time.Since(startTime),
			w.serviceName,
			method,
			endpointLabel,
			httpRes.StatusCode(),
		)
	}

	logFields = append(logFields, log.String("httpStatusCode", httpRes.Status()))

	if httpRes.StatusCode() < 200 || httpRes.StatusCode() >= 300 {
		log.Warn(ctx, w.logPrefix, logFields...)
	} else {
		log.Debug(ctx, w.logPrefix, logFields...)
	}

	return httpRes, nil
}
