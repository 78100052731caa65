package products_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/payportal/go-selfservice/internal/clients/products"
	"github.com/payportal/go-selfservice/internal/common"
	"github.com/payportal/go-selfservice/internal/common/log"
	"github.com/payportal/go-selfservice/internal/config"
	"github.com/payportal/go-selfservice/internal/models"
)

func TestMain(m *testing.M) {
	log.InitForTest()
	os.Exit(m.Run())
}

func newClient(baseURL string) products.Client {
	return products.New(config.HTTPConfiguration{
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
	}, nil)
}

func TestClient_PaymentLinks(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/api/gateway-account/42/products", r.URL.Path)
		assert.Equal(t, "ADHOC", r.URL.Query().Get("type"))

		_, _ = w.Write([]byte(`[
			{"external_id": "link-1", "name": "Pay for a parking permit", "price": 1000},
			{"external_id": "link-2", "name": "Donate", "reference_enabled": true}
		]`))
	}))
	defer server.Close()

	got, err := newClient(server.URL).PaymentLinks(context.Background(), "42")
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, "link-1", got[0].ExternalID)
	assert.True(t, got[1].ReferenceEnabled)
}

func TestClient_PaymentLinks_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := newClient(server.URL).PaymentLinks(context.Background(), "42")
	assert.ErrorIs(t, err, common.ErrPaymentLinkNotFound)
}

func TestClient_CreatePaymentLink_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := newClient(server.URL).CreatePaymentLink(context.Background(), "42", models.CreatePaymentLinkRequest{
		Name:  "Pay for a parking permit",
		Price: 1000,
	})
	assert.ErrorIs(t, err, common.ErrPaymentLinkNotFound)
}

func TestClient_PaymentLinks_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	_, err := newClient(server.URL).PaymentLinks(context.Background(), "42")
	assert.ErrorIs(t, err, common.ErrUpstreamResponse)
}

func TestClient_CreatePaymentLink(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/api/gateway-account/42/products", r.URL.Path)

		var got models.CreatePaymentLinkRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, "Pay for a parking permit", got.Name)
		assert.Equal(t, int64(1000), got.Price)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"external_id": "link-1", "name": "Pay for a parking permit", "price": 1000}`))
	}))
	defer server.Close()

	got, err := newClient(server.URL).CreatePaymentLink(context.Background(), "42", models.CreatePaymentLinkRequest{
		Name:     "Pay for a parking permit",
		Price:    1000,
		Language: "en",
	})
	require.NoError(t, err)

	assert.Equal(t, "link-1", got.ExternalID)
}
