package service

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nubetechmdq-wq/crmcasino/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newGatewayFixture(t *testing.T, handler http.HandlerFunc) *MercadoPagoClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.GatewayConfig{BaseURL: server.URL, AccessToken: "env-token"}
	settings := NewSettingsService(&fakeSettingsStore{}, &fakeAIClient{}, zap.NewNop())
	return NewMercadoPagoClient(cfg, settings, zap.NewNop())
}

func TestVerifyPaymentApprovedMatchingAmount(t *testing.T) {
	client := newGatewayFixture(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/payments/123456789", r.URL.Path)
		assert.Equal(t, "Bearer env-token", r.Header.Get("Authorization"))
		fmt.Fprint(w, `{"status":"approved","transaction_amount":5000,"date_approved":"2026-08-01T10:00:00Z","payment_method_id":"cvu"}`)
	})

	check, err := client.VerifyPayment(context.Background(), "123456789", 5000)

	require.NoError(t, err)
	assert.True(t, check.Verified)
	assert.Equal(t, "approved", check.Status)
}

func TestVerifyPaymentAmountMismatch(t *testing.T) {
	client := newGatewayFixture(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status":"approved","transaction_amount":4000}`)
	})

	check, err := client.VerifyPayment(context.Background(), "123456789", 5000)

	require.NoError(t, err)
	assert.False(t, check.Verified)
}

func TestVerifyPaymentPendingStatus(t *testing.T) {
	client := newGatewayFixture(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status":"pending","transaction_amount":5000}`)
	})

	check, err := client.VerifyPayment(context.Background(), "123456789", 5000)

	require.NoError(t, err)
	assert.False(t, check.Verified)
	assert.Equal(t, "pending", check.Status)
}

func TestVerifyPaymentNotFound(t *testing.T) {
	client := newGatewayFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	check, err := client.VerifyPayment(context.Background(), "999", 5000)

	require.NoError(t, err)
	assert.False(t, check.Verified)
	assert.Equal(t, "not_found", check.Status)
}

func TestVerifyPaymentServerError(t *testing.T) {
	client := newGatewayFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.VerifyPayment(context.Background(), "123", 5000)

	assert.Error(t, err)
}

func TestSavedAccessTokenWinsOverFallback(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		fmt.Fprint(w, `{"status":"approved","transaction_amount":100}`)
	}))
	t.Cleanup(server.Close)

	settings := NewSettingsService(&fakeSettingsStore{}, &fakeAIClient{}, zap.NewNop())
	require.NoError(t, settings.Load(context.Background()))
	current := settings.Get()
	current.Payment.MPAccessToken = "saved-token"
	require.NoError(t, settings.Update(context.Background(), &current))

	cfg := &config.GatewayConfig{BaseURL: server.URL, AccessToken: "env-token"}
	client := NewMercadoPagoClient(cfg, settings, zap.NewNop())

	_, err := client.VerifyPayment(context.Background(), "1", 100)

	require.NoError(t, err)
	assert.Equal(t, "Bearer saved-token", gotAuth)
}
