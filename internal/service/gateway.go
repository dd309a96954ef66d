package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"

	"github.com/nubetechmdq-wq/crmcasino/pkg/config"

	"go.uber.org/zap"
)

// PaymentVerification is the payment gateway's answer for an external
// payment reference.
type PaymentVerification struct {
	Verified bool           `json:"verified"`
	Status   string         `json:"status"`
	Detail   map[string]any `json:"detail,omitempty"`
}

// PaymentVerifier confirms that an externally referenced payment exists and
// matches the expected amount.
type PaymentVerifier interface {
	VerifyPayment(ctx context.Context, externalRef string, expectedAmount float64) (*PaymentVerification, error)
}

// MercadoPagoClient looks payments up against the Mercado Pago REST API.
// The access token saved in payment settings takes precedence over the one
// from the environment.
type MercadoPagoClient struct {
	baseURL    string
	httpClient *http.Client
	settings   *SettingsService
	fallback   string
	logger     *zap.Logger
}

func NewMercadoPagoClient(cfg *config.GatewayConfig, settings *SettingsService, logger *zap.Logger) *MercadoPagoClient {
	return &MercadoPagoClient{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{},
		settings:   settings,
		fallback:   cfg.AccessToken,
		logger:     logger,
	}
}

// VerifyPayment calls GET /v1/payments/{id}. The payment is verified when
// the gateway reports it approved with a matching amount. Lookup failures
// come back as errors and the caller treats them as unverified.
func (c *MercadoPagoClient) VerifyPayment(ctx context.Context, externalRef string, expectedAmount float64) (*PaymentVerification, error) {
	url := fmt.Sprintf("%s/v1/payments/%s", c.baseURL, externalRef)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment lookup request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.accessToken())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("payment lookup failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return &PaymentVerification{Verified: false, Status: "not_found"}, nil
	}

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("payment lookup failed with status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var payment struct {
		Status            string  `json:"status"`
		TransactionAmount float64 `json:"transaction_amount"`
		DateApproved      string  `json:"date_approved"`
		PaymentMethodID   string  `json:"payment_method_id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payment); err != nil {
		return nil, fmt.Errorf("failed to decode payment response: %w", err)
	}

	verified := payment.Status == "approved" && math.Abs(payment.TransactionAmount-expectedAmount) < 0.01

	c.logger.Info("Payment lookup completed",
		zap.String("external_ref", externalRef),
		zap.String("status", payment.Status),
		zap.Bool("verified", verified),
	)

	return &PaymentVerification{
		Verified: verified,
		Status:   payment.Status,
		Detail: map[string]any{
			"date_approved":      payment.DateApproved,
			"payment_method_id":  payment.PaymentMethodID,
			"transaction_amount": payment.TransactionAmount,
		},
	}, nil
}

func (c *MercadoPagoClient) accessToken() string {
	if c.settings != nil {
		if token := c.settings.Get().Payment.MPAccessToken; token != "" {
			return token
		}
	}
	return c.fallback
}
