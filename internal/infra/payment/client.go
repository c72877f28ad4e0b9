// Package payment contains the payment gateway client and the callback signature verifier.
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"

	"petverse/config"
	"petverse/internal/domain/entity"
	domainerrors "petverse/internal/domain/errors"
	"petverse/internal/domain/service"
	"petverse/internal/errors"
	"petverse/internal/retry"

	"go.uber.org/fx"
)

const (
	ordersPath      = "/orders"
	maxErrorBodyLen = 4 << 10
)

// transientError marks a failed attempt the retry policy may repeat.
type transientError struct {
	err error
}

func (e *transientError) Error() string {
	return e.err.Error()
}

func (e *transientError) Unwrap() error {
	return e.err
}

func transient(err error) error {
	return &transientError{err: err}
}

func isTransient(err error) bool {
	var t *transientError

	return errors.As(err, &t)
}

// gatewayClient implements PaymentGateway over the provider's REST API.
type gatewayClient struct {
	baseURL    string
	keyID      string
	keySecret  string
	httpClient *http.Client
	policy     retry.Policy
	logger     *slog.Logger
}

// ClientParams holds dependencies for the gateway client, injected by Fx.
type ClientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewGatewayClient creates the payment gateway client from configuration.
func NewGatewayClient(params ClientParams) service.PaymentGateway {
	cfg := params.Config.Gateway

	return newGatewayClient(cfg, &http.Client{}, params.Logger)
}

func newGatewayClient(cfg config.GatewayConfig, httpClient *http.Client, logger *slog.Logger) *gatewayClient {
	return &gatewayClient{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		keyID:      cfg.KeyID,
		keySecret:  cfg.KeySecret,
		httpClient: httpClient,
		policy: retry.Policy{
			MaxAttempts:    cfg.MaxAttempts,
			Delay:          cfg.RetryDelay,
			AttemptTimeout: cfg.Timeout,
			Retryable:      isTransient,
		},
		logger: logger,
	}
}

type createOrderRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt,omitempty"`
}

type gatewayErrorBody struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}

// CreateOrder creates a gateway order. 5xx responses and transport failures are
// retried by the policy; 4xx responses fail on the first attempt.
func (c *gatewayClient) CreateOrder(ctx context.Context, amountMinorUnits int64, currency, receiptID string) (*entity.GatewayIntent, error) {
	if c.keyID == "" || c.keySecret == "" || c.baseURL == "" {
		return nil, domainerrors.ErrConfiguration.WithDetails("gateway credentials are not configured")
	}
	if amountMinorUnits <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("amount must be a positive number of minor units")
	}
	if strings.TrimSpace(currency) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("currency is required")
	}

	body, err := json.Marshal(createOrderRequest{
		Amount:   amountMinorUnits,
		Currency: currency,
		Receipt:  receiptID,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var intent *entity.GatewayIntent
	err = c.policy.Do(ctx, func(ctx context.Context, attempt int) error {
		var attemptErr error
		intent, attemptErr = c.createOrderOnce(ctx, body)
		if attemptErr != nil {
			c.logger.Warn("Gateway create order attempt failed",
				slog.Int("attempt", attempt),
				slog.String("receipt", receiptID),
				slog.Any("error", attemptErr),
			)
		}

		return attemptErr
	})
	if err != nil {
		return nil, c.classify(err)
	}

	if intent.AmountMinorUnits == 0 {
		intent.AmountMinorUnits = amountMinorUnits
	}
	if intent.Currency == "" {
		intent.Currency = currency
	}
	if intent.ReceiptID == "" {
		intent.ReceiptID = receiptID
	}

	return intent, nil
}

func (c *gatewayClient) createOrderOnce(ctx context.Context, body []byte) (*entity.GatewayIntent, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+ordersPath, bytes.NewReader(body))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.keyID, c.keySecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, transient(errors.WithStack(err))
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, transient(errors.WithStack(err))
	}

	switch {
	case resp.StatusCode >= http.StatusInternalServerError:
		return nil, transient(errors.Errorf("gateway returned %d", resp.StatusCode))
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, domainerrors.ErrConfiguration.WithDetails("gateway rejected the configured credentials")
	case resp.StatusCode >= http.StatusBadRequest:
		return nil, domainerrors.ErrGatewayRejected.WithDetails(describeRejection(resp.StatusCode, payload))
	}

	var raw map[string]any
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, domainerrors.ErrGatewayRejected.WithDetails("gateway returned an unreadable order")
	}
	var intent entity.GatewayIntent
	if err := json.Unmarshal(payload, &intent); err != nil || intent.GatewayOrderID == "" {
		return nil, domainerrors.ErrGatewayRejected.WithDetails("gateway response carries no order id")
	}
	intent.Raw = raw

	return &intent, nil
}

// classify maps whatever the last attempt returned onto the gateway error taxonomy.
func (c *gatewayClient) classify(err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	details := err.Error()
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		details = "gateway timed out"
	}

	return errors.WithStack(domainerrors.ErrGatewayUnavailable.WithDetails(details))
}

func describeRejection(status int, payload []byte) string {
	var body gatewayErrorBody
	if err := json.Unmarshal(payload, &body); err == nil && body.Error.Description != "" {
		return body.Error.Description
	}
	if len(payload) > maxErrorBodyLen {
		payload = payload[:maxErrorBodyLen]
	}
	if text := strings.TrimSpace(string(payload)); text != "" {
		return text
	}

	return http.StatusText(status)
}
