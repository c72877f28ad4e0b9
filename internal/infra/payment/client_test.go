package payment

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"petverse/config"
	domainerrors "petverse/internal/domain/errors"
	"petverse/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testGatewayConfig(baseURL string) config.GatewayConfig {
	return config.GatewayConfig{
		BaseURL:     baseURL,
		KeyID:       "rzp_test_key",
		KeySecret:   "rzp_test_secret",
		Currency:    "INR",
		Timeout:     2 * time.Second,
		MaxAttempts: 2,
		RetryDelay:  time.Millisecond,
	}
}

func writeOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"id":       "order_GW123",
		"entity":   "order",
		"amount":   req.Amount,
		"currency": req.Currency,
		"receipt":  req.Receipt,
		"status":   "created",
	})
}

func TestGatewayClient_RetriesOnceAfterServerError(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)

			return
		}
		writeOrder(w, r)
	}))
	defer server.Close()

	client := newGatewayClient(testGatewayConfig(server.URL), server.Client(), testLogger())
	intent, err := client.CreateOrder(context.Background(), 6000, "INR", "rcpt_1")

	require.NoError(t, err)
	assert.Equal(t, int32(2), attempts.Load())
	assert.Equal(t, "order_GW123", intent.GatewayOrderID)
	assert.Equal(t, int64(6000), intent.AmountMinorUnits)
	assert.Equal(t, "INR", intent.Currency)
	assert.Equal(t, "rcpt_1", intent.ReceiptID)
	assert.Equal(t, "order", intent.Raw["entity"])
}

func TestGatewayClient_ClientErrorIsNotRetried(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":"BAD_REQUEST_ERROR","description":"The amount must be atleast INR 1.00"}}`))
	}))
	defer server.Close()

	client := newGatewayClient(testGatewayConfig(server.URL), server.Client(), testLogger())
	_, err := client.CreateOrder(context.Background(), 50, "INR", "rcpt_1")

	require.Error(t, err)
	assert.Equal(t, int32(1), attempts.Load())
	assert.True(t, errors.Is(err, domainerrors.ErrGatewayRejected))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "The amount must be atleast INR 1.00", appErr.Details())
}

func TestGatewayClient_BadCredentialsAreConfigurationErrors(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := newGatewayClient(testGatewayConfig(server.URL), server.Client(), testLogger())
	_, err := client.CreateOrder(context.Background(), 6000, "INR", "rcpt_1")

	assert.True(t, errors.Is(err, domainerrors.ErrConfiguration))
	assert.Equal(t, int32(1), attempts.Load())
}

func TestGatewayClient_UnavailableAfterRetriesExhausted(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := newGatewayClient(testGatewayConfig(server.URL), server.Client(), testLogger())
	_, err := client.CreateOrder(context.Background(), 6000, "INR", "rcpt_1")

	assert.True(t, errors.Is(err, domainerrors.ErrGatewayUnavailable))
	assert.Equal(t, int32(2), attempts.Load())
}

func TestGatewayClient_AttemptTimeoutCountsAsFailure(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))
	defer server.Close()

	cfg := testGatewayConfig(server.URL)
	cfg.Timeout = 30 * time.Millisecond
	client := newGatewayClient(cfg, server.Client(), testLogger())
	_, err := client.CreateOrder(context.Background(), 6000, "INR", "rcpt_1")

	assert.True(t, errors.Is(err, domainerrors.ErrGatewayUnavailable))
	assert.Equal(t, int32(2), attempts.Load())

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "gateway timed out", appErr.Details())
}

func TestGatewayClient_SendsCredentialsAndBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/orders", r.URL.Path)
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "rzp_test_key", user)
		assert.Equal(t, "rzp_test_secret", pass)
		writeOrder(w, r)
	}))
	defer server.Close()

	client := newGatewayClient(testGatewayConfig(server.URL+"/"), server.Client(), testLogger())
	_, err := client.CreateOrder(context.Background(), 100, "INR", "rcpt_9")
	require.NoError(t, err)
}

func TestGatewayClient_LocalValidation(t *testing.T) {
	cfg := testGatewayConfig("http://127.0.0.1:0")
	cfg.KeyID = ""
	client := newGatewayClient(cfg, http.DefaultClient, testLogger())
	_, err := client.CreateOrder(context.Background(), 100, "INR", "rcpt")
	assert.True(t, errors.Is(err, domainerrors.ErrConfiguration))

	client = newGatewayClient(testGatewayConfig("http://127.0.0.1:0"), http.DefaultClient, testLogger())
	_, err = client.CreateOrder(context.Background(), 0, "INR", "rcpt")
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}
