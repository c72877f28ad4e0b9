package service

import (
	"context"

	"petverse/internal/domain/entity"
)

// PaymentGateway creates payment intents with the external payment provider.
type PaymentGateway interface {
	// CreateOrder creates a gateway order for amountMinorUnits in currency.
	// receiptID is passed through as the provider's idempotency hint.
	CreateOrder(ctx context.Context, amountMinorUnits int64, currency, receiptID string) (*entity.GatewayIntent, error)
}

// SignatureVerifier checks gateway callback signatures against the shared secret.
type SignatureVerifier interface {
	// Verify never fails; a mismatch is reported through PaymentVerification.Valid.
	Verify(gatewayOrderID, gatewayPaymentID, signature string) entity.PaymentVerification
}
