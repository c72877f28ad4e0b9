package usecase

import (
	"context"

	"petverse/internal/domain/entity"
)

// PlaceOrderInput is a checkout attempt. The delivery address comes from AddressID,
// else from Address, else from the user's default address.
type PlaceOrderInput struct {
	UserID        string
	Items         []entity.OrderItem
	AddressID     string
	Address       *entity.DeliveryAddress
	PaymentMethod entity.PaymentMethod
	Notes         string

	// ExpectedTotals are the totals the client displayed. When set they must match
	// the server-side quote.
	ExpectedTotals *entity.Totals
}

// PlaceOrderResult is a placed order plus, for gateway payments, the intent the
// client needs to show the payment form.
type PlaceOrderResult struct {
	Order  *entity.Order
	Intent *entity.GatewayIntent
}

// RecordGatewayOrderInput is an order relayed by the client after the gateway
// reported a captured payment.
type RecordGatewayOrderInput struct {
	PlaceOrderInput

	GatewayOrderID   string
	GatewayPaymentID string
	Signature        string
}

// CheckoutUsecase defines checkout settlement.
type CheckoutUsecase interface {
	// PlaceOrder prices the cart and records the order. Gateway payments create the
	// gateway intent first and record a pending order; cash on delivery is confirmed at once.
	PlaceOrder(ctx context.Context, input *PlaceOrderInput) (*PlaceOrderResult, error)

	// RecordVerifiedGatewayOrder verifies the relayed signature, then records a settled
	// order. Without a local order, the cart total must equal the amount the gateway
	// order was created with by CreateGatewayOrder. Repeating the call for the same
	// gateway order returns the recorded order.
	RecordVerifiedGatewayOrder(ctx context.Context, input *RecordGatewayOrderInput) (*entity.Order, error)

	// FinalizeGatewayPayment settles the pending order bound to the gateway order.
	// It is idempotent for the same payment.
	FinalizeGatewayPayment(ctx context.Context, gatewayOrderID, gatewayPaymentID, signature string) (*entity.Order, error)

	// CreateGatewayOrder creates a bare gateway intent for the amount in minor units and records it
	CreateGatewayOrder(ctx context.Context, amountMinorUnits int64, currency string) (*entity.GatewayIntent, error)

	// VerifyPayment checks a callback signature and settles the matching pending order if one exists
	VerifyPayment(ctx context.Context, gatewayOrderID, gatewayPaymentID, signature string) (*entity.PaymentVerification, error)
}
