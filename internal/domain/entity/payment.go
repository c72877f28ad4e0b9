package entity

// GatewayIntent is a payment-collection object created at the gateway before the
// buyer is shown a payment form. It lives only for one checkout attempt.
type GatewayIntent struct {
	GatewayOrderID   string `json:"id"`
	AmountMinorUnits int64  `json:"amount"`
	Currency         string `json:"currency"`
	ReceiptID        string `json:"receipt"`
	Status           string `json:"status,omitempty"`

	// Raw is the gateway's response body, relayed as-is to clients driving the payment UI.
	Raw map[string]any `json:"-"`
}

// Covers reports whether a payment collected for this intent pays exactly total in currency.
func (i *GatewayIntent) Covers(total int64, currency string) bool {
	return i != nil && i.AmountMinorUnits == total && i.Currency == currency
}

// PaymentVerification is the outcome of checking a gateway callback signature.
// A mismatch is a normal result, not an error.
type PaymentVerification struct {
	Valid            bool   `json:"isSignatureValid"`
	GatewayOrderID   string `json:"orderId"`
	GatewayPaymentID string `json:"paymentId"`
}
