package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	"petverse/config"
	"petverse/internal/domain/entity"
	domainerrors "petverse/internal/domain/errors"
	"petverse/internal/domain/service"
)

// hmacVerifier checks callback signatures with the gateway's shared secret.
type hmacVerifier struct {
	secret []byte
}

// NewSignatureVerifier reads the gateway secret once. A missing secret is a startup error.
func NewSignatureVerifier(cfg *config.Config) (service.SignatureVerifier, error) {
	if cfg.Gateway.KeySecret == "" {
		return nil, domainerrors.ErrConfiguration.WithDetails("gateway.keySecret is required")
	}

	return &hmacVerifier{secret: []byte(cfg.Gateway.KeySecret)}, nil
}

// Verify compares the supplied signature to HMAC-SHA256(secret, orderID|paymentID) in constant time.
func (v *hmacVerifier) Verify(gatewayOrderID, gatewayPaymentID, signature string) entity.PaymentVerification {
	result := entity.PaymentVerification{
		GatewayOrderID:   gatewayOrderID,
		GatewayPaymentID: gatewayPaymentID,
	}
	if gatewayOrderID == "" || gatewayPaymentID == "" || signature == "" {
		return result
	}

	expected := computeMAC(v.secret, gatewayOrderID, gatewayPaymentID)
	supplied, err := hex.DecodeString(signature)
	if err != nil {
		return result
	}
	result.Valid = hmac.Equal(expected, supplied)

	return result
}

// ComputeSignature returns the hex signature the gateway attaches to a completed payment.
func ComputeSignature(secret, gatewayOrderID, gatewayPaymentID string) string {
	return hex.EncodeToString(computeMAC([]byte(secret), gatewayOrderID, gatewayPaymentID))
}

func computeMAC(secret []byte, gatewayOrderID, gatewayPaymentID string) []byte {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(gatewayOrderID + "|" + gatewayPaymentID))

	return mac.Sum(nil)
}
