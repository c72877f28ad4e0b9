package repository

import (
	"context"

	"petverse/internal/domain/entity"
	"petverse/internal/errors"
)

// ErrIntentNotFound is returned when no intent was recorded for a gateway order id.
var ErrIntentNotFound = errors.New("gateway intent not found")

// IntentRepository records the bare gateway intents handed to clients that drive
// the payment form themselves. A relayed payment is only accepted for the amount
// its intent was created with.
type IntentRepository interface {
	// SaveIntent records an intent keyed by its gateway order id.
	SaveIntent(ctx context.Context, intent *entity.GatewayIntent) error

	// FindIntent retrieves the intent created for gatewayOrderID.
	FindIntent(ctx context.Context, gatewayOrderID string) (*entity.GatewayIntent, error)
}
