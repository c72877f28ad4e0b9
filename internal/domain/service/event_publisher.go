package service

import (
	"context"
	"time"
)

// Order event types.
const (
	OrderEventPlaced        = "order.placed"
	OrderEventConfirmed     = "order.confirmed"
	OrderEventStatusChanged = "order.status_changed"
)

// OrderEvent is emitted after an order change has been committed.
type OrderEvent struct {
	RequestID      string    `json:"request_id,omitempty"` // For distributed tracing
	Type           string    `json:"type"`
	OrderID        string    `json:"order_id"`
	UserID         string    `json:"user_id"`
	Status         string    `json:"status"`
	PaymentStatus  string    `json:"payment_status"`
	PaymentMethod  string    `json:"payment_method"`
	Total          int64     `json:"total"`
	Currency       string    `json:"currency"`
	GatewayOrderID string    `json:"gateway_order_id,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderEvent publishes an order lifecycle event
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
