package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "petverse/internal/delivery/context"
	"petverse/internal/domain/entity"
	"petverse/internal/domain/service"
)

const publishTimeout = 5 * time.Second

// detachedContext survives the caller's cancellation but still ends after timeout.
func detachedContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	base := context.WithoutCancel(ctx)
	if timeout <= 0 {
		return context.WithCancel(base)
	}

	return context.WithTimeout(base, timeout)
}

// publishOrderEvent emits an event for a committed change. Failures are logged only.
// It runs on the caller's goroutine so the events of one order leave in order.
func publishOrderEvent(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, eventType string, order *entity.Order, now time.Time) {
	if publisher == nil {
		return
	}

	event := &service.OrderEvent{
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
		Type:           eventType,
		OrderID:        order.OrderID,
		UserID:         order.UserID,
		Status:         string(order.Status),
		PaymentStatus:  string(order.PaymentStatus),
		PaymentMethod:  string(order.PaymentMethod),
		Total:          order.Total,
		Currency:       order.Currency,
		GatewayOrderID: order.GatewayOrderID,
		OccurredAt:     now,
	}

	pubCtx, cancel := detachedContext(ctx, publishTimeout)
	defer cancel()

	if err := publisher.PublishOrderEvent(pubCtx, event); err != nil {
		logger.Warn("Failed to publish order event",
			slog.String("type", eventType),
			slog.String("order_id", order.OrderID),
			slog.Any("error", err),
		)
	}
}
