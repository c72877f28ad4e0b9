package usecase

import (
	"context"

	"petverse/internal/domain/service"
)

// OrderNotificationUsecase turns committed order events into buyer notifications
type OrderNotificationUsecase interface {
	// HandleOrderEvent notifies the buyer about the event. Events without a buyer-facing
	// change are acknowledged without a notification. A wrapped service.ErrNotifierUnavailable
	// means the event should be redelivered.
	HandleOrderEvent(ctx context.Context, event *service.OrderEvent) error
}
