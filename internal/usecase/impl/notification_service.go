package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "petverse/internal/delivery/context"
	"petverse/internal/domain/entity"
	"petverse/internal/domain/service"
	"petverse/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ErrInvalidOrderEvent is returned for events that can never be processed
var ErrInvalidOrderEvent = errors.New("invalid order event")

// NotificationServiceParams holds dependencies for the notification service, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	Notifier service.OrderNotifier
	Logger   *slog.Logger
}

type notificationService struct {
	notifier service.OrderNotifier
	logger   *slog.Logger
}

// NewNotificationService creates the order notification usecase
func NewNotificationService(params NotificationServiceParams) usecase.OrderNotificationUsecase {
	return &notificationService{
		notifier: params.Notifier,
		logger:   params.Logger,
	}
}

func (srv *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// HandleOrderEvent notifies the buyer about a committed order change
func (srv *notificationService) HandleOrderEvent(ctx context.Context, event *service.OrderEvent) error {
	if event.OrderID == "" || event.UserID == "" {
		return errors.Wrapf(ErrInvalidOrderEvent, "event %q without order or user id", event.Type)
	}

	notification, ok := composeNotification(event)
	if !ok {
		srv.log(ctx).Debug("No notification for order event",
			slog.String("type", event.Type),
			slog.String("order_id", event.OrderID),
			slog.String("status", event.Status),
		)

		return nil
	}

	if err := srv.notifier.Notify(ctx, notification); err != nil {
		return errors.Wrapf(err, "notify %s about %s", event.UserID, event.OrderID)
	}

	srv.log(ctx).Info("Buyer notified",
		slog.String("type", event.Type),
		slog.String("order_id", event.OrderID),
	)

	return nil
}

// composeNotification returns the message for an event, or false when the buyer has nothing to learn.
// A gateway order is announced once its payment is confirmed, not when it is placed.
func composeNotification(event *service.OrderEvent) (*service.Notification, bool) {
	var title, body string

	switch event.Type {
	case service.OrderEventPlaced:
		if entity.PaymentMethod(event.PaymentMethod) != entity.PaymentMethodCOD {
			return nil, false
		}
		title = "Order placed"
		body = fmt.Sprintf("We received order %s. Please keep %s ready on delivery.",
			event.OrderID, formatAmount(event.Total, event.Currency))

	case service.OrderEventConfirmed:
		title = "Payment received"
		body = fmt.Sprintf("We received %s for order %s. It is now confirmed.",
			formatAmount(event.Total, event.Currency), event.OrderID)

	case service.OrderEventStatusChanged:
		switch entity.OrderStatus(event.Status) {
		case entity.OrderStatusConfirmed:
			title = "Order confirmed"
			body = fmt.Sprintf("Order %s is confirmed.", event.OrderID)
		case entity.OrderStatusShipped:
			title = "Order shipped"
			body = fmt.Sprintf("Order %s is on its way.", event.OrderID)
		case entity.OrderStatusDelivered:
			title = "Order delivered"
			body = fmt.Sprintf("Order %s was delivered. Enjoy!", event.OrderID)
		case entity.OrderStatusCancelled:
			title = "Order cancelled"
			body = fmt.Sprintf("Order %s was cancelled.", event.OrderID)
		default:
			return nil, false
		}

	default:
		return nil, false
	}

	return &service.Notification{
		UserID:  event.UserID,
		OrderID: event.OrderID,
		Title:   title,
		Body:    body,
		Data: map[string]string{
			"type":           event.Type,
			"status":         event.Status,
			"payment_status": event.PaymentStatus,
		},
	}, true
}

// formatAmount renders minor units as "INR 1234.50".
func formatAmount(minorUnits int64, currency string) string {
	sign := ""
	if minorUnits < 0 {
		sign = "-"
		minorUnits = -minorUnits
	}

	return fmt.Sprintf("%s %s%d.%02d", currency, sign, minorUnits/100, minorUnits%100)
}
