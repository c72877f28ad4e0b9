package notification

import (
	"context"
	"log/slog"

	deliverycontext "petverse/internal/delivery/context"
	"petverse/internal/domain/service"
)

// logNotifier only logs notifications. It stands in when Firebase is not configured.
type logNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a notifier that writes every notification to the log
func NewLogNotifier(logger *slog.Logger) service.OrderNotifier {
	return &logNotifier{logger: logger}
}

func (n *logNotifier) Notify(ctx context.Context, notification *service.Notification) error {
	deliverycontext.GetLoggerOrDefault(ctx, n.logger).InfoContext(ctx, "[Notify] Notification not sent, Firebase is not configured",
		slog.String("user_id", notification.UserID),
		slog.String("order_id", notification.OrderID),
		slog.String("title", notification.Title),
		slog.String("body", notification.Body),
	)

	return nil
}
