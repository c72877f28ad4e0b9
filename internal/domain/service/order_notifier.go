package service

import (
	"context"

	"github.com/pkg/errors"
)

// ErrNotifierUnavailable marks a delivery failure worth retrying later.
var ErrNotifierUnavailable = errors.New("notifier unavailable")

// Notification is a message shown to a buyer about one of their orders.
type Notification struct {
	UserID  string
	OrderID string
	Title   string
	Body    string
	Data    map[string]string
}

// OrderNotifier delivers buyer notifications.
type OrderNotifier interface {
	// Notify sends the notification to every device of the buyer
	Notify(ctx context.Context, notification *Notification) error
}
