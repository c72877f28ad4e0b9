package notification

import (
	"context"
	"log/slog"

	"petverse/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// topicPrefix names the FCM topic every device of a buyer subscribes to.
const topicPrefix = "user_"

type messageSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type firebaseNotifier struct {
	client messageSender
	logger *slog.Logger
}

// NewFirebaseNotifier creates a notifier that sends to the buyer's FCM topic
func NewFirebaseNotifier(ctx context.Context, credentialsPath string, logger *slog.Logger) (service.OrderNotifier, error) {
	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseNotifier{client: client, logger: logger}, nil
}

// Notify sends one message to the buyer's topic
func (n *firebaseNotifier) Notify(ctx context.Context, notification *service.Notification) error {
	message := buildMessage(notification)

	messageID, err := n.client.Send(ctx, message)
	if err != nil {
		if isTemporary(err) {
			return errors.Wrapf(service.ErrNotifierUnavailable, "send to %s: %v", message.Topic, err)
		}

		return errors.Wrapf(err, "send to %s", message.Topic)
	}

	n.logger.InfoContext(ctx, "[FCM] Notification sent",
		slog.String("order_id", notification.OrderID),
		slog.String("message_id", messageID),
	)

	return nil
}

func buildMessage(notification *service.Notification) *messaging.Message {
	data := make(map[string]string, len(notification.Data)+1)
	for k, v := range notification.Data {
		data[k] = v
	}
	data["order_id"] = notification.OrderID

	return &messaging.Message{
		Topic: TopicForUser(notification.UserID),
		Notification: &messaging.Notification{
			Title: notification.Title,
			Body:  notification.Body,
		},
		Data: data,
	}
}

// TopicForUser returns the FCM topic of a buyer. Characters FCM rejects in topic names become '-'.
func TopicForUser(userID string) string {
	topic := []byte(topicPrefix + userID)
	for i, c := range topic {
		if !isTopicChar(c) {
			topic[i] = '-'
		}
	}

	return string(topic)
}

func isTopicChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '-', c == '_', c == '.', c == '~', c == '%':
		return true
	default:
		return false
	}
}

func isTemporary(err error) bool {
	return messaging.IsUnavailable(err) || messaging.IsInternal(err) || messaging.IsQuotaExceeded(err)
}
