package pubsub

import (
	"encoding/json"
	"time"

	"petverse/internal/domain/service"
	"petverse/internal/errors"

	"github.com/google/uuid"
)

// Attribute keys set on every published order event. Pub/Sub carries them as
// message attributes and Kafka as record headers.
const (
	AttrType      = "type"
	AttrOrderID   = "order_id"
	AttrUserID    = "user_id"
	AttrRequestID = "request_id"
)

// ErrMalformedEvent marks a payload that can never be handled, however often it is redelivered.
var ErrMalformedEvent = errors.New("malformed order event")

// PushEnvelope is the body Pub/Sub POSTs to a push subscription.
// Data is base64 on the wire, which encoding/json does for []byte.
type PushEnvelope struct {
	Message      PushedMessage `json:"message"`
	Subscription string        `json:"subscription"`
}

type PushedMessage struct {
	Data        []byte            `json:"data"`
	Attributes  map[string]string `json:"attributes,omitempty"`
	MessageID   string            `json:"messageId"`
	PublishTime string            `json:"publishTime"`
}

// NewPushEnvelope wraps event the way the push subscription named subscription would.
func NewPushEnvelope(event *service.OrderEvent, subscription string, now time.Time) (*PushEnvelope, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrapf(err, "encode %s for order %s", event.Type, event.OrderID)
	}

	return &PushEnvelope{
		Message: PushedMessage{
			Data:        data,
			Attributes:  EventAttributes(event),
			MessageID:   uuid.NewString(),
			PublishTime: now.UTC().Format(time.RFC3339Nano),
		},
		Subscription: subscription,
	}, nil
}

// DecodeOrderEvent parses a published event. Payloads without a type or an
// order id are rejected with ErrMalformedEvent.
func DecodeOrderEvent(data []byte) (*service.OrderEvent, error) {
	var event service.OrderEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(ErrMalformedEvent, err.Error())
	}
	if event.Type == "" || event.OrderID == "" {
		return nil, errors.Wrap(ErrMalformedEvent, "type and order_id are required")
	}

	return &event, nil
}

// EventAttributes are the attributes used for subscription filters and tracing.
func EventAttributes(event *service.OrderEvent) map[string]string {
	attributes := map[string]string{
		AttrType:    event.Type,
		AttrOrderID: event.OrderID,
		AttrUserID:  event.UserID,
	}
	if event.RequestID != "" {
		attributes[AttrRequestID] = event.RequestID
	}

	return attributes
}
