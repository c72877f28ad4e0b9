package pubsub

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "petverse/internal/delivery/context"
	"petverse/internal/domain/service"
	"petverse/internal/errors"
)

const (
	localSubscription = "projects/local/subscriptions/order-events-push"
	localPushTimeout  = 10 * time.Second
	// enough of a failing worker response to tell why it refused the event
	maxErrorBodySize = 512
)

// localHTTPPublisher posts every event to the order worker's /push endpoint in
// the envelope a Pub/Sub push subscription would use, so the worker runs
// unchanged on a laptop.
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
	now        func() time.Time
}

func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: localPushTimeout},
		logger:     logger,
		now:        time.Now,
	}
}

// PublishOrderEvent returns an error unless the worker answers 2xx.
func (p *localHTTPPublisher) PublishOrderEvent(ctx context.Context, event *service.OrderEvent) error {
	envelope, err := NewPushEnvelope(event, localSubscription, p.now())
	if err != nil {
		return err
	}
	body, err := json.Marshal(envelope)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, event.RequestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "push %s for order %s", event.Type, event.OrderID)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))

		return errors.Errorf("push endpoint answered %d for order %s: %s", resp.StatusCode, event.OrderID, bytes.TrimSpace(snippet))
	}

	p.logger.InfoContext(ctx, "[LocalPubSub] Event pushed",
		slog.String("endpoint", p.endpoint),
		slog.String("message_id", envelope.Message.MessageID),
		slog.String("type", event.Type),
		slog.String("order_id", event.OrderID),
	)

	return nil
}

func (p *localHTTPPublisher) Close() error {
	p.httpClient.CloseIdleConnections()

	return nil
}
