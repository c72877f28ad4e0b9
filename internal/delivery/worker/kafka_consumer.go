package worker

import (
	"context"
	"io"
	"log/slog"
	"time"

	"petverse/config"
	"petverse/internal/delivery"
	deliverycontext "petverse/internal/delivery/context"
	"petverse/internal/delivery/worker/handler"
	"petverse/internal/infra/pubsub"
	"petverse/internal/retry"
	"petverse/internal/usecase"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
	"go.uber.org/fx"
)

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// kafkaConsumer reads order events from the topic the API publishes to. An offset is
// committed once its event is handled or given up on.
type kafkaConsumer struct {
	reader         messageReader
	notificationUC usecase.OrderNotificationUsecase
	policy         retry.Policy
	logger         *slog.Logger
}

// ConsumerParams holds dependencies for the Kafka consumer
type ConsumerParams struct {
	fx.In

	Lc             fx.Lifecycle
	Cfg            *config.Config
	Logger         *slog.Logger
	NotificationUC usecase.OrderNotificationUsecase
}

// NewKafkaConsumer creates a consumer group member on pubsub.kafkaTopic
func NewKafkaConsumer(params ConsumerParams) (delivery.Delivery, error) {
	cfg := params.Cfg.PubSub
	if cfg == nil || len(cfg.KafkaBrokers) == 0 || cfg.KafkaTopic == "" {
		return nil, errors.New("kafka brokers and topic are required for the kafka consumer")
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: cfg.KafkaBrokers,
		Topic:   cfg.KafkaTopic,
		GroupID: cfg.KafkaGroupID,
	})

	consumer := newKafkaConsumer(reader, params.NotificationUC, params.Logger)
	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			consumer.logger.Info("Closing Kafka consumer")

			return errors.WithStack(consumer.reader.Close())
		},
	})

	return consumer, nil
}

func newKafkaConsumer(reader messageReader, notificationUC usecase.OrderNotificationUsecase, logger *slog.Logger) *kafkaConsumer {
	return &kafkaConsumer{
		reader:         reader,
		notificationUC: notificationUC,
		policy: retry.Policy{
			MaxAttempts: 5,
			Delay:       time.Second,
			Retryable:   handler.IsRetryable,
		},
		logger: logger,
	}
}

// Serve consumes until ctx ends or the reader is closed
func (c *kafkaConsumer) Serve(ctx context.Context) error {
	c.logger.Info("Starting Kafka consumer")

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, io.EOF) {
				return nil
			}

			return errors.Wrap(err, "fetch order event")
		}

		c.process(ctx, msg)

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			if ctx.Err() != nil {
				return nil
			}

			return errors.Wrapf(err, "commit offset %d", msg.Offset)
		}
	}
}

func (c *kafkaConsumer) process(ctx context.Context, msg kafka.Message) {
	event, err := pubsub.DecodeOrderEvent(msg.Value)
	if err != nil {
		c.logger.Error("[Kafka] Skipping malformed order event",
			slog.Int("partition", msg.Partition),
			slog.Int64("offset", msg.Offset),
			slog.Any("error", err),
		)

		return
	}

	requestID := handler.ExtractRequestID(ctx, headerMap(msg.Headers), event)
	ctx = deliverycontext.WithRequest(ctx, requestID, c.logger)
	reqLogger := deliverycontext.GetLoggerOrDefault(ctx, c.logger)

	err = c.policy.Do(ctx, func(ctx context.Context, attempt int) error {
		if attempt > 1 {
			reqLogger.Warn("[Kafka] Retrying order event",
				slog.String("order_id", event.OrderID),
				slog.Int("attempt", attempt),
			)
		}

		return c.notificationUC.HandleOrderEvent(ctx, event)
	})
	if err != nil {
		reqLogger.Error("[Kafka] Failed to process order event",
			slog.String("type", event.Type),
			slog.String("order_id", event.OrderID),
			slog.Int64("offset", msg.Offset),
			slog.Any("error", err),
		)
	}
}

func headerMap(headers []kafka.Header) map[string]string {
	m := make(map[string]string, len(headers))
	for _, h := range headers {
		m[h.Key] = string(h.Value)
	}

	return m
}
