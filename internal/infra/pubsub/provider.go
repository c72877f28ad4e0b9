// Package pubsub publishes committed order events to the bus the order worker
// consumes: Google Pub/Sub, Kafka, or a local HTTP push for development.
package pubsub

import (
	"context"
	"log/slog"

	"petverse/config"
	"petverse/internal/domain/constants"
	"petverse/internal/domain/service"
	"petverse/internal/errors"

	"go.uber.org/fx"
)

// noopPublisher drops events when pubsub.provider is empty.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishOrderEvent(ctx context.Context, event *service.OrderEvent) error {
	p.logger.DebugContext(ctx, "[NoopPubSub] Event dropped, no bus configured",
		slog.String("type", event.Type),
		slog.String("order_id", event.OrderID),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher builds the publisher named by pubsub.provider and closes it on shutdown.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	if cfg == nil || cfg.Provider == "" {
		params.Logger.Info("Order events are not published, pubsub.provider is empty")

		return &noopPublisher{logger: params.Logger}, nil
	}

	publisher, err := buildPublisher(params.Ctx, cfg, params.Logger)
	if err != nil {
		return nil, err
	}
	params.Logger.Info("Publishing order events", slog.String("provider", cfg.Provider))

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			params.Logger.Info("Closing order event publisher", slog.String("provider", cfg.Provider))

			return publisher.Close()
		},
	})

	return publisher, nil
}

func buildPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, missingSetting(cfg.Provider, "localEndpoint")
		}

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, missingSetting(cfg.Provider, "projectId")
		}
		if cfg.TopicID == "" {
			return nil, missingSetting(cfg.Provider, "topicId")
		}

		return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)

	case constants.PubSubProviderKafka:
		if len(cfg.KafkaBrokers) == 0 {
			return nil, missingSetting(cfg.Provider, "kafkaBrokers")
		}
		if cfg.KafkaTopic == "" {
			return nil, missingSetting(cfg.Provider, "kafkaTopic")
		}

		return NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic, logger), nil

	default:
		return nil, errors.Errorf("unknown pubsub provider %q", cfg.Provider)
	}
}

func missingSetting(provider, key string) error {
	return errors.Errorf("pubsub.%s is required for the %s provider", key, provider)
}
