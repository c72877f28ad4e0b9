package main

import (
	"context"
	"log/slog"
	"os"

	"petverse/config"
	"petverse/internal/delivery"
	"petverse/internal/delivery/worker"
	"petverse/internal/delivery/worker/handler"
	"petverse/internal/domain/constants"
	logs "petverse/internal/infra/log"
	"petverse/internal/infra/notification"
	"petverse/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			notification.NewOrderNotifier,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewNotificationService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				newDelivery,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

type deliveryParams struct {
	fx.In

	Cfg      *config.Config
	Server   worker.ServerParams
	Consumer worker.ConsumerParams
}

// newDelivery consumes Kafka when events are published there, else serves Pub/Sub push requests.
func newDelivery(params deliveryParams) (delivery.Delivery, error) {
	if params.Cfg.PubSub != nil && params.Cfg.PubSub.Provider == constants.PubSubProviderKafka {
		return worker.NewKafkaConsumer(params.Consumer)
	}

	return worker.NewServer(params.Server)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start worker", slog.Any("error", err))
				_ = params.Shutdown(fx.ExitCode(1))
				os.Exit(1)
			}
		}()
	}
}
