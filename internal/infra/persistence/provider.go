// Package persistence selects the order and address store named by storage.driver.
package persistence

import (
	"log/slog"

	"petverse/config"
	"petverse/internal/domain/constants"
	"petverse/internal/domain/repository"
	"petverse/internal/infra/persistence/dynamo"
	"petverse/internal/infra/persistence/memory"
	"petverse/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// StoreParams holds the dependencies every backend may need, injected by Fx
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// Stores is what the usecases consume, whichever backend is behind it.
type Stores struct {
	fx.Out

	TransactionManager repository.TransactionManager
	AddressRepository  repository.AddressRepository
	OrderRepository    repository.OrderRepository
	IntentRepository   repository.IntentRepository
}

// NewStores builds the repositories of the configured driver.
func NewStores(params StoreParams) (Stores, error) {
	driver := params.Config.Storage.Driver
	params.Logger.Info("Opening order store", slog.String("driver", driver))

	switch driver {
	case constants.StorageDriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Stores{}, err
		}

		return Stores{
			TransactionManager: postgres.NewTransactionManager(db),
			AddressRepository:  postgres.NewAddressRepository(db),
			OrderRepository:    postgres.NewOrderRepository(db),
			IntentRepository:   postgres.NewIntentRepository(db),
		}, nil

	case constants.StorageDriverDynamoDB:
		client, err := dynamo.NewClient(dynamo.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Stores{}, err
		}
		tables := dynamo.TablesFromConfig(params.Config.Storage.DynamoDB)

		return Stores{
			TransactionManager: dynamo.NewTransactionManager(client, tables),
			AddressRepository:  dynamo.NewAddressRepository(client, tables),
			OrderRepository:    dynamo.NewOrderRepository(client, tables),
			IntentRepository:   dynamo.NewIntentRepository(client, tables),
		}, nil

	case constants.StorageDriverMemory:
		params.Logger.Warn("Using in-memory store, data is lost on restart")
		store := memory.NewStore()

		return Stores{
			TransactionManager: memory.NewTransactionManager(store),
			AddressRepository:  store,
			OrderRepository:    store,
			IntentRepository:   store,
		}, nil

	default:
		return Stores{}, errors.Errorf("unknown storage driver: %s", driver)
	}
}
