package persistence

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"petverse/config"
	"petverse/internal/domain/constants"
	"petverse/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestNewStores_Memory(t *testing.T) {
	cfg := &config.Config{}
	cfg.Storage.Driver = constants.StorageDriverMemory

	stores, err := NewStores(StoreParams{
		Lc:     fxtest.NewLifecycle(t),
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	order := &entity.Order{OrderID: "ORD-1", UserID: "user-1"}
	require.NoError(t, stores.OrderRepository.Put(context.Background(), order))

	book, err := stores.AddressRepository.LoadBook(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, 0, book.Len())
	assert.NotNil(t, stores.TransactionManager)
	assert.NotNil(t, stores.IntentRepository)
}

func TestNewStores_UnknownDriver(t *testing.T) {
	cfg := &config.Config{}
	cfg.Storage.Driver = "cassandra"

	_, err := NewStores(StoreParams{
		Lc:     fxtest.NewLifecycle(t),
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.Error(t, err)
}
