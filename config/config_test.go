package config

import (
	"testing"
	"time"

	"petverse/internal/domain/constants"

	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	cfg := &Config{}
	cfg.Gateway.KeySecret = "shh"
	cfg.Storage.Driver = constants.StorageDriverMemory
	cfg.ApplyDefaults()

	return cfg
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "INR", cfg.Gateway.Currency)
	assert.Equal(t, int64(50000), cfg.Checkout.FreeShippingThreshold)
	assert.Equal(t, int64(5000), cfg.Checkout.FlatShippingFee)
	assert.Equal(t, 10*time.Second, cfg.Gateway.Timeout)
	assert.Equal(t, 2, cfg.Gateway.MaxAttempts)
	assert.Equal(t, 200*time.Millisecond, cfg.Gateway.RetryDelay)
	assert.Equal(t, 3, cfg.Storage.AddressWriteAttempts)
	assert.Equal(t, constants.StorageDriverPostgres, cfg.Storage.Driver)
	assert.Equal(t, 8081, cfg.Worker.Port)
	assert.Nil(t, cfg.PubSub)

	cfg.PubSub = &PubSubConfig{Provider: constants.PubSubProviderKafka}
	cfg.ApplyDefaults()
	assert.Equal(t, "petverse-order-worker", cfg.PubSub.KafkaGroupID)
}

func TestValidate_MissingGatewaySecretIsFatal(t *testing.T) {
	cfg := validConfig()
	cfg.Gateway.KeySecret = "  "

	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfig))
	assert.Contains(t, err.Error(), "gateway.keySecret")
}

func TestValidate_StorageDrivers(t *testing.T) {
	cfg := validConfig()
	require.NoError(t, cfg.Validate())

	cfg.Storage.Driver = constants.StorageDriverDynamoDB
	require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

	cfg.Storage.DynamoDB.OrderTable = "orders"
	cfg.Storage.DynamoDB.AddressTable = "addresses"
	require.NoError(t, cfg.Validate())

	cfg.Storage.Driver = constants.StorageDriverPostgres
	require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

	cfg.Postgres = &postgres.DBConn{}
	require.NoError(t, cfg.Validate())

	cfg.Storage.Driver = "cassandra"
	require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}

func TestValidate_NegativeFees(t *testing.T) {
	cfg := validConfig()
	cfg.Checkout.FlatShippingFee = -1

	require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}
