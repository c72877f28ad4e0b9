package config

import (
	"os"
	"strings"
	"time"

	"petverse/internal/domain/constants"

	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultMaxRequestBodySize = "100KB"
	defaultPort               = 8080

	defaultCurrency              = "INR"
	defaultFreeShippingThreshold = 50000
	defaultFlatShippingFee       = 5000
	defaultGatewayTimeout        = 10 * time.Second
	defaultGatewayMaxAttempts    = 2
	defaultGatewayRetryDelay     = 200 * time.Millisecond
	defaultStoreTimeout          = 5 * time.Second
	defaultAddressWriteAttempts  = 3
	defaultWorkerPort            = 8081
	defaultKafkaGroupID          = "petverse-order-worker"
)

// ErrInvalidConfig is returned by Validate for settings the service cannot start with.
var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int      `json:"port" yaml:"port"`
		MaxRequestBodySize string   `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		AllowOrigins       []string `json:"allowOrigins" yaml:"allowOrigins"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Storage selects and configures the order and address store
	Storage StorageConfig `json:"storage" yaml:"storage"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		// Access signs admin access tokens. Empty leaves /admin unauthenticated.
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	// Gateway configures the external payment gateway
	Gateway GatewayConfig `json:"gateway" yaml:"gateway"`

	// Checkout configures order pricing
	Checkout CheckoutConfig `json:"checkout" yaml:"checkout"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Worker configures the order event worker
	Worker struct {
		Port int `json:"port" yaml:"port"`
	} `json:"worker" yaml:"worker"`

	// Firebase configures buyer push notifications. Nil only logs them.
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`
}

// FirebaseConfig defines the Firebase Cloud Messaging credentials
type FirebaseConfig struct {
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// StorageConfig defines which backend persists orders and address books
type StorageConfig struct {
	// Driver is one of "postgres", "dynamodb" or "memory"
	Driver string `json:"driver" yaml:"driver"`

	// Timeout bounds a single store call made outside a request context
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// AddressWriteAttempts is how often a conflicting address book write is retried
	AddressWriteAttempts int `json:"addressWriteAttempts" yaml:"addressWriteAttempts"`

	DynamoDB DynamoDBConfig `json:"dynamodb" yaml:"dynamodb"`
}

// DynamoDBConfig defines the DynamoDB tables and client settings
type DynamoDBConfig struct {
	Region string `json:"region" yaml:"region"`

	// Endpoint overrides the AWS endpoint, e.g. for DynamoDB Local
	Endpoint string `json:"endpoint" yaml:"endpoint"`

	OrderTable   string `json:"orderTable" yaml:"orderTable"`
	AddressTable string `json:"addressTable" yaml:"addressTable"`

	// UserIndex is the order table index keyed on userId and createdAt
	UserIndex string `json:"userIndex" yaml:"userIndex"`
}

// GatewayConfig defines the payment gateway credentials and retry behaviour
type GatewayConfig struct {
	BaseURL   string `json:"baseUrl" yaml:"baseUrl"`
	KeyID     string `json:"keyId" yaml:"keyId"`
	KeySecret string `json:"keySecret" yaml:"keySecret"`
	Currency  string `json:"currency" yaml:"currency"`

	// Timeout bounds every single attempt
	Timeout     time.Duration `json:"timeout" yaml:"timeout"`
	MaxAttempts int           `json:"maxAttempts" yaml:"maxAttempts"`
	RetryDelay  time.Duration `json:"retryDelay" yaml:"retryDelay"`
}

// CheckoutConfig defines shipping pricing in minor units
type CheckoutConfig struct {
	FreeShippingThreshold int64 `json:"freeShippingThreshold" yaml:"freeShippingThreshold"`
	FlatShippingFee       int64 `json:"flatShippingFee" yaml:"flatShippingFee"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP, "google" for Google Pub/Sub, "kafka" for Kafka.
	// Empty disables publishing.
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// Kafka brokers and topic (for kafka provider)
	KafkaBrokers []string `json:"kafkaBrokers" yaml:"kafkaBrokers"`
	KafkaTopic   string   `json:"kafkaTopic" yaml:"kafkaTopic"`

	// KafkaGroupID is the consumer group of the order worker
	KafkaGroupID string `json:"kafkaGroupId" yaml:"kafkaGroupId"`

	// PushAudience is the audience Google signs push tokens for. Empty uses the request URL.
	PushAudience string `json:"pushAudience" yaml:"pushAudience"`
}

// New loads config.yaml, applies environment overrides and defaults, and validates the result.
func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config](configName, searchDirs()...)
	if err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()

	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = replicasFromEnv(os.LookupEnv)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyDefaults fills every unset setting with its default.
func (c *Config) ApplyDefaults() {
	if strings.TrimSpace(c.HTTP.MaxRequestBodySize) == "" {
		c.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if c.HTTP.Port == 0 {
		c.HTTP.Port = defaultPort
	}
	if c.Storage.Driver == "" {
		c.Storage.Driver = constants.StorageDriverPostgres
	}
	if c.Storage.Timeout <= 0 {
		c.Storage.Timeout = defaultStoreTimeout
	}
	if c.Storage.AddressWriteAttempts <= 0 {
		c.Storage.AddressWriteAttempts = defaultAddressWriteAttempts
	}
	if c.Storage.DynamoDB.UserIndex == "" {
		c.Storage.DynamoDB.UserIndex = "userId-createdAt-index"
	}
	if c.Gateway.Currency == "" {
		c.Gateway.Currency = defaultCurrency
	}
	if c.Gateway.Timeout <= 0 {
		c.Gateway.Timeout = defaultGatewayTimeout
	}
	if c.Gateway.MaxAttempts <= 0 {
		c.Gateway.MaxAttempts = defaultGatewayMaxAttempts
	}
	if c.Gateway.RetryDelay <= 0 {
		c.Gateway.RetryDelay = defaultGatewayRetryDelay
	}
	if c.Checkout.FreeShippingThreshold == 0 {
		c.Checkout.FreeShippingThreshold = defaultFreeShippingThreshold
	}
	if c.Checkout.FlatShippingFee == 0 {
		c.Checkout.FlatShippingFee = defaultFlatShippingFee
	}
	if c.Worker.Port == 0 {
		c.Worker.Port = defaultWorkerPort
	}
	if c.PubSub != nil && c.PubSub.KafkaGroupID == "" {
		c.PubSub.KafkaGroupID = defaultKafkaGroupID
	}
}

// Validate rejects configurations the service must not start with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Gateway.KeySecret) == "" {
		return errors.Wrap(ErrInvalidConfig, "gateway.keySecret is required")
	}

	switch c.Storage.Driver {
	case constants.StorageDriverPostgres:
		if c.Postgres == nil {
			return errors.Wrap(ErrInvalidConfig, "postgres section is required for the postgres driver")
		}
	case constants.StorageDriverDynamoDB:
		if c.Storage.DynamoDB.OrderTable == "" || c.Storage.DynamoDB.AddressTable == "" {
			return errors.Wrap(ErrInvalidConfig, "storage.dynamodb.orderTable and storage.dynamodb.addressTable are required")
		}
	case constants.StorageDriverMemory:
	default:
		return errors.Wrapf(ErrInvalidConfig, "unknown storage driver %q", c.Storage.Driver)
	}

	if c.Checkout.FreeShippingThreshold < 0 || c.Checkout.FlatShippingFee < 0 {
		return errors.Wrap(ErrInvalidConfig, "checkout fees must not be negative")
	}

	return nil
}
