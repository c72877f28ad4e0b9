// Package constants contains string identifiers shared between configuration and infrastructure.
package constants

// Storage drivers selectable through storage.driver.
const (
	StorageDriverPostgres = "postgres"
	StorageDriverDynamoDB = "dynamodb"
	StorageDriverMemory   = "memory"
)

// Pub/Sub providers selectable through pubsub.provider.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderKafka  = "kafka"
)

// RoleAdmin is the JWT role required by the order administration routes.
const RoleAdmin = "admin"

// EnvLocal is the env.env value of a developer machine. Push tokens are not verified there.
const EnvLocal = "local"
