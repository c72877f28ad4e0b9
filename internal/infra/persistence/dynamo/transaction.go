package dynamo

import (
	"context"

	"petverse/internal/domain/repository"
)

// transactionManager scopes repositories for a unit of work. Every repository
// write is a single conditional request, so there is no session to commit.
type transactionManager struct {
	factory *repositoryFactory
}

type repositoryFactory struct {
	client API
	tables Tables
}

// NewAddressRepository creates an address repository.
func (f *repositoryFactory) NewAddressRepository() repository.AddressRepository {
	return NewAddressRepository(f.client, f.tables)
}

// NewOrderRepository creates an order repository.
func (f *repositoryFactory) NewOrderRepository() repository.OrderRepository {
	return NewOrderRepository(f.client, f.tables)
}

// NewTransactionManager is the constructor for transactionManager.
func NewTransactionManager(client API, tables Tables) repository.TransactionManager {
	return &transactionManager{factory: &repositoryFactory{client: client, tables: tables}}
}

// Execute runs fn with repositories bound to the client.
func (tm *transactionManager) Execute(_ context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	return fn(tm.factory)
}
