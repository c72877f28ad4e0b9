package repository

import "context"

// TransactionManager runs a unit of work atomically. Address book writes run
// inside it; order writes do not, OrderRepository.Put guards gateway ids on its
// own. fn must only use the repositories it is handed.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to the running unit of work.
type RepositoryFactory interface {
	NewAddressRepository() AddressRepository
	NewOrderRepository() OrderRepository
}
