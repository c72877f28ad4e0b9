// Package memory keeps orders and address books in process memory. It backs local
// development and the invariant tests; data does not survive a restart.
package memory

import (
	"context"
	"sync"

	"petverse/internal/domain/entity"
	"petverse/internal/domain/repository"
	"petverse/internal/errors"
)

type bookRecord struct {
	version   int64
	addresses map[string]*entity.Address
}

// Store implements the order, intent and address repositories behind one mutex.
type Store struct {
	mu            sync.RWMutex
	orders        map[string]*entity.Order
	gatewayOrders map[string]string
	intents       map[string]entity.GatewayIntent
	books         map[string]*bookRecord
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		orders:        make(map[string]*entity.Order),
		gatewayOrders: make(map[string]string),
		intents:       make(map[string]entity.GatewayIntent),
		books:         make(map[string]*bookRecord),
	}
}

// NewTransactionManager returns a TransactionManager over the store. Every write
// is already atomic, so Execute only scopes the repositories.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return &transactionManager{store: store}
}

type transactionManager struct {
	store *Store
}

func (tm *transactionManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(tm.store)
}

// NewAddressRepository returns the store as an AddressRepository.
func (s *Store) NewAddressRepository() repository.AddressRepository {
	return s
}

// NewOrderRepository returns the store as an OrderRepository.
func (s *Store) NewOrderRepository() repository.OrderRepository {
	return s
}

// LoadBook returns a snapshot of the user's address book.
func (s *Store) LoadBook(ctx context.Context, userID string) (*entity.AddressBook, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.books[userID]
	if !ok {
		return entity.NewAddressBook(userID, 0, nil), nil
	}

	addresses := make([]*entity.Address, 0, len(record.addresses))
	for _, addr := range record.addresses {
		addresses = append(addresses, addr)
	}

	return entity.NewAddressBook(userID, record.version, addresses), nil
}

// SaveBook applies the book's changes if nobody saved the book since it was loaded.
func (s *Store) SaveBook(ctx context.Context, book *entity.AddressBook) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.books[book.UserID]
	if !ok {
		record = &bookRecord{addresses: make(map[string]*entity.Address)}
	}
	if record.version != book.Version {
		return errors.Wrapf(repository.ErrVersionConflict, "user %s: stored %d, loaded %d", book.UserID, record.version, book.Version)
	}

	upserts, deletes := book.Changes()
	for _, id := range deletes {
		delete(record.addresses, id)
	}
	for _, addr := range upserts {
		record.addresses[addr.AddressID] = addr.Clone()
	}
	record.version++
	s.books[book.UserID] = record
	book.Version = record.version

	return nil
}

// Put inserts or replaces an order.
func (s *Store) Put(ctx context.Context, order *entity.Order) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if order.GatewayOrderID != "" {
		if owner, ok := s.gatewayOrders[order.GatewayOrderID]; ok && owner != order.OrderID {
			return errors.Wrapf(repository.ErrDuplicateGatewayOrder, "%s belongs to %s", order.GatewayOrderID, owner)
		}
	}
	if previous, ok := s.orders[order.OrderID]; ok && previous.GatewayOrderID != order.GatewayOrderID {
		delete(s.gatewayOrders, previous.GatewayOrderID)
	}

	s.orders[order.OrderID] = order.Clone()
	if order.GatewayOrderID != "" {
		s.gatewayOrders[order.GatewayOrderID] = order.OrderID
	}

	return nil
}

// FindByID retrieves an order by its id.
func (s *Store) FindByID(ctx context.Context, orderID string) (*entity.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	order, ok := s.orders[orderID]
	if !ok {
		return nil, errors.WithStack(repository.ErrOrderNotFound)
	}

	return order.Clone(), nil
}

// FindByGatewayOrderID retrieves the order bound to a gateway order id.
func (s *Store) FindByGatewayOrderID(ctx context.Context, gatewayOrderID string) (*entity.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	orderID, ok := s.gatewayOrders[gatewayOrderID]
	if !ok {
		return nil, errors.WithStack(repository.ErrOrderNotFound)
	}

	return s.orders[orderID].Clone(), nil
}

// ListByUser returns the user's orders, newest first.
func (s *Store) ListByUser(ctx context.Context, userID string) ([]*entity.Order, error) {
	return s.list(ctx, func(o *entity.Order) bool {
		return o.UserID == userID
	})
}

// ListAll returns every order, newest first.
func (s *Store) ListAll(ctx context.Context) ([]*entity.Order, error) {
	return s.list(ctx, func(*entity.Order) bool {
		return true
	})
}

// Update replaces the order while its stored state still matches expect.
func (s *Store) Update(ctx context.Context, order *entity.Order, expect entity.OrderState) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.orders[order.OrderID]
	if !ok {
		return errors.WithStack(repository.ErrOrderNotFound)
	}
	if current.State() != expect {
		return errors.Wrapf(repository.ErrOrderConflict, "order %s is %s/%s", order.OrderID, current.Status, current.PaymentStatus)
	}
	s.orders[order.OrderID] = order.Clone()

	return nil
}

func (s *Store) list(ctx context.Context, keep func(*entity.Order) bool) ([]*entity.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*entity.Order, 0)
	for _, order := range s.orders {
		if keep(order) {
			out = append(out, order.Clone())
		}
	}
	entity.SortOrdersNewestFirst(out)

	return out, nil
}

// SaveIntent records a gateway intent. Saving the same gateway order id again replaces it.
func (s *Store) SaveIntent(ctx context.Context, intent *entity.GatewayIntent) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *intent
	stored.Raw = nil
	s.intents[intent.GatewayOrderID] = stored

	return nil
}

// FindIntent retrieves the intent recorded for a gateway order id.
func (s *Store) FindIntent(ctx context.Context, gatewayOrderID string) (*entity.GatewayIntent, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	intent, ok := s.intents[gatewayOrderID]
	if !ok {
		return nil, errors.WithStack(repository.ErrIntentNotFound)
	}

	return &intent, nil
}
