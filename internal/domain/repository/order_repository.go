package repository

import (
	"context"

	"petverse/internal/domain/entity"
	"petverse/internal/errors"
)

// Domain-specific errors for order persistence.
var (
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")
	// ErrOrderConflict is returned when a conditional update finds the order in a different state.
	ErrOrderConflict = errors.New("order state changed concurrently")
	// ErrDuplicateGatewayOrder is returned when a gateway order id is already bound to another order.
	ErrDuplicateGatewayOrder = errors.New("gateway order id already recorded")
)

// OrderRepository defines the durable order store.
type OrderRepository interface {
	// Put inserts or replaces an order keyed by OrderID. Writing an identical order twice is safe.
	Put(ctx context.Context, order *entity.Order) error

	// FindByID retrieves an order by its id.
	FindByID(ctx context.Context, orderID string) (*entity.Order, error)

	// FindByGatewayOrderID retrieves the single order bound to a gateway order id.
	FindByGatewayOrderID(ctx context.Context, gatewayOrderID string) (*entity.Order, error)

	// ListByUser returns a user's orders, newest first.
	ListByUser(ctx context.Context, userID string) ([]*entity.Order, error)

	// ListAll returns every order, newest first.
	ListAll(ctx context.Context) ([]*entity.Order, error)

	// Update replaces the order only while its stored status pair still equals expect.
	// It returns ErrOrderConflict otherwise.
	Update(ctx context.Context, order *entity.Order, expect entity.OrderState) error
}
