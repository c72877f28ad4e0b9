package usecase

import (
	"context"

	"petverse/internal/domain/entity"
)

// OrderUsecase defines order lookup and administration.
type OrderUsecase interface {
	// GetOrder retrieves an order by its id
	GetOrder(ctx context.Context, orderID string) (*entity.Order, error)

	// ListUserOrders returns a user's orders, newest first
	ListUserOrders(ctx context.Context, userID string) ([]*entity.Order, error)

	// ListAllOrders returns every order, newest first
	ListAllOrders(ctx context.Context) ([]*entity.Order, error)

	// UpdateOrderStatus moves an order along the fulfilment state machine
	UpdateOrderStatus(ctx context.Context, orderID string, status entity.OrderStatus) (*entity.Order, error)

	// UpdatePaymentStatus records a payment status change made by an operator
	UpdatePaymentStatus(ctx context.Context, orderID string, status entity.PaymentStatus) (*entity.Order, error)
}
