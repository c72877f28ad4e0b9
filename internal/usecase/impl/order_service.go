package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "petverse/internal/delivery/context"
	"petverse/internal/domain/entity"
	domainerrors "petverse/internal/domain/errors"
	"petverse/internal/domain/repository"
	"petverse/internal/domain/service"
	"petverse/internal/retry"
	"petverse/internal/usecase"

	"go.uber.org/fx"
)

type orderService struct {
	orderRepo      repository.OrderRepository
	publisher      service.EventPublisher
	logger         *slog.Logger
	now            func() time.Time
	conflictPolicy retry.Policy
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	OrderRepo repository.OrderRepository
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewOrderService creates a new order administration service instance
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		orderRepo:      params.OrderRepo,
		publisher:      params.Publisher,
		logger:         params.Logger,
		now:            time.Now,
		conflictPolicy: orderConflictPolicy(),
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetOrder retrieves an order by its id
func (srv *orderService) GetOrder(ctx context.Context, orderID string) (*entity.Order, error) {
	if strings.TrimSpace(orderID) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("orderId is required")
	}

	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, srv.readError(err, "failed to get order")
	}

	return order, nil
}

// ListUserOrders returns a user's orders, newest first
func (srv *orderService) ListUserOrders(ctx context.Context, userID string) ([]*entity.Order, error) {
	if err := requireUserID(userID); err != nil {
		return nil, err
	}

	orders, err := srv.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, srv.readError(err, "failed to list user orders")
	}

	return orders, nil
}

// ListAllOrders returns every order, newest first
func (srv *orderService) ListAllOrders(ctx context.Context) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.ListAll(ctx)
	if err != nil {
		return nil, srv.readError(err, "failed to list orders")
	}

	return orders, nil
}

// UpdateOrderStatus moves an order along the fulfilment state machine
func (srv *orderService) UpdateOrderStatus(ctx context.Context, orderID string, status entity.OrderStatus) (*entity.Order, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown order status " + string(status))
	}

	return srv.modify(ctx, orderID, func(order *entity.Order, now time.Time) (bool, error) {
		return order.TransitionTo(status, now)
	})
}

// UpdatePaymentStatus records a payment status change made by an operator
func (srv *orderService) UpdatePaymentStatus(ctx context.Context, orderID string, status entity.PaymentStatus) (*entity.Order, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown payment status " + string(status))
	}

	return srv.modify(ctx, orderID, func(order *entity.Order, now time.Time) (bool, error) {
		return order.SetPaymentStatus(status, now)
	})
}

// modify reads the order, applies fn and writes it back conditioned on the state it read.
func (srv *orderService) modify(ctx context.Context, orderID string, fn func(order *entity.Order, now time.Time) (bool, error)) (*entity.Order, error) {
	if strings.TrimSpace(orderID) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("orderId is required")
	}

	var updated *entity.Order
	var changed bool
	var before entity.OrderState
	err := srv.conflictPolicy.Do(ctx, func(ctx context.Context, _ int) error {
		current, err := srv.orderRepo.FindByID(ctx, orderID)
		if err != nil {
			return err
		}

		before = current.State()
		changed, err = fn(current, srv.now())
		if err != nil {
			return err
		}
		updated = current
		if !changed {
			return nil
		}

		return srv.orderRepo.Update(ctx, current, before)
	})
	if err != nil {
		if isOrderStateError(err) {
			return nil, toAppError(err)
		}
		srv.log(ctx).Error("Order update failed", slog.String("order_id", orderID), slog.Any("error", err))

		return nil, domainerrors.NewStoreUnavailableError(err, "failed to update order "+orderID)
	}

	if changed {
		srv.log(ctx).Info("Order updated",
			slog.String("order_id", orderID),
			slog.String("from_status", string(before.Status)),
			slog.String("status", string(updated.Status)),
			slog.String("payment_status", string(updated.PaymentStatus)),
		)
		publishOrderEvent(ctx, srv.publisher, srv.log(ctx), service.OrderEventStatusChanged, updated, srv.now())
	}

	return updated, nil
}

func (srv *orderService) readError(err error, details string) error {
	if isOrderStateError(err) {
		return toAppError(err)
	}

	return domainerrors.NewStoreUnavailableError(err, details)
}
