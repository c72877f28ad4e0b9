package impl

import (
	"context"
	"testing"
	"time"

	"petverse/internal/domain/entity"
	domainerrors "petverse/internal/domain/errors"
	"petverse/internal/domain/repository"
	"petverse/internal/domain/service"
	"petverse/internal/infra/persistence/memory"
	mockRepo "petverse/internal/mocks/repository"
	mockService "petverse/internal/mocks/service"
	"petverse/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service   usecase.OrderUsecase
	store     *memory.Store
	publisher *mockService.MockEventPublisher
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	t.Helper()

	store := memory.NewStore()
	publisher := mockService.NewMockEventPublisher(t)
	service := NewOrderService(OrderServiceParams{
		OrderRepo: store,
		Publisher: publisher,
		Logger:    testLogger(),
	})

	return orderServiceFixtures{
		service:   service,
		store:     store,
		publisher: publisher,
	}
}

func seedOrder(t *testing.T, store *memory.Store, orderID string, status entity.OrderStatus, createdAt time.Time) *entity.Order {
	t.Helper()

	order := &entity.Order{
		OrderID:       orderID,
		UserID:        "user-1",
		Items:         cartItems(),
		PaymentMethod: entity.PaymentMethodCOD,
		Status:        status,
		PaymentStatus: entity.PaymentStatusPending,
		Currency:      "INR",
		Subtotal:      1000,
		ShippingFee:   5000,
		Total:         6000,
		CreatedAt:     createdAt,
		UpdatedAt:     createdAt,
	}
	require.NoError(t, store.Put(context.Background(), order))

	return order
}

func TestOrderService_GetAndList(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	seedOrder(t, fx.store, "ORD-A", entity.OrderStatusConfirmed, base)
	seedOrder(t, fx.store, "ORD-B", entity.OrderStatusConfirmed, base.Add(time.Hour))

	order, err := fx.service.GetOrder(ctx, "ORD-A")
	require.NoError(t, err)
	assert.Equal(t, "ORD-A", order.OrderID)

	_, err = fx.service.GetOrder(ctx, "ORD-Z")
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)

	orders, err := fx.service.ListUserOrders(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "ORD-B", orders[0].OrderID)

	orders, err = fx.service.ListUserOrders(ctx, "user-2")
	require.NoError(t, err)
	assert.Empty(t, orders)

	_, err = fx.service.ListUserOrders(ctx, " ")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	all, err := fx.service.ListAllOrders(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestOrderService_UpdateOrderStatus(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	seedOrder(t, fx.store, "ORD-A", entity.OrderStatusConfirmed, time.Now())

	fx.publisher.EXPECT().
		PublishOrderEvent(mock.Anything, mock.MatchedBy(func(event *service.OrderEvent) bool {
			return event.Type == service.OrderEventStatusChanged && event.Status == string(entity.OrderStatusShipped)
		})).
		Return(nil).
		Once()

	updated, err := fx.service.UpdateOrderStatus(ctx, "ORD-A", entity.OrderStatusShipped)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusShipped, updated.Status)

	// Same status again is a no-op and publishes nothing.
	updated, err = fx.service.UpdateOrderStatus(ctx, "ORD-A", entity.OrderStatusShipped)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusShipped, updated.Status)

	_, err = fx.service.UpdateOrderStatus(ctx, "ORD-A", entity.OrderStatusPending)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidStatusTransition)

	_, err = fx.service.UpdateOrderStatus(ctx, "ORD-A", "lost")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = fx.service.UpdateOrderStatus(ctx, "ORD-Z", entity.OrderStatusShipped)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)

	stored, err := fx.store.FindByID(ctx, "ORD-A")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusShipped, stored.Status)
}

func TestOrderService_UpdatePaymentStatus(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	seedOrder(t, fx.store, "ORD-A", entity.OrderStatusDelivered, time.Now())

	fx.publisher.EXPECT().
		PublishOrderEvent(mock.Anything, mock.AnythingOfType("*service.OrderEvent")).
		Return(errors.New("broker down")).
		Once()

	updated, err := fx.service.UpdatePaymentStatus(ctx, "ORD-A", entity.PaymentStatusCompleted)
	require.NoError(t, err, "publish failures never fail the update")
	assert.Equal(t, entity.PaymentStatusCompleted, updated.PaymentStatus)

	_, err = fx.service.UpdatePaymentStatus(ctx, "ORD-A", entity.PaymentStatusPending)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidStatusTransition)

	_, err = fx.service.UpdatePaymentStatus(ctx, "ORD-A", "refunded")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOrderService_RetriesConcurrentChange(t *testing.T) {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	publisher := mockService.NewMockEventPublisher(t)
	svc := NewOrderService(OrderServiceParams{
		OrderRepo: orderRepo,
		Publisher: publisher,
		Logger:    testLogger(),
	})
	ctx := context.Background()

	orderRepo.EXPECT().
		FindByID(mock.Anything, "ORD-A").
		RunAndReturn(func(context.Context, string) (*entity.Order, error) {
			return &entity.Order{OrderID: "ORD-A", Status: entity.OrderStatusConfirmed, PaymentStatus: entity.PaymentStatusPending}, nil
		}).
		Times(2)
	orderRepo.EXPECT().
		Update(mock.Anything, mock.AnythingOfType("*entity.Order"), entity.OrderState{
			Status:        entity.OrderStatusConfirmed,
			PaymentStatus: entity.PaymentStatusPending,
		}).
		Return(errors.WithStack(repository.ErrOrderConflict)).
		Once()
	orderRepo.EXPECT().
		Update(mock.Anything, mock.AnythingOfType("*entity.Order"), mock.Anything).
		Return(nil).
		Once()
	publisher.EXPECT().
		PublishOrderEvent(mock.Anything, mock.AnythingOfType("*service.OrderEvent")).
		Return(nil).
		Once()

	updated, err := svc.UpdateOrderStatus(ctx, "ORD-A", entity.OrderStatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, updated.Status)
}

func TestOrderService_StoreFailure(t *testing.T) {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	svc := NewOrderService(OrderServiceParams{
		OrderRepo: orderRepo,
		Publisher: mockService.NewMockEventPublisher(t),
		Logger:    testLogger(),
	})

	orderRepo.EXPECT().
		ListAll(mock.Anything).
		Return(nil, errors.New("scan failed")).
		Once()

	_, err := svc.ListAllOrders(context.Background())
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "STORE_UNAVAILABLE", appErr.ErrorCode())
}
