package impl

import (
	"context"
	"sync"
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

// checkoutServiceFixtures holds all test dependencies for checkout service tests.
type checkoutServiceFixtures struct {
	service   usecase.CheckoutUsecase
	store     *memory.Store
	gateway   *mockService.MockPaymentGateway
	verifier  *mockService.MockSignatureVerifier
	publisher *mockService.MockEventPublisher

	mu     sync.Mutex
	events []string
}

func createTestCheckoutService(t *testing.T) *checkoutServiceFixtures {
	t.Helper()

	store := memory.NewStore()

	return newCheckoutFixtures(t, store, store)
}

func newCheckoutFixtures(t *testing.T, addressRepo repository.AddressRepository, orderRepo repository.OrderRepository) *checkoutServiceFixtures {
	t.Helper()

	fx := &checkoutServiceFixtures{
		gateway:   mockService.NewMockPaymentGateway(t),
		verifier:  mockService.NewMockSignatureVerifier(t),
		publisher: mockService.NewMockEventPublisher(t),
	}
	intentRepo := repository.IntentRepository(memory.NewStore())
	if store, ok := orderRepo.(*memory.Store); ok {
		fx.store = store
		intentRepo = store
	}

	fx.publisher.EXPECT().
		PublishOrderEvent(mock.Anything, mock.AnythingOfType("*service.OrderEvent")).
		Run(func(_ context.Context, event *service.OrderEvent) {
			fx.mu.Lock()
			defer fx.mu.Unlock()
			fx.events = append(fx.events, event.Type)
		}).
		Return(nil).
		Maybe()

	fx.service = NewCheckoutService(CheckoutServiceParams{
		AddressRepo: addressRepo,
		OrderRepo:   orderRepo,
		IntentRepo:  intentRepo,
		Gateway:     fx.gateway,
		Verifier:    fx.verifier,
		Publisher:   fx.publisher,
		Config:      testConfig(),
		Logger:      testLogger(),
	})

	return fx
}

func (fx *checkoutServiceFixtures) publishedEvents() []string {
	fx.mu.Lock()
	defer fx.mu.Unlock()

	return append([]string(nil), fx.events...)
}

func (fx *checkoutServiceFixtures) expectSignature(gatewayOrderID, gatewayPaymentID, signature string, valid bool) {
	fx.verifier.EXPECT().
		Verify(gatewayOrderID, gatewayPaymentID, signature).
		Return(entity.PaymentVerification{
			Valid:            valid,
			GatewayOrderID:   gatewayOrderID,
			GatewayPaymentID: gatewayPaymentID,
		})
}

func (fx *checkoutServiceFixtures) placeGatewayOrder(t *testing.T, gatewayOrderID string) *entity.Order {
	t.Helper()

	fx.gateway.EXPECT().
		CreateOrder(mock.Anything, int64(6000), "INR", mock.AnythingOfType("string")).
		Return(&entity.GatewayIntent{GatewayOrderID: gatewayOrderID, AmountMinorUnits: 6000, Currency: "INR"}, nil).
		Once()

	result, err := fx.service.PlaceOrder(context.Background(), placeInput(entity.PaymentMethodGateway))
	require.NoError(t, err)

	return result.Order
}

// createGatewayOrder creates a bare gateway intent the way a client driving its own payment form does.
func (fx *checkoutServiceFixtures) createGatewayOrder(t *testing.T, gatewayOrderID string, amount int64) {
	t.Helper()

	fx.gateway.EXPECT().
		CreateOrder(mock.Anything, amount, "INR", mock.AnythingOfType("string")).
		Return(&entity.GatewayIntent{GatewayOrderID: gatewayOrderID, AmountMinorUnits: amount, Currency: "INR"}, nil).
		Once()

	_, err := fx.service.CreateGatewayOrder(context.Background(), amount, "INR")
	require.NoError(t, err)
}

func cartItems() []entity.OrderItem {
	return []entity.OrderItem{{ProductID: "p1", Name: "Chew toy", Price: 500, Quantity: 2}}
}

func placeInput(method entity.PaymentMethod) *usecase.PlaceOrderInput {
	return &usecase.PlaceOrderInput{
		UserID:        "user-1",
		Items:         cartItems(),
		Address:       deliveryAddress(),
		PaymentMethod: method,
		Notes:         " leave at door ",
	}
}

func TestCheckoutService_PlaceOrder_CashOnDelivery(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	result, err := fx.service.PlaceOrder(ctx, placeInput(entity.PaymentMethodCOD))
	require.NoError(t, err)
	require.NotNil(t, result.Order)
	assert.Nil(t, result.Intent)

	order := result.Order
	assert.Equal(t, entity.OrderStatusConfirmed, order.Status)
	assert.Equal(t, entity.PaymentStatusPending, order.PaymentStatus)
	assert.Empty(t, order.GatewayOrderID)
	assert.Equal(t, int64(1000), order.Subtotal)
	assert.Equal(t, int64(5000), order.ShippingFee)
	assert.Equal(t, int64(6000), order.Total)
	assert.Equal(t, "INR", order.Currency)
	assert.Equal(t, "leave at door", order.Notes)
	assert.Equal(t, entity.AddressTypeHome, order.DeliveryAddress.AddressType)
	assert.Regexp(t, `^ORD-[0-9A-Z]+-[0-9A-F]{8}$`, order.OrderID)

	stored, err := fx.store.FindByID(ctx, order.OrderID)
	require.NoError(t, err)
	assert.Equal(t, order.Total, stored.Total)
	assert.Equal(t, []string{service.OrderEventPlaced}, fx.publishedEvents())
}

func TestCheckoutService_PlaceOrder_FreeShippingAtThreshold(t *testing.T) {
	fx := createTestCheckoutService(t)

	input := placeInput(entity.PaymentMethodCOD)
	input.Items = []entity.OrderItem{{ProductID: "p2", Price: 25000, Quantity: 2}}
	input.ExpectedTotals = &entity.Totals{Subtotal: 50000, ShippingFee: 0, Total: 50000}

	result, err := fx.service.PlaceOrder(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, int64(0), result.Order.ShippingFee)
	assert.Equal(t, int64(50000), result.Order.Total)
}

func TestCheckoutService_PlaceOrder_Gateway(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	fx.gateway.EXPECT().
		CreateOrder(mock.Anything, int64(6000), "INR", mock.AnythingOfType("string")).
		Return(&entity.GatewayIntent{GatewayOrderID: "order_gw1", AmountMinorUnits: 6000, Currency: "INR"}, nil).
		Once()

	result, err := fx.service.PlaceOrder(ctx, placeInput(entity.PaymentMethodGateway))
	require.NoError(t, err)
	require.NotNil(t, result.Intent)
	assert.Equal(t, "order_gw1", result.Intent.GatewayOrderID)
	assert.Equal(t, entity.OrderStatusPending, result.Order.Status)
	assert.Equal(t, entity.PaymentStatusPending, result.Order.PaymentStatus)
	assert.Equal(t, "order_gw1", result.Order.GatewayOrderID)

	stored, err := fx.store.FindByGatewayOrderID(ctx, "order_gw1")
	require.NoError(t, err)
	assert.Equal(t, result.Order.OrderID, stored.OrderID)
}

func TestCheckoutService_PlaceOrder_GatewayFailureWritesNothing(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	fx.gateway.EXPECT().
		CreateOrder(mock.Anything, int64(6000), "INR", mock.AnythingOfType("string")).
		Return(nil, domainerrors.ErrGatewayUnavailable.WithDetails("503")).
		Once()

	_, err := fx.service.PlaceOrder(ctx, placeInput(entity.PaymentMethodGateway))
	assert.ErrorIs(t, err, domainerrors.ErrGatewayUnavailable)

	orders, err := fx.store.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)
	assert.Empty(t, fx.publishedEvents())
}

func TestCheckoutService_PlaceOrder_GatewayOrderNotRecorded(t *testing.T) {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	fx := newCheckoutFixtures(t, memory.NewStore(), orderRepo)

	fx.gateway.EXPECT().
		CreateOrder(mock.Anything, int64(6000), "INR", mock.AnythingOfType("string")).
		Return(&entity.GatewayIntent{GatewayOrderID: "order_gw9"}, nil).
		Once()
	orderRepo.EXPECT().
		Put(mock.Anything, mock.AnythingOfType("*entity.Order")).
		Return(errors.New("throughput exceeded")).
		Once()

	_, err := fx.service.PlaceOrder(context.Background(), placeInput(entity.PaymentMethodGateway))
	require.ErrorIs(t, err, domainerrors.ErrOrderNotRecorded)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Contains(t, appErr.Details(), "order_gw9")
	assert.Empty(t, fx.publishedEvents())
}

func TestCheckoutService_PlaceOrder_CashOnDeliveryStoreFailure(t *testing.T) {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	fx := newCheckoutFixtures(t, memory.NewStore(), orderRepo)

	orderRepo.EXPECT().
		Put(mock.Anything, mock.AnythingOfType("*entity.Order")).
		Return(errors.New("connection reset")).
		Once()

	_, err := fx.service.PlaceOrder(context.Background(), placeInput(entity.PaymentMethodCOD))
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "STORE_UNAVAILABLE", appErr.ErrorCode())
}

func TestCheckoutService_PlaceOrder_PersistsAfterCallerCancels(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx, cancel := context.WithCancel(context.Background())

	fx.gateway.EXPECT().
		CreateOrder(mock.Anything, int64(6000), "INR", mock.AnythingOfType("string")).
		RunAndReturn(func(context.Context, int64, string, string) (*entity.GatewayIntent, error) {
			cancel()

			return &entity.GatewayIntent{GatewayOrderID: "order_gw2"}, nil
		}).
		Once()

	result, err := fx.service.PlaceOrder(ctx, placeInput(entity.PaymentMethodGateway))
	require.NoError(t, err)

	stored, err := fx.store.FindByID(context.Background(), result.Order.OrderID)
	require.NoError(t, err)
	assert.Equal(t, "order_gw2", stored.GatewayOrderID)
}

func TestCheckoutService_PlaceOrder_Validation(t *testing.T) {
	fx := createTestCheckoutService(t)

	tests := []struct {
		name   string
		mutate func(in *usecase.PlaceOrderInput)
	}{
		{name: "empty cart", mutate: func(in *usecase.PlaceOrderInput) { in.Items = nil }},
		{name: "zero quantity", mutate: func(in *usecase.PlaceOrderInput) { in.Items[0].Quantity = 0 }},
		{name: "missing user", mutate: func(in *usecase.PlaceOrderInput) { in.UserID = "" }},
		{name: "unknown payment method", mutate: func(in *usecase.PlaceOrderInput) { in.PaymentMethod = "barter" }},
		{name: "incomplete address", mutate: func(in *usecase.PlaceOrderInput) { in.Address.City = "" }},
		{
			name: "totals mismatch",
			mutate: func(in *usecase.PlaceOrderInput) {
				in.ExpectedTotals = &entity.Totals{Subtotal: 1000, ShippingFee: 0, Total: 1000}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := placeInput(entity.PaymentMethodGateway)
			tt.mutate(input)

			_, err := fx.service.PlaceOrder(context.Background(), input)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}

	orders, err := fx.store.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestCheckoutService_PlaceOrder_ResolvesStoredAddress(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	book := entity.NewAddressBook("user-1", 0, nil)
	now := time.Now()
	_, err := book.Add(&entity.Address{
		AddressID: "home", Name: "Asha", Phone: "1", Email: "a@example.com",
		AddressLine1: "1 Main", City: "Pune", State: "MH", PostalCode: "411001",
		AddressType: entity.AddressTypeHome,
	}, false, now)
	require.NoError(t, err)
	_, err = book.Add(&entity.Address{
		AddressID: "office", Name: "Asha", Phone: "1", Email: "a@example.com",
		AddressLine1: "9 Tech Park", City: "Pune", State: "MH", PostalCode: "411057",
		AddressType: entity.AddressTypeWork,
	}, false, now)
	require.NoError(t, err)
	require.NoError(t, fx.store.SaveBook(ctx, book))

	byDefault := placeInput(entity.PaymentMethodCOD)
	byDefault.Address = nil
	result, err := fx.service.PlaceOrder(ctx, byDefault)
	require.NoError(t, err)
	assert.Equal(t, "1 Main", result.Order.DeliveryAddress.AddressLine1)

	byID := placeInput(entity.PaymentMethodCOD)
	byID.Address = nil
	byID.AddressID = "office"
	result, err = fx.service.PlaceOrder(ctx, byID)
	require.NoError(t, err)
	assert.Equal(t, "9 Tech Park", result.Order.DeliveryAddress.AddressLine1)
	assert.Equal(t, entity.AddressTypeWork, result.Order.DeliveryAddress.AddressType)

	unknown := placeInput(entity.PaymentMethodCOD)
	unknown.Address = nil
	unknown.AddressID = "cottage"
	_, err = fx.service.PlaceOrder(ctx, unknown)
	assert.ErrorIs(t, err, domainerrors.ErrAddressNotFound)

	stranger := placeInput(entity.PaymentMethodCOD)
	stranger.UserID = "user-2"
	stranger.Address = nil
	_, err = fx.service.PlaceOrder(ctx, stranger)
	assert.ErrorIs(t, err, domainerrors.ErrAddressNotFound)
}

func TestCheckoutService_FinalizeGatewayPayment_Idempotent(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	placed := fx.placeGatewayOrder(t, "order_gw1")
	fx.expectSignature("order_gw1", "pay_1", "sig", true)

	first, err := fx.service.FinalizeGatewayPayment(ctx, "order_gw1", "pay_1", "sig")
	require.NoError(t, err)
	assert.Equal(t, placed.OrderID, first.OrderID)
	assert.Equal(t, entity.OrderStatusConfirmed, first.Status)
	assert.Equal(t, entity.PaymentStatusCompleted, first.PaymentStatus)
	assert.Equal(t, "pay_1", first.GatewayPaymentID)

	second, err := fx.service.FinalizeGatewayPayment(ctx, "order_gw1", "pay_1", "sig")
	require.NoError(t, err)
	assert.Equal(t, first.State(), second.State())
	assert.Equal(t, first.UpdatedAt, second.UpdatedAt)

	assert.Equal(t, []string{service.OrderEventPlaced, service.OrderEventConfirmed}, fx.publishedEvents())
}

func TestCheckoutService_FinalizeGatewayPayment_Concurrent(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	fx.placeGatewayOrder(t, "order_gw1")
	fx.expectSignature("order_gw1", "pay_1", "sig", true)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			order, err := fx.service.FinalizeGatewayPayment(ctx, "order_gw1", "pay_1", "sig")
			if assert.NoError(t, err) {
				assert.Equal(t, entity.PaymentStatusCompleted, order.PaymentStatus)
			}
		}()
	}
	wg.Wait()

	confirmed := 0
	for _, eventType := range fx.publishedEvents() {
		if eventType == service.OrderEventConfirmed {
			confirmed++
		}
	}
	assert.Equal(t, 1, confirmed)
}

func TestCheckoutService_FinalizeGatewayPayment_SignatureMismatch(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	placed := fx.placeGatewayOrder(t, "order_gw1")
	fx.expectSignature("order_gw1", "pay_1", "forged", false)

	_, err := fx.service.FinalizeGatewayPayment(ctx, "order_gw1", "pay_1", "forged")
	assert.ErrorIs(t, err, domainerrors.ErrSignatureMismatch)

	stored, err := fx.store.FindByID(ctx, placed.OrderID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, stored.Status)
	assert.Equal(t, entity.PaymentStatusPending, stored.PaymentStatus)
}

func TestCheckoutService_FinalizeGatewayPayment_DifferentPaymentConflicts(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	fx.placeGatewayOrder(t, "order_gw1")
	fx.expectSignature("order_gw1", "pay_1", "sig1", true)
	fx.expectSignature("order_gw1", "pay_2", "sig2", true)

	_, err := fx.service.FinalizeGatewayPayment(ctx, "order_gw1", "pay_1", "sig1")
	require.NoError(t, err)

	_, err = fx.service.FinalizeGatewayPayment(ctx, "order_gw1", "pay_2", "sig2")
	assert.ErrorIs(t, err, domainerrors.ErrPaymentConflict)
}

func TestCheckoutService_FinalizeGatewayPayment_UnknownOrder(t *testing.T) {
	fx := createTestCheckoutService(t)

	_, err := fx.service.FinalizeGatewayPayment(context.Background(), "order_missing", "pay_1", "sig")
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestCheckoutService_RecordVerifiedGatewayOrder(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	fx.createGatewayOrder(t, "order_gw5", 6000)
	fx.expectSignature("order_gw5", "pay_5", "sig", true)
	input := &usecase.RecordGatewayOrderInput{
		PlaceOrderInput:  *placeInput(entity.PaymentMethodGateway),
		GatewayOrderID:   "order_gw5",
		GatewayPaymentID: "pay_5",
		Signature:        "sig",
	}

	order, err := fx.service.RecordVerifiedGatewayOrder(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusConfirmed, order.Status)
	assert.Equal(t, entity.PaymentStatusCompleted, order.PaymentStatus)
	assert.Equal(t, "pay_5", order.GatewayPaymentID)

	again, err := fx.service.RecordVerifiedGatewayOrder(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, order.OrderID, again.OrderID)

	orders, err := fx.store.ListByUser(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, orders, 1)
	assert.Equal(t, []string{service.OrderEventPlaced, service.OrderEventConfirmed}, fx.publishedEvents())
}

func TestCheckoutService_RecordVerifiedGatewayOrder_InvalidSignatureWritesNothing(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	fx.expectSignature("order_gw5", "pay_5", "forged", false)

	_, err := fx.service.RecordVerifiedGatewayOrder(ctx, &usecase.RecordGatewayOrderInput{
		PlaceOrderInput:  *placeInput(entity.PaymentMethodGateway),
		GatewayOrderID:   "order_gw5",
		GatewayPaymentID: "pay_5",
		Signature:        "forged",
	})
	assert.ErrorIs(t, err, domainerrors.ErrSignatureMismatch)

	orders, err := fx.store.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestCheckoutService_RecordVerifiedGatewayOrder_RejectsAmountNotPaid(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	fx.createGatewayOrder(t, "order_cheap", 100)
	fx.expectSignature("order_cheap", "pay_cheap", "sig", true)

	input := &usecase.RecordGatewayOrderInput{
		PlaceOrderInput:  *placeInput(entity.PaymentMethodGateway),
		GatewayOrderID:   "order_cheap",
		GatewayPaymentID: "pay_cheap",
		Signature:        "sig",
	}
	input.Items = []entity.OrderItem{{ProductID: "p9", Name: "Aquarium", Price: 10_000_000, Quantity: 1}}

	_, err := fx.service.RecordVerifiedGatewayOrder(ctx, input)
	assert.ErrorIs(t, err, domainerrors.ErrPaymentConflict)

	orders, err := fx.store.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)
	assert.Empty(t, fx.publishedEvents())
}

func TestCheckoutService_RecordVerifiedGatewayOrder_RejectsUnknownGatewayOrder(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	fx.expectSignature("order_elsewhere", "pay_1", "sig", true)

	_, err := fx.service.RecordVerifiedGatewayOrder(ctx, &usecase.RecordGatewayOrderInput{
		PlaceOrderInput:  *placeInput(entity.PaymentMethodGateway),
		GatewayOrderID:   "order_elsewhere",
		GatewayPaymentID: "pay_1",
		Signature:        "sig",
	})
	assert.ErrorIs(t, err, domainerrors.ErrPaymentConflict)

	orders, err := fx.store.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestCheckoutService_RecordVerifiedGatewayOrder_SettlesPendingOrder(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	placed := fx.placeGatewayOrder(t, "order_gw1")
	fx.expectSignature("order_gw1", "pay_1", "sig", true)

	order, err := fx.service.RecordVerifiedGatewayOrder(ctx, &usecase.RecordGatewayOrderInput{
		PlaceOrderInput:  *placeInput(entity.PaymentMethodGateway),
		GatewayOrderID:   "order_gw1",
		GatewayPaymentID: "pay_1",
		Signature:        "sig",
	})
	require.NoError(t, err)
	assert.Equal(t, placed.OrderID, order.OrderID)
	assert.Equal(t, entity.PaymentStatusCompleted, order.PaymentStatus)
}

func TestCheckoutService_VerifyPayment(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	placed := fx.placeGatewayOrder(t, "order_gw1")
	fx.expectSignature("order_gw1", "pay_1", "forged", false)
	fx.expectSignature("order_gw1", "pay_1", "sig", true)
	fx.expectSignature("order_other", "pay_9", "sig", true)

	result, err := fx.service.VerifyPayment(ctx, "order_gw1", "pay_1", "forged")
	require.NoError(t, err)
	assert.False(t, result.Valid)

	result, err = fx.service.VerifyPayment(ctx, "order_gw1", "pay_1", "sig")
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Equal(t, "pay_1", result.GatewayPaymentID)

	stored, err := fx.store.FindByID(ctx, placed.OrderID)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusCompleted, stored.PaymentStatus)

	result, err = fx.service.VerifyPayment(ctx, "order_other", "pay_9", "sig")
	require.NoError(t, err)
	assert.True(t, result.Valid)

	_, err = fx.service.VerifyPayment(ctx, "order_gw1", "", "sig")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCheckoutService_CreateGatewayOrder(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	fx.gateway.EXPECT().
		CreateOrder(mock.Anything, int64(49900), "INR", mock.AnythingOfType("string")).
		Run(func(_ context.Context, _ int64, _ string, receiptID string) {
			assert.Regexp(t, `^receipt_ORD-`, receiptID)
		}).
		Return(&entity.GatewayIntent{GatewayOrderID: "order_gw7", AmountMinorUnits: 49900, Currency: "INR"}, nil).
		Once()

	intent, err := fx.service.CreateGatewayOrder(ctx, 49900, "")
	require.NoError(t, err)
	assert.Equal(t, "order_gw7", intent.GatewayOrderID)

	recorded, err := fx.store.FindIntent(ctx, "order_gw7")
	require.NoError(t, err)
	assert.True(t, recorded.Covers(49900, "INR"))

	_, err = fx.service.CreateGatewayOrder(ctx, 0, "INR")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCheckoutService_CreateGatewayOrder_NotRecorded(t *testing.T) {
	store := memory.NewStore()
	fx := newCheckoutFixtures(t, store, store)
	intents := mockRepo.NewMockIntentRepository(t)
	fx.service.(*checkoutService).intentRepo = intents

	fx.gateway.EXPECT().
		CreateOrder(mock.Anything, int64(49900), "INR", mock.AnythingOfType("string")).
		Return(&entity.GatewayIntent{GatewayOrderID: "order_gw7", AmountMinorUnits: 49900, Currency: "INR"}, nil).
		Once()
	intents.EXPECT().
		SaveIntent(mock.Anything, mock.AnythingOfType("*entity.GatewayIntent")).
		Return(errors.New("connection reset")).
		Once()

	_, err := fx.service.CreateGatewayOrder(context.Background(), 49900, "INR")

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "STORE_UNAVAILABLE", appErr.ErrorCode())
}

func TestCheckoutService_VerifyPayment_CancelledOrderStillReportsValid(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	placed := fx.placeGatewayOrder(t, "order_gw1")
	cancelled := placed.Clone()
	cancelled.Status = entity.OrderStatusCancelled
	require.NoError(t, fx.store.Update(ctx, cancelled, placed.State()))
	fx.expectSignature("order_gw1", "pay_1", "sig", true)

	result, err := fx.service.VerifyPayment(ctx, "order_gw1", "pay_1", "sig")
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Equal(t, "pay_1", result.GatewayPaymentID)

	stored, err := fx.store.FindByID(ctx, placed.OrderID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, stored.Status)
	assert.Equal(t, entity.PaymentStatusPending, stored.PaymentStatus)
}
