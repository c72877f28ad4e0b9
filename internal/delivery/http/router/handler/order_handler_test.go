package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"petverse/internal/domain/entity"
	domainerrors "petverse/internal/domain/errors"
	mockUsecase "petverse/internal/mocks/usecase"
	"petverse/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderHandlerFixtures holds all test dependencies for order handler tests.
type orderHandlerFixtures struct {
	handler    *OrderHandler
	checkoutUC *mockUsecase.MockCheckoutUsecase
	orderUC    *mockUsecase.MockOrderUsecase
}

func createTestOrderHandler(t *testing.T) orderHandlerFixtures {
	checkoutUC := mockUsecase.NewMockCheckoutUsecase(t)
	orderUC := mockUsecase.NewMockOrderUsecase(t)
	handler := NewOrderHandler(OrderHandlerParams{
		CheckoutUC: checkoutUC,
		OrderUC:    orderUC,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return orderHandlerFixtures{
		handler:    handler,
		checkoutUC: checkoutUC,
		orderUC:    orderUC,
	}
}

const codOrderBody = `{
	"userId": "user-1",
	"items": [{"productId": "p1", "name": "Chew toy", "price": 500, "quantity": 2}],
	"deliveryAddress": {
		"name": "Asha", "phone": "9876543210", "email": "asha@example.com",
		"addressLine1": "12 MG Road", "city": "Bengaluru", "state": "KA", "pincode": "560001"
	},
	"paymentMethod": "cash-on-delivery",
	"orderNotes": "ring twice",
	"subtotal": 1000, "shipping": 5000, "total": 6000,
	"paymentStatus": "completed"
}`

func sampleOrder(id string) *entity.Order {
	return &entity.Order{
		OrderID:       id,
		UserID:        "user-1",
		Status:        entity.OrderStatusConfirmed,
		PaymentStatus: entity.PaymentStatusPending,
		PaymentMethod: entity.PaymentMethodCOD,
		Total:         6000,
		CreatedAt:     time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestOrderHandler_CreateOrder_CashOnDelivery(t *testing.T) {
	fx := createTestOrderHandler(t)

	fx.checkoutUC.EXPECT().
		PlaceOrder(mock.Anything, mock.MatchedBy(func(in *usecase.PlaceOrderInput) bool {
			return in.UserID == "user-1" &&
				in.PaymentMethod == entity.PaymentMethodCOD &&
				len(in.Items) == 1 && in.Items[0].Price == 500 &&
				in.Address != nil && in.Address.PostalCode == "560001" &&
				in.Address.AddressType == entity.AddressTypeHome &&
				in.ExpectedTotals != nil && in.ExpectedTotals.Total == 6000 &&
				in.Notes == "ring twice"
		})).
		Return(&usecase.PlaceOrderResult{Order: sampleOrder("ORD-1")}, nil).
		Once()

	rec := serve(t, http.MethodPost, "/orders/create", "/orders/create", codOrderBody, fx.handler.CreateOrder)
	require.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "ORD-1", body["orderId"])
	assert.NotContains(t, body, "gatewayOrder")
	order := body["order"].(map[string]any)
	assert.Equal(t, "confirmed", order["status"])
}

func TestOrderHandler_CreateOrder_GatewayReturnsIntent(t *testing.T) {
	fx := createTestOrderHandler(t)

	placed := sampleOrder("ORD-2")
	placed.Status = entity.OrderStatusPending
	placed.GatewayOrderID = "order_gw1"
	fx.checkoutUC.EXPECT().
		PlaceOrder(mock.Anything, mock.AnythingOfType("*usecase.PlaceOrderInput")).
		Return(&usecase.PlaceOrderResult{
			Order:  placed,
			Intent: &entity.GatewayIntent{GatewayOrderID: "order_gw1", Raw: map[string]any{"id": "order_gw1", "entity": "order"}},
		}, nil).
		Once()

	reqBody := `{"userId":"user-1","items":[{"productId":"p1","price":500,"quantity":2}],"addressId":"addr-1","paymentMethod":"gateway"}`
	rec := serve(t, http.MethodPost, "/orders/create", "/orders/create", reqBody, fx.handler.CreateOrder)
	require.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	gatewayOrder := body["gatewayOrder"].(map[string]any)
	assert.Equal(t, "order", gatewayOrder["entity"])
}

func TestOrderHandler_CreateOrder_RelayedGatewayPayment(t *testing.T) {
	fx := createTestOrderHandler(t)

	recorded := sampleOrder("ORD-3")
	recorded.PaymentStatus = entity.PaymentStatusCompleted
	fx.checkoutUC.EXPECT().
		RecordVerifiedGatewayOrder(mock.Anything, mock.MatchedBy(func(in *usecase.RecordGatewayOrderInput) bool {
			return in.GatewayOrderID == "order_gw1" && in.GatewayPaymentID == "pay_1" &&
				in.Signature == "sig" && in.PaymentMethod == entity.PaymentMethodGateway
		})).
		Return(recorded, nil).
		Once()

	reqBody := `{"userId":"user-1","items":[{"productId":"p1","price":500,"quantity":2}],
		"paymentMethod":"razorpay","gatewayOrderId":"order_gw1","paymentId":"pay_1","signature":"sig"}`
	rec := serve(t, http.MethodPost, "/orders/create", "/orders/create", reqBody, fx.handler.CreateOrder)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"orderId":"ORD-3"`)
}

func TestOrderHandler_CreateOrder_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(fx orderHandlerFixtures)
		wantStatus int
		wantCode   string
	}{
		{
			name:       "missing items",
			body:       `{"userId":"user-1","items":[],"paymentMethod":"cod"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
		{
			name:       "unknown payment method",
			body:       `{"userId":"user-1","items":[{"productId":"p1","price":1,"quantity":1}],"paymentMethod":"barter"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
		{
			name:       "line total out of range",
			body:       `{"userId":"user-1","items":[{"productId":"p1","price":4611686018427387904,"quantity":4}],"paymentMethod":"cod"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
		{
			name:       "malformed json",
			body:       `{"userId":`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_INPUT",
		},
		{
			name: "gateway unavailable",
			body: `{"userId":"user-1","items":[{"productId":"p1","price":1,"quantity":1}],"paymentMethod":"gateway"}`,
			setup: func(fx orderHandlerFixtures) {
				fx.checkoutUC.EXPECT().
					PlaceOrder(mock.Anything, mock.Anything).
					Return(nil, domainerrors.ErrGatewayUnavailable.WithDetails("timeout")).
					Once()
			},
			wantStatus: http.StatusBadGateway,
			wantCode:   "GATEWAY_UNAVAILABLE",
		},
		{
			name: "relay with bad signature",
			body: `{"userId":"user-1","items":[{"productId":"p1","price":1,"quantity":1}],"paymentMethod":"gateway","gatewayOrderId":"g","paymentId":"p","signature":"x"}`,
			setup: func(fx orderHandlerFixtures) {
				fx.checkoutUC.EXPECT().
					RecordVerifiedGatewayOrder(mock.Anything, mock.Anything).
					Return(nil, domainerrors.ErrSignatureMismatch).
					Once()
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   "SIGNATURE_MISMATCH",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderHandler(t)
			if tt.setup != nil {
				tt.setup(fx)
			}

			rec := serve(t, http.MethodPost, "/orders/create", "/orders/create", tt.body, fx.handler.CreateOrder)
			assert.Equal(t, tt.wantStatus, rec.Code)

			body := decodeError(t, rec)
			assert.False(t, body.Success)
			assert.Equal(t, tt.wantCode, body.Code)
			assert.Equal(t, tt.wantCode, body.Error.Code)
		})
	}
}

func TestOrderHandler_CreateOrder_NotRecordedKeepsGatewayID(t *testing.T) {
	fx := createTestOrderHandler(t)

	fx.checkoutUC.EXPECT().
		PlaceOrder(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrOrderNotRecorded.WithDetails("gateway order order_gw9")).
		Once()

	reqBody := `{"userId":"user-1","items":[{"productId":"p1","price":1,"quantity":1}],"paymentMethod":"gateway"}`
	rec := serve(t, http.MethodPost, "/orders/create", "/orders/create", reqBody, fx.handler.CreateOrder)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	body := decodeError(t, rec)
	assert.Equal(t, "ORDER_NOT_RECORDED", body.Code)
	assert.Equal(t, "gateway order order_gw9", body.Error.Details)
}

func TestOrderHandler_ListUserOrders(t *testing.T) {
	fx := createTestOrderHandler(t)

	fx.orderUC.EXPECT().
		ListUserOrders(mock.Anything, "user-1").
		Return([]*entity.Order{sampleOrder("ORD-2"), sampleOrder("ORD-1")}, nil).
		Once()

	rec := serve(t, http.MethodGet, "/orders/user/:userId", "/orders/user/user-1", "", fx.handler.ListUserOrders)
	require.Equal(t, http.StatusOK, rec.Code)

	var orders []entity.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &orders))
	require.Len(t, orders, 2)
	assert.Equal(t, "ORD-2", orders[0].OrderID)
}

func TestOrderHandler_GetOrderNotFound(t *testing.T) {
	fx := createTestOrderHandler(t)

	fx.orderUC.EXPECT().
		GetOrder(mock.Anything, "ORD-404").
		Return(nil, domainerrors.ErrOrderNotFound).
		Once()

	rec := serve(t, http.MethodGet, "/orders/:orderId", "/orders/ORD-404", "", fx.handler.GetOrder)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "ORDER_NOT_FOUND", decodeError(t, rec).Code)
}

func TestOrderHandler_UpdateOrderStatus(t *testing.T) {
	fx := createTestOrderHandler(t)

	shipped := sampleOrder("ORD-1")
	shipped.Status = entity.OrderStatusShipped
	fx.orderUC.EXPECT().
		UpdateOrderStatus(mock.Anything, "ORD-1", entity.OrderStatusShipped).
		Return(shipped, nil).
		Once()

	rec := serve(t, http.MethodPut, "/admin/orders/:orderId/status", "/admin/orders/ORD-1/status",
		`{"status":"shipped"}`, fx.handler.UpdateOrderStatus)
	require.Equal(t, http.StatusOK, rec.Code)

	var body UpdateOrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "ORD-1", body.OrderID)
	assert.Equal(t, entity.OrderStatusShipped, body.UpdatedOrder.Status)
}

func TestOrderHandler_UpdatePaymentStatusRejectsTransition(t *testing.T) {
	fx := createTestOrderHandler(t)

	fx.orderUC.EXPECT().
		UpdatePaymentStatus(mock.Anything, "ORD-1", entity.PaymentStatusPending).
		Return(nil, domainerrors.ErrInvalidStatusTransition).
		Once()

	rec := serve(t, http.MethodPut, "/admin/orders/:orderId/payment", "/admin/orders/ORD-1/payment",
		`{"paymentStatus":"pending"}`, fx.handler.UpdatePaymentStatus)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "INVALID_STATUS_TRANSITION", decodeError(t, rec).Code)
}
