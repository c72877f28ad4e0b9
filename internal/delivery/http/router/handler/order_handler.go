package handler

import (
	"log/slog"
	"net/http"

	"petverse/internal/delivery/http/response"
	"petverse/internal/delivery/http/validator"
	"petverse/internal/domain/entity"
	domainerrors "petverse/internal/domain/errors"
	"petverse/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	CheckoutUC usecase.CheckoutUsecase
	OrderUC    usecase.OrderUsecase
	Logger     *slog.Logger
}

// OrderHandler serves checkout and order administration
type OrderHandler struct {
	checkoutUC usecase.CheckoutUsecase
	orderUC    usecase.OrderUsecase
	logger     *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		checkoutUC: params.CheckoutUC,
		orderUC:    params.OrderUC,
		logger:     params.Logger,
	}
}

// CreateOrderResponse is returned for a placed or recorded order
type CreateOrderResponse struct {
	Success bool          `json:"success"`
	OrderID string        `json:"orderId"`
	Order   *entity.Order `json:"order"`
	// GatewayOrder is the gateway intent the client opens the payment form with
	GatewayOrder any `json:"gatewayOrder,omitempty"`
}

// UpdateOrderResponse is returned by the admin mutations
type UpdateOrderResponse struct {
	Success      bool          `json:"success"`
	OrderID      string        `json:"orderId"`
	UpdatedOrder *entity.Order `json:"updatedOrder"`
}

// CreateOrder places an order, or records one the client already paid for at the gateway
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order input", "")
	}

	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}

	method, ok := entity.ParsePaymentMethod(req.PaymentMethod)
	if !ok {
		return validationFailed(c, "paymentMethod must be cod or gateway")
	}

	ctx := c.Request().Context()

	if req.IsGatewayRelay() {
		order, err := h.checkoutUC.RecordVerifiedGatewayOrder(ctx, &usecase.RecordGatewayOrderInput{
			PlaceOrderInput:  req.toPlaceOrderInput(entity.PaymentMethodGateway),
			GatewayOrderID:   req.GatewayOrderID,
			GatewayPaymentID: req.PaymentID,
			Signature:        req.Signature,
		})
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusCreated, CreateOrderResponse{
			Success: true,
			OrderID: order.OrderID,
			Order:   order,
		})
	}

	input := req.toPlaceOrderInput(method)
	result, err := h.checkoutUC.PlaceOrder(ctx, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	resp := CreateOrderResponse{
		Success: true,
		OrderID: result.Order.OrderID,
		Order:   result.Order,
	}
	if result.Intent != nil {
		resp.GatewayOrder = gatewayOrderBody(result.Intent)
	}

	return response.Success(c, http.StatusCreated, resp)
}

// GetOrder returns a single order
func (h *OrderHandler) GetOrder(c echo.Context) error {
	order, err := h.orderUC.GetOrder(c.Request().Context(), c.Param("orderId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// ListUserOrders returns a user's orders, newest first
func (h *OrderHandler) ListUserOrders(c echo.Context) error {
	userID := c.Param("userId")
	if userID == "" {
		return validationFailed(c, "userId is required")
	}

	orders, err := h.orderUC.ListUserOrders(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders)
}

// ListAllOrders returns every order for the admin collaborator
func (h *OrderHandler) ListAllOrders(c echo.Context) error {
	orders, err := h.orderUC.ListAllOrders(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders)
}

// UpdateOrderStatus moves an order to a new fulfilment status
func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	var req UpdateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid status input", "")
	}

	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}

	orderID := c.Param("orderId")
	order, err := h.orderUC.UpdateOrderStatus(c.Request().Context(), orderID, entity.OrderStatus(req.Status))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, UpdateOrderResponse{
		Success:      true,
		OrderID:      orderID,
		UpdatedOrder: order,
	})
}

// UpdatePaymentStatus records a payment status change
func (h *OrderHandler) UpdatePaymentStatus(c echo.Context) error {
	var req UpdatePaymentStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid payment status input", "")
	}

	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}

	orderID := c.Param("orderId")
	order, err := h.orderUC.UpdatePaymentStatus(c.Request().Context(), orderID, entity.PaymentStatus(req.PaymentStatus))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, UpdateOrderResponse{
		Success:      true,
		OrderID:      orderID,
		UpdatedOrder: order,
	})
}

// gatewayOrderBody relays the gateway's own JSON when it is available.
func gatewayOrderBody(intent *entity.GatewayIntent) any {
	if intent.Raw != nil {
		return intent.Raw
	}

	return intent
}

func validationError(c echo.Context, err error) error {
	return validationFailed(c, validator.Describe(err))
}

func validationFailed(c echo.Context, details string) error {
	return response.AppError(c, domainerrors.ErrValidationFailed.WithDetails(details))
}
