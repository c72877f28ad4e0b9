package handler

import (
	"net/http"

	"petverse/internal/delivery/http/response"
	"petverse/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// GatewayHandlerParams holds dependencies for GatewayHandler, injected by Fx.
type GatewayHandlerParams struct {
	fx.In

	CheckoutUC usecase.CheckoutUsecase
}

// GatewayHandler exposes the payment gateway to clients driving the payment form
type GatewayHandler struct {
	checkoutUC usecase.CheckoutUsecase
}

// NewGatewayHandler is the constructor for GatewayHandler
func NewGatewayHandler(params GatewayHandlerParams) *GatewayHandler {
	return &GatewayHandler{checkoutUC: params.CheckoutUC}
}

// CreateOrder creates a gateway order and returns the gateway's order object
func (h *GatewayHandler) CreateOrder(c echo.Context) error {
	var req CreateGatewayOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid gateway order input", "")
	}

	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}

	intent, err := h.checkoutUC.CreateGatewayOrder(c.Request().Context(), req.Amount, req.Currency)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, gatewayOrderBody(intent))
}

// VerifyPayment checks a payment signature. A mismatch is a 200 with isSignatureValid=false.
func (h *GatewayHandler) VerifyPayment(c echo.Context) error {
	var req VerifyPaymentRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid payment verification input", "")
	}

	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}

	verification, err := h.checkoutUC.VerifyPayment(c.Request().Context(), req.OrderID, req.PaymentID, req.Signature)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, verification)
}
