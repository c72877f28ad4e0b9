// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"log/slog"

	"petverse/internal/delivery/http/middleware"
	"petverse/internal/delivery/http/router/handler"
	"petverse/internal/domain/constants"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	OrderHandler   *handler.OrderHandler
	GatewayHandler *handler.GatewayHandler
	AddressHandler *handler.AddressHandler
	AuthMiddleware *middleware.AuthMiddleware
	Logger         *slog.Logger
}

// router holds all the handlers that need to be registered.
type router struct {
	orderHandler   *handler.OrderHandler
	gatewayHandler *handler.GatewayHandler
	addressHandler *handler.AddressHandler
	authMiddleware *middleware.AuthMiddleware
	logger         *slog.Logger
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		orderHandler:   params.OrderHandler,
		gatewayHandler: params.GatewayHandler,
		addressHandler: params.AddressHandler,
		authMiddleware: params.AuthMiddleware,
		logger:         params.Logger,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Checkout and order history
	ordersGroup := e.Group("/orders")
	{
		ordersGroup.POST("/create", r.orderHandler.CreateOrder)
		ordersGroup.GET("/user/:userId", r.orderHandler.ListUserOrders)
		ordersGroup.GET("/:orderId", r.orderHandler.GetOrder)
	}

	// Payment gateway
	gatewayGroup := e.Group("/gateway")
	{
		gatewayGroup.POST("/create-order", r.gatewayHandler.CreateOrder)
		gatewayGroup.POST("/verify-payment", r.gatewayHandler.VerifyPayment)
	}

	// Address book
	addressGroup := e.Group("/user/addresses")
	{
		addressGroup.GET("", r.addressHandler.ListAddresses)
		addressGroup.POST("", r.addressHandler.AddAddress)
		addressGroup.PUT("", r.addressHandler.UpdateAddress)
		addressGroup.DELETE("", r.addressHandler.DeleteAddress)
		addressGroup.PUT("/default", r.addressHandler.SetDefaultAddress)
	}

	// Order administration
	adminGroup := e.Group("/admin")
	if r.authMiddleware.Enabled() {
		adminGroup.Use(r.authMiddleware.Authenticate)
		adminGroup.Use(r.authMiddleware.RequireRole(constants.RoleAdmin))
	} else {
		r.logger.Warn("secretKey.access is empty, admin routes are not authenticated")
	}
	{
		adminGroup.GET("/orders", r.orderHandler.ListAllOrders)
		adminGroup.PUT("/orders/:orderId/status", r.orderHandler.UpdateOrderStatus)
		adminGroup.PUT("/orders/:orderId/payment", r.orderHandler.UpdatePaymentStatus)
	}
}
