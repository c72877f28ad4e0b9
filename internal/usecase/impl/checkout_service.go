package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"petverse/config"
	deliverycontext "petverse/internal/delivery/context"
	"petverse/internal/domain/entity"
	domainerrors "petverse/internal/domain/errors"
	"petverse/internal/domain/repository"
	"petverse/internal/domain/service"
	"petverse/internal/retry"
	"petverse/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	orderUpdateAttempts   = 3
	orderUpdateRetryDelay = 10 * time.Millisecond
)

type checkoutService struct {
	addressRepo    repository.AddressRepository
	orderRepo      repository.OrderRepository
	intentRepo     repository.IntentRepository
	gateway        service.PaymentGateway
	verifier       service.SignatureVerifier
	publisher      service.EventPublisher
	shipping       entity.ShippingPolicy
	currency       string
	storeTimeout   time.Duration
	logger         *slog.Logger
	now            func() time.Time
	newOrderID     func(now time.Time) string
	conflictPolicy retry.Policy
}

// CheckoutServiceParams holds dependencies for CheckoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	AddressRepo repository.AddressRepository
	OrderRepo   repository.OrderRepository
	IntentRepo  repository.IntentRepository
	Gateway     service.PaymentGateway
	Verifier    service.SignatureVerifier
	Publisher   service.EventPublisher
	Config      *config.Config
	Logger      *slog.Logger
}

// NewCheckoutService creates a new checkout orchestrator instance
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	return &checkoutService{
		addressRepo: params.AddressRepo,
		orderRepo:   params.OrderRepo,
		intentRepo:  params.IntentRepo,
		gateway:     params.Gateway,
		verifier:    params.Verifier,
		publisher:   params.Publisher,
		shipping: entity.ShippingPolicy{
			FreeShippingThreshold: params.Config.Checkout.FreeShippingThreshold,
			FlatFee:               params.Config.Checkout.FlatShippingFee,
		},
		currency:       params.Config.Gateway.Currency,
		storeTimeout:   params.Config.Storage.Timeout,
		logger:         params.Logger,
		now:            time.Now,
		newOrderID:     entity.NewOrderID,
		conflictPolicy: orderConflictPolicy(),
	}
}

func orderConflictPolicy() retry.Policy {
	return retry.Policy{
		MaxAttempts: orderUpdateAttempts,
		Delay:       orderUpdateRetryDelay,
		Retryable: func(err error) bool {
			return errors.Is(err, repository.ErrOrderConflict)
		},
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *checkoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// PlaceOrder prices the cart and records a cash-on-delivery order, or creates a
// gateway intent and records a pending order bound to it.
func (srv *checkoutService) PlaceOrder(ctx context.Context, input *usecase.PlaceOrderInput) (*usecase.PlaceOrderResult, error) {
	order, err := srv.prepareOrder(ctx, input)
	if err != nil {
		return nil, err
	}

	result := &usecase.PlaceOrderResult{Order: order}
	switch order.PaymentMethod {
	case entity.PaymentMethodCOD:
		order.Status = entity.OrderStatusConfirmed
		order.PaymentStatus = entity.PaymentStatusPending
	case entity.PaymentMethodGateway:
		intent, err := srv.gateway.CreateOrder(ctx, order.Total, order.Currency, order.OrderID)
		if err != nil {
			srv.log(ctx).Warn("Gateway intent creation failed",
				slog.String("order_id", order.OrderID),
				slog.Any("error", err),
			)

			return nil, err
		}
		order.Status = entity.OrderStatusPending
		order.PaymentStatus = entity.PaymentStatusPending
		order.GatewayOrderID = intent.GatewayOrderID
		result.Intent = intent
	}

	// The order is committed once this write succeeds, so it must not be cut short by the caller leaving.
	storeCtx, cancel := detachedContext(ctx, srv.storeTimeout)
	defer cancel()

	if err := srv.orderRepo.Put(storeCtx, order); err != nil {
		if order.GatewayOrderID != "" {
			srv.log(ctx).Error("Gateway intent created but order was not recorded",
				slog.String("order_id", order.OrderID),
				slog.String("gateway_order_id", order.GatewayOrderID),
				slog.String("user_id", order.UserID),
				slog.Int64("total", order.Total),
				slog.Any("error", err),
			)

			return nil, domainerrors.ErrOrderNotRecorded.WithDetails("gateway order " + order.GatewayOrderID)
		}

		return nil, domainerrors.NewStoreUnavailableError(err, "failed to record order")
	}

	srv.log(ctx).Info("Order placed",
		slog.String("order_id", order.OrderID),
		slog.String("user_id", order.UserID),
		slog.String("payment_method", string(order.PaymentMethod)),
		slog.Int64("total", order.Total),
	)
	srv.publish(ctx, service.OrderEventPlaced, order)

	return result, nil
}

// RecordVerifiedGatewayOrder records an order whose payment the client completed
// with the gateway before calling back. The signature is checked before any write.
func (srv *checkoutService) RecordVerifiedGatewayOrder(ctx context.Context, input *usecase.RecordGatewayOrderInput) (*entity.Order, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("order is required")
	}
	if strings.TrimSpace(input.GatewayOrderID) == "" || strings.TrimSpace(input.GatewayPaymentID) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("gatewayOrderId and paymentId are required")
	}

	verification := srv.verifier.Verify(input.GatewayOrderID, input.GatewayPaymentID, input.Signature)
	if !verification.Valid {
		srv.log(ctx).Warn("Rejected relayed gateway order with invalid signature",
			slog.String("gateway_order_id", input.GatewayOrderID),
			slog.String("user_id", input.UserID),
		)

		return nil, domainerrors.ErrSignatureMismatch.WithDetails("gateway order " + input.GatewayOrderID)
	}

	existing, err := srv.orderRepo.FindByGatewayOrderID(ctx, input.GatewayOrderID)
	switch {
	case err == nil:
		if existing.UserID != input.UserID {
			return nil, domainerrors.ErrPaymentConflict.WithDetails("gateway order belongs to another user")
		}

		return srv.settle(ctx, existing, input.GatewayPaymentID)
	case !errors.Is(err, repository.ErrOrderNotFound):
		return nil, domainerrors.NewStoreUnavailableError(err, "failed to look up gateway order")
	}

	placeInput := input.PlaceOrderInput
	placeInput.PaymentMethod = entity.PaymentMethodGateway
	order, err := srv.prepareOrder(ctx, &placeInput)
	if err != nil {
		return nil, err
	}
	if err := srv.checkRelayedAmount(ctx, input.GatewayOrderID, order); err != nil {
		return nil, err
	}
	order.Status = entity.OrderStatusConfirmed
	order.PaymentStatus = entity.PaymentStatusCompleted
	order.GatewayOrderID = input.GatewayOrderID
	order.GatewayPaymentID = input.GatewayPaymentID

	storeCtx, cancel := detachedContext(ctx, srv.storeTimeout)
	defer cancel()

	if err := srv.orderRepo.Put(storeCtx, order); err != nil {
		if errors.Is(err, repository.ErrDuplicateGatewayOrder) {
			// A concurrent relay of the same payment won the race.
			winner, findErr := srv.orderRepo.FindByGatewayOrderID(storeCtx, input.GatewayOrderID)
			if findErr != nil {
				return nil, domainerrors.NewStoreUnavailableError(findErr, "failed to look up gateway order")
			}

			return srv.settle(ctx, winner, input.GatewayPaymentID)
		}
		srv.log(ctx).Error("Verified payment but order was not recorded",
			slog.String("order_id", order.OrderID),
			slog.String("gateway_order_id", order.GatewayOrderID),
			slog.String("gateway_payment_id", order.GatewayPaymentID),
			slog.String("user_id", order.UserID),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrOrderNotRecorded.WithDetails("gateway order " + order.GatewayOrderID)
	}

	srv.log(ctx).Info("Relayed gateway order recorded",
		slog.String("order_id", order.OrderID),
		slog.String("gateway_order_id", order.GatewayOrderID),
	)
	srv.publish(ctx, service.OrderEventPlaced, order)
	srv.publish(ctx, service.OrderEventConfirmed, order)

	return order, nil
}

// checkRelayedAmount accepts a relayed payment only for the amount and currency
// its gateway order was created with.
func (srv *checkoutService) checkRelayedAmount(ctx context.Context, gatewayOrderID string, order *entity.Order) error {
	intent, err := srv.intentRepo.FindIntent(ctx, gatewayOrderID)
	switch {
	case errors.Is(err, repository.ErrIntentNotFound):
		srv.log(ctx).Warn("Rejected relayed payment for an unknown gateway order",
			slog.String("gateway_order_id", gatewayOrderID),
			slog.String("user_id", order.UserID),
		)

		return domainerrors.ErrPaymentConflict.WithDetails("gateway order " + gatewayOrderID + " was not created by this store")
	case err != nil:
		return domainerrors.NewStoreUnavailableError(err, "failed to look up gateway intent")
	}

	if !intent.Covers(order.Total, order.Currency) {
		srv.log(ctx).Warn("Rejected relayed payment with a different amount",
			slog.String("gateway_order_id", gatewayOrderID),
			slog.String("user_id", order.UserID),
			slog.Int64("paid", intent.AmountMinorUnits),
			slog.String("paid_currency", intent.Currency),
			slog.Int64("total", order.Total),
		)

		return domainerrors.ErrPaymentConflict.WithDetails("paid amount does not match the order total")
	}

	return nil
}

// FinalizeGatewayPayment confirms the pending order bound to gatewayOrderID.
// Repeating the call with the same payment returns the settled order unchanged.
func (srv *checkoutService) FinalizeGatewayPayment(ctx context.Context, gatewayOrderID, gatewayPaymentID, signature string) (*entity.Order, error) {
	if strings.TrimSpace(gatewayOrderID) == "" || strings.TrimSpace(gatewayPaymentID) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("orderId and paymentId are required")
	}

	order, err := srv.orderRepo.FindByGatewayOrderID(ctx, gatewayOrderID)
	if err != nil {
		return nil, srv.lookupError(err)
	}

	verification := srv.verifier.Verify(gatewayOrderID, gatewayPaymentID, signature)
	if !verification.Valid {
		srv.log(ctx).Warn("Payment signature mismatch",
			slog.String("order_id", order.OrderID),
			slog.String("gateway_order_id", gatewayOrderID),
		)

		return nil, domainerrors.ErrSignatureMismatch.WithDetails("gateway order " + gatewayOrderID)
	}

	return srv.settle(ctx, order, gatewayPaymentID)
}

// CreateGatewayOrder creates a bare gateway intent for clients that drive the payment form themselves.
func (srv *checkoutService) CreateGatewayOrder(ctx context.Context, amountMinorUnits int64, currency string) (*entity.GatewayIntent, error) {
	if amountMinorUnits <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("amount must be a positive number of minor units")
	}
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		currency = srv.currency
	}

	receiptID := "receipt_" + srv.newOrderID(srv.now())
	intent, err := srv.gateway.CreateOrder(ctx, amountMinorUnits, currency, receiptID)
	if err != nil {
		return nil, err
	}

	// A relayed payment for this gateway order is later checked against what was asked for here.
	storeCtx, cancel := detachedContext(ctx, srv.storeTimeout)
	defer cancel()

	if err := srv.intentRepo.SaveIntent(storeCtx, &entity.GatewayIntent{
		GatewayOrderID:   intent.GatewayOrderID,
		AmountMinorUnits: amountMinorUnits,
		Currency:         currency,
		ReceiptID:        receiptID,
	}); err != nil {
		srv.log(ctx).Error("Gateway order created but not recorded",
			slog.String("gateway_order_id", intent.GatewayOrderID),
			slog.Int64("amount", amountMinorUnits),
			slog.Any("error", err),
		)

		return nil, domainerrors.NewStoreUnavailableError(err, "failed to record gateway order "+intent.GatewayOrderID)
	}

	srv.log(ctx).Info("Gateway order created",
		slog.String("gateway_order_id", intent.GatewayOrderID),
		slog.Int64("amount", amountMinorUnits),
		slog.String("currency", currency),
	)

	return intent, nil
}

// VerifyPayment reports whether the signature is valid and, when a pending local
// order is bound to the gateway order, settles it. An order that can no longer be
// settled, such as one cancelled meanwhile, is logged and the verification still returned.
func (srv *checkoutService) VerifyPayment(ctx context.Context, gatewayOrderID, gatewayPaymentID, signature string) (*entity.PaymentVerification, error) {
	if strings.TrimSpace(gatewayOrderID) == "" || strings.TrimSpace(gatewayPaymentID) == "" || strings.TrimSpace(signature) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("orderId, paymentId and signature are required")
	}

	verification := srv.verifier.Verify(gatewayOrderID, gatewayPaymentID, signature)
	if !verification.Valid {
		return &verification, nil
	}

	order, err := srv.orderRepo.FindByGatewayOrderID(ctx, gatewayOrderID)
	switch {
	case errors.Is(err, repository.ErrOrderNotFound):
		// The client records the order itself afterwards.
		return &verification, nil
	case err != nil:
		return nil, domainerrors.NewStoreUnavailableError(err, "failed to look up gateway order")
	}

	if _, err := srv.settle(ctx, order, gatewayPaymentID); err != nil {
		var storeErr *domainerrors.StoreUnavailableError
		if errors.As(err, &storeErr) {
			return nil, err
		}
		// The payment is genuine even though the order can no longer take it.
		srv.log(ctx).Error("Verified payment could not settle its order",
			slog.String("order_id", order.OrderID),
			slog.String("gateway_order_id", gatewayOrderID),
			slog.String("gateway_payment_id", gatewayPaymentID),
			slog.String("status", string(order.Status)),
			slog.Any("error", err),
		)
	}

	return &verification, nil
}

// settle applies the payment and writes it conditionally, reloading on a concurrent change.
func (srv *checkoutService) settle(ctx context.Context, order *entity.Order, gatewayPaymentID string) (*entity.Order, error) {
	current := order
	var changed bool

	storeCtx, cancel := detachedContext(ctx, srv.storeTimeout)
	defer cancel()

	err := srv.conflictPolicy.Do(storeCtx, func(ctx context.Context, attempt int) error {
		if attempt > 1 {
			reloaded, err := srv.orderRepo.FindByID(ctx, order.OrderID)
			if err != nil {
				return err
			}
			current = reloaded
		}

		expect := current.State()
		next := current.Clone()
		var err error
		changed, err = next.ApplyPayment(gatewayPaymentID, srv.now())
		if err != nil || !changed {
			return err
		}
		if err := srv.orderRepo.Update(ctx, next, expect); err != nil {
			return err
		}
		current = next

		return nil
	})
	if err != nil {
		return nil, srv.writeError(ctx, order.OrderID, err)
	}

	if changed {
		srv.log(ctx).Info("Gateway payment settled",
			slog.String("order_id", current.OrderID),
			slog.String("gateway_order_id", current.GatewayOrderID),
			slog.String("gateway_payment_id", gatewayPaymentID),
		)
		srv.publish(ctx, service.OrderEventConfirmed, current)
	}

	return current, nil
}

// prepareOrder validates the request and builds an unsaved order with server-side totals.
func (srv *checkoutService) prepareOrder(ctx context.Context, input *usecase.PlaceOrderInput) (*entity.Order, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("order is required")
	}
	if err := requireUserID(input.UserID); err != nil {
		return nil, err
	}

	method := input.PaymentMethod
	if !method.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("paymentMethod must be cod or gateway")
	}

	cart, err := entity.NewCartSnapshot(input.Items)
	if err != nil {
		return nil, toAppError(err)
	}
	totals := srv.shipping.Quote(cart)
	if expected := input.ExpectedTotals; expected != nil && *expected != totals {
		return nil, domainerrors.ErrValidationFailed.WithDetails(
			"totals do not match the cart, please refresh your cart",
		)
	}

	address, err := srv.resolveAddress(ctx, input)
	if err != nil {
		return nil, err
	}

	now := srv.now()

	return &entity.Order{
		OrderID:         srv.newOrderID(now),
		UserID:          input.UserID,
		Items:           cart.Items(),
		DeliveryAddress: address,
		PaymentMethod:   method,
		Notes:           strings.TrimSpace(input.Notes),
		Currency:        srv.currency,
		Subtotal:        totals.Subtotal,
		ShippingFee:     totals.ShippingFee,
		Total:           totals.Total,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

// resolveAddress copies the delivery address by value: an explicit address wins,
// then an address id from the book, then the book's default.
func (srv *checkoutService) resolveAddress(ctx context.Context, input *usecase.PlaceOrderInput) (entity.DeliveryAddress, error) {
	var address entity.DeliveryAddress

	switch {
	case input.Address != nil:
		address = *input.Address
		if address.AddressType == "" {
			address.AddressType = entity.AddressTypeHome
		}
	default:
		book, err := srv.addressRepo.LoadBook(ctx, input.UserID)
		if err != nil {
			return address, domainerrors.NewStoreUnavailableError(err, "failed to load address book")
		}

		var stored *entity.Address
		var ok bool
		if input.AddressID != "" {
			stored, ok = book.Find(input.AddressID)
		} else {
			stored, ok = book.Default()
		}
		if !ok {
			return address, domainerrors.ErrAddressNotFound.WithDetails("no delivery address for user " + input.UserID)
		}
		address = entity.NewDeliveryAddress(stored)
	}

	if missing := address.MissingFields(); len(missing) > 0 {
		return address, missingFieldsError(missing)
	}

	return address, nil
}

func (srv *checkoutService) lookupError(err error) error {
	if errors.Is(err, repository.ErrOrderNotFound) {
		return toAppError(err)
	}

	return domainerrors.NewStoreUnavailableError(err, "failed to look up order")
}

func (srv *checkoutService) writeError(ctx context.Context, orderID string, err error) error {
	if isOrderStateError(err) {
		return toAppError(err)
	}
	srv.log(ctx).Error("Order update failed", slog.String("order_id", orderID), slog.Any("error", err))

	return domainerrors.NewStoreUnavailableError(err, "failed to update order "+orderID)
}

func (srv *checkoutService) publish(ctx context.Context, eventType string, order *entity.Order) {
	publishOrderEvent(ctx, srv.publisher, srv.log(ctx), eventType, order, srv.now())
}
