package entity

import (
	"slices"
	"strconv"
	"strings"
	"time"

	"petverse/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrEmptyCart is returned when a checkout is attempted with no items.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrInvalidCartItem is returned when a cart line has a non-positive price or
	// quantity, or when the cart is worth more than MaxOrderAmount.
	ErrInvalidCartItem = errors.New("invalid cart item")
	// ErrInvalidTransition is returned when a status change is not allowed.
	ErrInvalidTransition = errors.New("invalid order status transition")
	// ErrPaymentConflict is returned when an order was already settled by a different payment.
	ErrPaymentConflict = errors.New("order already settled by another payment")
)

// Cart limits. NewCartSnapshot keeps every line total and the subtotal within MaxOrderAmount.
const (
	MaxOrderAmount  int64 = 100_000_000_000
	MaxItemQuantity int64 = 10_000
)

// PaymentMethod is how the buyer pays for an order.
type PaymentMethod string

const (
	PaymentMethodCOD     PaymentMethod = "cod"
	PaymentMethodGateway PaymentMethod = "gateway"
)

// IsValid checks if the PaymentMethod is a known value.
func (m PaymentMethod) IsValid() bool {
	return m == PaymentMethodCOD || m == PaymentMethodGateway
}

// ParsePaymentMethod accepts the canonical names plus the aliases older clients send.
func ParsePaymentMethod(raw string) (PaymentMethod, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "cod", "cash-on-delivery", "cash_on_delivery":
		return PaymentMethodCOD, true
	case "gateway", "online", "razorpay":
		return PaymentMethodGateway, true
	default:
		return "", false
	}
}

// OrderStatus is the fulfilment state of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusCancelled OrderStatus = "cancelled"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
)

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:   {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:   {OrderStatusDelivered},
}

// IsValid checks if the OrderStatus is a known value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusCancelled, OrderStatusShipped, OrderStatusDelivered:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether an order may move from s to next.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// PaymentStatus tracks whether money has been collected.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
)

// IsValid checks if the PaymentStatus is a known value.
func (s PaymentStatus) IsValid() bool {
	return s == PaymentStatusPending || s == PaymentStatusCompleted
}

// OrderItem is one cart line frozen into an order. Price is in minor units.
type OrderItem struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int64  `json:"quantity"`
}

// LineTotal returns price times quantity.
func (i OrderItem) LineTotal() int64 {
	return i.Price * i.Quantity
}

// CartSnapshot is the immutable cart handed to checkout.
type CartSnapshot struct {
	items []OrderItem
}

// NewCartSnapshot copies and validates the given lines.
func NewCartSnapshot(items []OrderItem) (CartSnapshot, error) {
	if len(items) == 0 {
		return CartSnapshot{}, errors.WithStack(ErrEmptyCart)
	}
	copied := make([]OrderItem, len(items))
	var subtotal int64
	for i, item := range items {
		if strings.TrimSpace(item.ProductID) == "" {
			return CartSnapshot{}, errors.Wrapf(ErrInvalidCartItem, "item %d has no productId", i)
		}
		if item.Price <= 0 || item.Quantity <= 0 {
			return CartSnapshot{}, errors.Wrapf(ErrInvalidCartItem, "item %s must have a positive price and quantity", item.ProductID)
		}
		if item.Quantity > MaxItemQuantity {
			return CartSnapshot{}, errors.Wrapf(ErrInvalidCartItem, "item %s quantity exceeds %d", item.ProductID, MaxItemQuantity)
		}
		// The product is only computed once it is known to fit.
		if item.Price > MaxOrderAmount/item.Quantity || subtotal > MaxOrderAmount-item.Price*item.Quantity {
			return CartSnapshot{}, errors.Wrapf(ErrInvalidCartItem, "cart total exceeds %d", MaxOrderAmount)
		}
		subtotal += item.LineTotal()
		copied[i] = item
	}

	return CartSnapshot{items: copied}, nil
}

// Items returns a copy of the cart lines in their original order.
func (c CartSnapshot) Items() []OrderItem {
	out := make([]OrderItem, len(c.items))
	copy(out, c.items)

	return out
}

// Len returns the number of lines.
func (c CartSnapshot) Len() int {
	return len(c.items)
}

// Subtotal sums the line totals.
func (c CartSnapshot) Subtotal() int64 {
	var total int64
	for _, item := range c.items {
		total += item.LineTotal()
	}

	return total
}

// Totals is the money breakdown of an order, in minor units.
type Totals struct {
	Subtotal    int64
	ShippingFee int64
	Total       int64
}

// ShippingPolicy decides the shipping fee from the subtotal.
type ShippingPolicy struct {
	FreeShippingThreshold int64
	FlatFee               int64
}

// Quote computes the totals for a cart.
func (p ShippingPolicy) Quote(cart CartSnapshot) Totals {
	subtotal := cart.Subtotal()
	fee := p.FlatFee
	if subtotal >= p.FreeShippingThreshold {
		fee = 0
	}

	return Totals{
		Subtotal:    subtotal,
		ShippingFee: fee,
		Total:       subtotal + fee,
	}
}

// DeliveryAddress is the address copied into an order at placement time.
type DeliveryAddress struct {
	Name         string      `json:"name"`
	Phone        string      `json:"phone"`
	Email        string      `json:"email"`
	AddressLine1 string      `json:"addressLine1"`
	AddressLine2 string      `json:"addressLine2,omitempty"`
	City         string      `json:"city"`
	State        string      `json:"state"`
	PostalCode   string      `json:"pincode"`
	AddressType  AddressType `json:"addressType,omitempty"`
}

// NewDeliveryAddress copies the shipping fields out of a stored address.
func NewDeliveryAddress(a *Address) DeliveryAddress {
	return DeliveryAddress{
		Name:         a.Name,
		Phone:        a.Phone,
		Email:        a.Email,
		AddressLine1: a.AddressLine1,
		AddressLine2: a.AddressLine2,
		City:         a.City,
		State:        a.State,
		PostalCode:   a.PostalCode,
		AddressType:  a.AddressType,
	}
}

// MissingFields lists the required fields that are empty.
func (d DeliveryAddress) MissingFields() []string {
	addr := Address{
		Name:         d.Name,
		Phone:        d.Phone,
		Email:        d.Email,
		AddressLine1: d.AddressLine1,
		City:         d.City,
		State:        d.State,
		PostalCode:   d.PostalCode,
	}

	return addr.MissingFields()
}

// Order is a placed checkout. It is never deleted.
type Order struct {
	OrderID          string          `json:"orderId"`
	UserID           string          `json:"userId"`
	Items            []OrderItem     `json:"items"`
	DeliveryAddress  DeliveryAddress `json:"deliveryAddress"`
	PaymentMethod    PaymentMethod   `json:"paymentMethod"`
	Notes            string          `json:"orderNotes,omitempty"`
	Currency         string          `json:"currency"`
	Subtotal         int64           `json:"subtotal"`
	ShippingFee      int64           `json:"shipping"`
	Total            int64           `json:"total"`
	Status           OrderStatus     `json:"status"`
	PaymentStatus    PaymentStatus   `json:"paymentStatus"`
	GatewayOrderID   string          `json:"gatewayOrderId,omitempty"`
	GatewayPaymentID string          `json:"paymentId,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

// OrderState is the pair of fields a conditional order update is keyed on.
type OrderState struct {
	Status        OrderStatus
	PaymentStatus PaymentStatus
}

// State returns the current conditional-update key of the order.
func (o *Order) State() OrderState {
	return OrderState{Status: o.Status, PaymentStatus: o.PaymentStatus}
}

// Clone returns a deep copy of the order.
func (o *Order) Clone() *Order {
	if o == nil {
		return nil
	}
	cloned := *o
	cloned.Items = make([]OrderItem, len(o.Items))
	copy(cloned.Items, o.Items)

	return &cloned
}

// NewOrderID returns a time-prefixed id with a random suffix, e.g. ORD-LZ3K1Q2A-9F1C2B7E.
func NewOrderID(now time.Time) string {
	prefix := strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36))
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])

	return "ORD-" + prefix + "-" + suffix
}

// ApplyPayment settles a gateway order. Reapplying the same payment is a no-op
// and reports false; a different payment id on a settled order is a conflict.
func (o *Order) ApplyPayment(gatewayPaymentID string, now time.Time) (bool, error) {
	if o.PaymentStatus == PaymentStatusCompleted {
		if o.GatewayPaymentID == gatewayPaymentID {
			return false, nil
		}

		return false, errors.Wrapf(ErrPaymentConflict, "order %s settled by %s", o.OrderID, o.GatewayPaymentID)
	}
	if o.Status != OrderStatusPending && o.Status != OrderStatusConfirmed {
		return false, errors.Wrapf(ErrInvalidTransition, "order %s is %s", o.OrderID, o.Status)
	}

	o.Status = OrderStatusConfirmed
	o.PaymentStatus = PaymentStatusCompleted
	o.GatewayPaymentID = gatewayPaymentID
	o.UpdatedAt = now

	return true, nil
}

// TransitionTo moves the order to the next fulfilment status. Same-status updates report false.
func (o *Order) TransitionTo(next OrderStatus, now time.Time) (bool, error) {
	if !next.IsValid() {
		return false, errors.Wrapf(ErrInvalidTransition, "unknown status %q", next)
	}
	if o.Status == next {
		return false, nil
	}
	if !o.Status.CanTransitionTo(next) {
		return false, errors.Wrapf(ErrInvalidTransition, "%s -> %s", o.Status, next)
	}
	o.Status = next
	o.UpdatedAt = now

	return true, nil
}

// SetPaymentStatus records an administrative payment status change. Completed is final.
func (o *Order) SetPaymentStatus(next PaymentStatus, now time.Time) (bool, error) {
	if !next.IsValid() {
		return false, errors.Wrapf(ErrInvalidTransition, "unknown payment status %q", next)
	}
	if o.PaymentStatus == next {
		return false, nil
	}
	if o.PaymentStatus == PaymentStatusCompleted {
		return false, errors.Wrapf(ErrInvalidTransition, "payment of %s is already completed", o.OrderID)
	}
	o.PaymentStatus = next
	o.UpdatedAt = now

	return true, nil
}

// SortOrdersNewestFirst orders by CreatedAt descending, breaking ties by OrderID.
func SortOrdersNewestFirst(orders []*Order) {
	slices.SortFunc(orders, func(a, b *Order) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		if a.OrderID > b.OrderID {
			return -1
		}
		if a.OrderID < b.OrderID {
			return 1
		}

		return 0
	})
}
