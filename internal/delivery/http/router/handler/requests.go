package handler

import (
	"petverse/internal/domain/entity"
	"petverse/internal/usecase"
)

// OrderItemRequest is one cart line. Price is in minor units.
type OrderItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Name      string `json:"name"`
	Price     int64  `json:"price" validate:"gt=0,lte=100000000000"`
	Quantity  int64  `json:"quantity" validate:"gt=0,lte=10000"`
}

// AddressFields are the contact and location fields shared by address requests.
type AddressFields struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Email        string `json:"email" validate:"omitempty,email"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2"`
	City         string `json:"city"`
	State        string `json:"state"`
	PostalCode   string `json:"pincode"`
	AddressType  string `json:"addressType" validate:"omitempty,oneof=home work other"`
}

// CreateOrderRequest represents the request body for placing or recording an order
type CreateOrderRequest struct {
	UserID          string             `json:"userId" validate:"required"`
	Items           []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	DeliveryAddress *AddressFields     `json:"deliveryAddress"`
	AddressID       string             `json:"addressId"`
	PaymentMethod   string             `json:"paymentMethod" validate:"required"`
	OrderNotes      string             `json:"orderNotes"`

	// Totals the client displayed; recomputed and compared server-side
	Subtotal *int64 `json:"subtotal" validate:"omitempty,gte=0"`
	Shipping *int64 `json:"shipping" validate:"omitempty,gte=0"`
	Total    *int64 `json:"total" validate:"omitempty,gte=0"`

	// Never trusted; the server decides the payment status
	PaymentStatus string `json:"paymentStatus"`

	// Set when the client relays a payment it completed with the gateway
	GatewayOrderID string `json:"gatewayOrderId"`
	PaymentID      string `json:"paymentId"`
	Signature      string `json:"signature"`
}

// IsGatewayRelay reports whether the client is relaying a completed gateway payment.
func (r *CreateOrderRequest) IsGatewayRelay() bool {
	return r.GatewayOrderID != "" || r.PaymentID != "" || r.Signature != ""
}

// UpdateOrderStatusRequest represents the request body for an order status change
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// UpdatePaymentStatusRequest represents the request body for a payment status change
type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"paymentStatus" validate:"required"`
}

// CreateGatewayOrderRequest represents the request body for creating a gateway order
type CreateGatewayOrderRequest struct {
	Amount   int64  `json:"amount" validate:"gt=0"`
	Currency string `json:"currency" validate:"omitempty,len=3"`
}

// VerifyPaymentRequest represents the gateway callback relayed by the client
type VerifyPaymentRequest struct {
	PaymentID string `json:"paymentId" validate:"required"`
	OrderID   string `json:"orderId" validate:"required"`
	Signature string `json:"signature" validate:"required"`
}

// AddAddressRequest represents the request body for adding an address
type AddAddressRequest struct {
	UserID string `json:"userId" validate:"required"`
	AddressFields
	IsDefault bool `json:"isDefault"`
}

// UpdateAddressRequest carries only the fields to change
type UpdateAddressRequest struct {
	UserID       string  `json:"userId" validate:"required"`
	AddressID    string  `json:"addressId" validate:"required"`
	Name         *string `json:"name"`
	Phone        *string `json:"phone"`
	Email        *string `json:"email" validate:"omitempty,email"`
	AddressLine1 *string `json:"addressLine1"`
	AddressLine2 *string `json:"addressLine2"`
	City         *string `json:"city"`
	State        *string `json:"state"`
	PostalCode   *string `json:"pincode"`
	AddressType  *string `json:"addressType" validate:"omitempty,oneof=home work other"`
}

// AddressRefRequest identifies one address of a user
type AddressRefRequest struct {
	UserID    string `json:"userId" query:"userId" validate:"required"`
	AddressID string `json:"addressId" validate:"required"`
}

func (r *CreateOrderRequest) toPlaceOrderInput(method entity.PaymentMethod) usecase.PlaceOrderInput {
	items := make([]entity.OrderItem, len(r.Items))
	for i, item := range r.Items {
		items[i] = entity.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
		}
	}

	input := usecase.PlaceOrderInput{
		UserID:        r.UserID,
		Items:         items,
		AddressID:     r.AddressID,
		PaymentMethod: method,
		Notes:         r.OrderNotes,
	}
	if r.DeliveryAddress != nil {
		address := r.DeliveryAddress.toDeliveryAddress()
		input.Address = &address
	}
	if r.Subtotal != nil && r.Shipping != nil && r.Total != nil {
		input.ExpectedTotals = &entity.Totals{
			Subtotal:    *r.Subtotal,
			ShippingFee: *r.Shipping,
			Total:       *r.Total,
		}
	}

	return input
}

func (f AddressFields) toDeliveryAddress() entity.DeliveryAddress {
	return entity.DeliveryAddress{
		Name:         f.Name,
		Phone:        f.Phone,
		Email:        f.Email,
		AddressLine1: f.AddressLine1,
		AddressLine2: f.AddressLine2,
		City:         f.City,
		State:        f.State,
		PostalCode:   f.PostalCode,
		AddressType:  entity.ParseAddressType(f.AddressType),
	}
}

func (f AddressFields) toAddressInput() *usecase.AddressInput {
	return &usecase.AddressInput{
		Name:         f.Name,
		Phone:        f.Phone,
		Email:        f.Email,
		AddressLine1: f.AddressLine1,
		AddressLine2: f.AddressLine2,
		City:         f.City,
		State:        f.State,
		PostalCode:   f.PostalCode,
		AddressType:  entity.ParseAddressType(f.AddressType),
	}
}

func (r *UpdateAddressRequest) toPatch() *entity.AddressPatch {
	patch := &entity.AddressPatch{
		Name:         r.Name,
		Phone:        r.Phone,
		Email:        r.Email,
		AddressLine1: r.AddressLine1,
		AddressLine2: r.AddressLine2,
		City:         r.City,
		State:        r.State,
		PostalCode:   r.PostalCode,
	}
	if r.AddressType != nil {
		addressType := entity.ParseAddressType(*r.AddressType)
		patch.AddressType = &addressType
	}

	return patch
}
