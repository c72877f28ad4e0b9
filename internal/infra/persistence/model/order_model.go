package model

import "time"

// OrderItemModel is one line of the order's JSON items column.
type OrderItemModel struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int64  `json:"quantity"`
}

// DeliveryAddressModel is the JSON delivery address column.
type DeliveryAddressModel struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	City         string `json:"city"`
	State        string `json:"state"`
	PostalCode   string `json:"pincode"`
	AddressType  string `json:"addressType,omitempty"`
}

// OrderModel is the GORM-specific struct for the 'orders' table.
// GatewayOrderID is nullable so the unique index only covers gateway orders.
type OrderModel struct {
	OrderID          string               `gorm:"type:varchar(64);primaryKey"`
	UserID           string               `gorm:"type:varchar(128);not null;index:idx_orders_user_created,priority:1"`
	Items            []OrderItemModel     `gorm:"type:jsonb;serializer:json;not null"`
	DeliveryAddress  DeliveryAddressModel `gorm:"type:jsonb;serializer:json;not null"`
	PaymentMethod    string               `gorm:"type:varchar(16);not null"`
	Notes            string               `gorm:"type:text"`
	Currency         string               `gorm:"type:varchar(3);not null"`
	Subtotal         int64                `gorm:"not null"`
	ShippingFee      int64                `gorm:"not null"`
	Total            int64                `gorm:"not null"`
	Status           string               `gorm:"type:varchar(16);not null"`
	PaymentStatus    string               `gorm:"type:varchar(16);not null"`
	GatewayOrderID   *string              `gorm:"type:varchar(64);uniqueIndex"`
	GatewayPaymentID *string              `gorm:"type:varchar(64)"`
	CreatedAt        time.Time            `gorm:"autoCreateTime:false;index:idx_orders_user_created,priority:2,sort:desc"`
	UpdatedAt        time.Time            `gorm:"autoUpdateTime:false"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// All returns every model the service migrates.
func All() []any {
	return []any{&AddressBookModel{}, &AddressModel{}, &OrderModel{}, &GatewayIntentModel{}}
}
