package postgres

import (
	"context"

	"petverse/internal/domain/entity"
	domainerrors "petverse/internal/domain/errors"
	"petverse/internal/domain/repository"
	"petverse/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const newestFirst = "created_at DESC, order_id DESC"

// orderRepository implements the domain.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Put upserts the order on its primary key.
func (repo *orderRepository) Put(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	err := repo.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "order_id"}},
		UpdateAll: true,
	}).Create(orderM).Error
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrapf(repository.ErrDuplicateGatewayOrder, "gateway order %s", order.GatewayOrderID)
		}

		return domainerrors.NewStoreUnavailableError(err, "failed to put order")
	}

	return nil
}

// FindByID retrieves an order by its id.
func (repo *orderRepository) FindByID(ctx context.Context, orderID string) (*entity.Order, error) {
	return repo.findOne(ctx, "order_id = ?", orderID)
}

// FindByGatewayOrderID retrieves the order bound to a gateway order id.
func (repo *orderRepository) FindByGatewayOrderID(ctx context.Context, gatewayOrderID string) (*entity.Order, error) {
	return repo.findOne(ctx, "gateway_order_id = ?", gatewayOrderID)
}

// ListByUser returns the user's orders, newest first.
func (repo *orderRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Order, error) {
	return repo.list(repo.db.WithContext(ctx).Where("user_id = ?", userID))
}

// ListAll returns every order, newest first.
func (repo *orderRepository) ListAll(ctx context.Context) ([]*entity.Order, error) {
	return repo.list(repo.db.WithContext(ctx))
}

// Update rewrites the order only while its status pair still equals expect.
func (repo *orderRepository) Update(ctx context.Context, order *entity.Order, expect entity.OrderState) error {
	orderM := fromOrderDomain(order)

	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("order_id = ? AND status = ? AND payment_status = ?", order.OrderID, string(expect.Status), string(expect.PaymentStatus)).
		Select("*").
		Omit("order_id", "created_at").
		Updates(orderM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return errors.Wrapf(repository.ErrDuplicateGatewayOrder, "gateway order %s", order.GatewayOrderID)
		}

		return domainerrors.NewStoreUnavailableError(result.Error, "failed to update order")
	}
	if result.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.OrderModel{}).
		Where("order_id = ?", order.OrderID).
		Count(&count).Error; err != nil {
		return domainerrors.NewStoreUnavailableError(err, "failed to check order")
	}
	if count == 0 {
		return errors.WithStack(repository.ErrOrderNotFound)
	}

	return errors.Wrapf(repository.ErrOrderConflict, "order %s is no longer %s/%s", order.OrderID, expect.Status, expect.PaymentStatus)
}

func (repo *orderRepository) findOne(ctx context.Context, query string, arg string) (*entity.Order, error) {
	var orderM model.OrderModel
	if err := repo.db.WithContext(ctx).Where(query, arg).Take(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.WithStack(repository.ErrOrderNotFound)
		}

		return nil, domainerrors.NewStoreUnavailableError(err, "failed to find order")
	}

	return toOrderDomain(&orderM), nil
}

func (repo *orderRepository) list(db *gorm.DB) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel
	if err := db.Order(newestFirst).Find(&orderModels).Error; err != nil {
		return nil, domainerrors.NewStoreUnavailableError(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// --- Mapper Functions ---

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	items := make([]entity.OrderItem, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, entity.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
	}

	return &entity.Order{
		OrderID: data.OrderID,
		UserID:  data.UserID,
		Items:   items,
		DeliveryAddress: entity.DeliveryAddress{
			Name:         data.DeliveryAddress.Name,
			Phone:        data.DeliveryAddress.Phone,
			Email:        data.DeliveryAddress.Email,
			AddressLine1: data.DeliveryAddress.AddressLine1,
			AddressLine2: data.DeliveryAddress.AddressLine2,
			City:         data.DeliveryAddress.City,
			State:        data.DeliveryAddress.State,
			PostalCode:   data.DeliveryAddress.PostalCode,
			AddressType:  entity.AddressType(data.DeliveryAddress.AddressType),
		},
		PaymentMethod:    entity.PaymentMethod(data.PaymentMethod),
		Notes:            data.Notes,
		Currency:         data.Currency,
		Subtotal:         data.Subtotal,
		ShippingFee:      data.ShippingFee,
		Total:            data.Total,
		Status:           entity.OrderStatus(data.Status),
		PaymentStatus:    entity.PaymentStatus(data.PaymentStatus),
		GatewayOrderID:   derefString(data.GatewayOrderID),
		GatewayPaymentID: derefString(data.GatewayPaymentID),
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	items := make([]model.OrderItemModel, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, model.OrderItemModel{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
	}

	return &model.OrderModel{
		OrderID: data.OrderID,
		UserID:  data.UserID,
		Items:   items,
		DeliveryAddress: model.DeliveryAddressModel{
			Name:         data.DeliveryAddress.Name,
			Phone:        data.DeliveryAddress.Phone,
			Email:        data.DeliveryAddress.Email,
			AddressLine1: data.DeliveryAddress.AddressLine1,
			AddressLine2: data.DeliveryAddress.AddressLine2,
			City:         data.DeliveryAddress.City,
			State:        data.DeliveryAddress.State,
			PostalCode:   data.DeliveryAddress.PostalCode,
			AddressType:  string(data.DeliveryAddress.AddressType),
		},
		PaymentMethod:    string(data.PaymentMethod),
		Notes:            data.Notes,
		Currency:         data.Currency,
		Subtotal:         data.Subtotal,
		ShippingFee:      data.ShippingFee,
		Total:            data.Total,
		Status:           string(data.Status),
		PaymentStatus:    string(data.PaymentStatus),
		GatewayOrderID:   optionalString(data.GatewayOrderID),
		GatewayPaymentID: optionalString(data.GatewayPaymentID),
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
