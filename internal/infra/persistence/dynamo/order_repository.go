package dynamo

import (
	"context"
	"time"

	"petverse/internal/domain/entity"
	domainerrors "petverse/internal/domain/errors"
	"petverse/internal/domain/repository"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/pkg/errors"
)

// Gateway order ids are claimed by guard items in the order table, keyed
// "GATEWAY#<gatewayOrderId>" and pointing at the owning order.
const gatewayKeyPrefix = "GATEWAY#"

const reasonConditionalCheckFailed = "ConditionalCheckFailed"

type orderItem struct {
	OrderID          string              `dynamodbav:"orderId"`
	UserID           string              `dynamodbav:"userId"`
	Items            []lineItem          `dynamodbav:"items"`
	DeliveryAddress  deliveryAddressItem `dynamodbav:"deliveryAddress"`
	PaymentMethod    string              `dynamodbav:"paymentMethod"`
	Notes            string              `dynamodbav:"orderNotes,omitempty"`
	Currency         string              `dynamodbav:"currency"`
	Subtotal         int64               `dynamodbav:"subtotal"`
	ShippingFee      int64               `dynamodbav:"shipping"`
	Total            int64               `dynamodbav:"total"`
	Status           string              `dynamodbav:"status"`
	PaymentStatus    string              `dynamodbav:"paymentStatus"`
	GatewayOrderID   string              `dynamodbav:"gatewayOrderId,omitempty"`
	GatewayPaymentID string              `dynamodbav:"paymentId,omitempty"`
	CreatedAt        int64               `dynamodbav:"createdAt"` // unix nanoseconds, sort key of the user index
	UpdatedAt        int64               `dynamodbav:"updatedAt"`
}

type lineItem struct {
	ProductID string `dynamodbav:"productId"`
	Name      string `dynamodbav:"name"`
	Price     int64  `dynamodbav:"price"`
	Quantity  int64  `dynamodbav:"quantity"`
}

type deliveryAddressItem struct {
	Name         string `dynamodbav:"name"`
	Phone        string `dynamodbav:"phone"`
	Email        string `dynamodbav:"email"`
	AddressLine1 string `dynamodbav:"addressLine1"`
	AddressLine2 string `dynamodbav:"addressLine2,omitempty"`
	City         string `dynamodbav:"city"`
	State        string `dynamodbav:"state"`
	PostalCode   string `dynamodbav:"pincode"`
	AddressType  string `dynamodbav:"addressType,omitempty"`
}

type gatewayGuardItem struct {
	OrderID      string `dynamodbav:"orderId"`
	OwnerOrderID string `dynamodbav:"ownerOrderId"`
}

type orderRepository struct {
	client API
	tables Tables
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(client API, tables Tables) repository.OrderRepository {
	return &orderRepository{client: client, tables: tables}
}

// Put writes the order. Gateway orders also claim their gateway id in the same
// transaction, so one gateway order can never be bound to two local orders.
func (repo *orderRepository) Put(ctx context.Context, order *entity.Order) error {
	av, err := attributevalue.MarshalMap(fromOrderDomain(order))
	if err != nil {
		return errors.Wrap(err, "failed to marshal order")
	}

	if order.GatewayOrderID == "" {
		if _, err := repo.client.PutItem(ctx, &dynamodb.PutItemInput{
			TableName: aws.String(repo.tables.Orders),
			Item:      av,
		}); err != nil {
			return domainerrors.NewStoreUnavailableError(err, "failed to put order")
		}

		return nil
	}

	guard, err := attributevalue.MarshalMap(gatewayGuardItem{
		OrderID:      gatewayKeyPrefix + order.GatewayOrderID,
		OwnerOrderID: order.OrderID,
	})
	if err != nil {
		return errors.Wrap(err, "failed to marshal gateway guard")
	}

	_, err = repo.client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName: aws.String(repo.tables.Orders),
				Item:      av,
			}},
			{Put: &types.Put{
				TableName:           aws.String(repo.tables.Orders),
				Item:                guard,
				ConditionExpression: aws.String("attribute_not_exists(orderId) OR ownerOrderId = :owner"),
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":owner": &types.AttributeValueMemberS{Value: order.OrderID},
				},
			}},
		},
	})
	if err != nil {
		var canceled *types.TransactionCanceledException
		if errors.As(err, &canceled) && len(canceled.CancellationReasons) > 1 &&
			aws.ToString(canceled.CancellationReasons[1].Code) == reasonConditionalCheckFailed {
			return errors.Wrapf(repository.ErrDuplicateGatewayOrder, "gateway order %s", order.GatewayOrderID)
		}

		return domainerrors.NewStoreUnavailableError(err, "failed to put order")
	}

	return nil
}

// FindByID retrieves an order by its id.
func (repo *orderRepository) FindByID(ctx context.Context, orderID string) (*entity.Order, error) {
	out, err := repo.getItem(ctx, orderID)
	if err != nil {
		return nil, err
	}

	var item orderItem
	if err := attributevalue.UnmarshalMap(out, &item); err != nil {
		return nil, domainerrors.NewStoreUnavailableError(err, "failed to decode order")
	}
	if item.UserID == "" {
		return nil, errors.Wrapf(repository.ErrOrderNotFound, "order %s", orderID)
	}

	return toOrderDomain(&item), nil
}

// FindByGatewayOrderID follows the gateway guard item to the owning order.
func (repo *orderRepository) FindByGatewayOrderID(ctx context.Context, gatewayOrderID string) (*entity.Order, error) {
	out, err := repo.getItem(ctx, gatewayKeyPrefix+gatewayOrderID)
	if err != nil {
		return nil, err
	}

	var guard gatewayGuardItem
	if err := attributevalue.UnmarshalMap(out, &guard); err != nil {
		return nil, domainerrors.NewStoreUnavailableError(err, "failed to decode gateway guard")
	}

	return repo.FindByID(ctx, guard.OwnerOrderID)
}

// ListByUser queries the user index, newest first.
func (repo *orderRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Order, error) {
	paginator := dynamodb.NewQueryPaginator(repo.client, &dynamodb.QueryInput{
		TableName:              aws.String(repo.tables.Orders),
		IndexName:              aws.String(repo.tables.UserIndex),
		KeyConditionExpression: aws.String("userId = :userId"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":userId": &types.AttributeValueMemberS{Value: userID},
		},
		ScanIndexForward: aws.Bool(false),
	})

	orders := make([]*entity.Order, 0)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, domainerrors.NewStoreUnavailableError(err, "failed to query orders by user")
		}
		decoded, err := decodeOrders(page.Items)
		if err != nil {
			return nil, err
		}
		orders = append(orders, decoded...)
	}
	entity.SortOrdersNewestFirst(orders)

	return orders, nil
}

// ListAll scans the order table, skipping gateway guard items.
func (repo *orderRepository) ListAll(ctx context.Context) ([]*entity.Order, error) {
	paginator := dynamodb.NewScanPaginator(repo.client, &dynamodb.ScanInput{
		TableName:        aws.String(repo.tables.Orders),
		FilterExpression: aws.String("attribute_exists(userId)"),
	})

	orders := make([]*entity.Order, 0)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, domainerrors.NewStoreUnavailableError(err, "failed to scan orders")
		}
		decoded, err := decodeOrders(page.Items)
		if err != nil {
			return nil, err
		}
		orders = append(orders, decoded...)
	}
	entity.SortOrdersNewestFirst(orders)

	return orders, nil
}

// Update replaces the order under a condition on its stored status pair.
func (repo *orderRepository) Update(ctx context.Context, order *entity.Order, expect entity.OrderState) error {
	av, err := attributevalue.MarshalMap(fromOrderDomain(order))
	if err != nil {
		return errors.Wrap(err, "failed to marshal order")
	}

	_, err = repo.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(repo.tables.Orders),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(orderId) AND #status = :status AND paymentStatus = :paymentStatus"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":        &types.AttributeValueMemberS{Value: string(expect.Status)},
			":paymentStatus": &types.AttributeValueMemberS{Value: string(expect.PaymentStatus)},
		},
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err != nil {
		var conditionErr *types.ConditionalCheckFailedException
		if errors.As(err, &conditionErr) {
			if len(conditionErr.Item) == 0 {
				return errors.Wrapf(repository.ErrOrderNotFound, "order %s", order.OrderID)
			}

			return errors.Wrapf(repository.ErrOrderConflict, "order %s is no longer %s/%s", order.OrderID, expect.Status, expect.PaymentStatus)
		}

		return domainerrors.NewStoreUnavailableError(err, "failed to update order")
	}

	return nil
}

func (repo *orderRepository) getItem(ctx context.Context, key string) (map[string]types.AttributeValue, error) {
	out, err := repo.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(repo.tables.Orders),
		Key: map[string]types.AttributeValue{
			"orderId": &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, domainerrors.NewStoreUnavailableError(err, "failed to get order")
	}
	if len(out.Item) == 0 {
		return nil, errors.Wrapf(repository.ErrOrderNotFound, "key %s", key)
	}

	return out.Item, nil
}

func decodeOrders(items []map[string]types.AttributeValue) ([]*entity.Order, error) {
	var decoded []orderItem
	if err := attributevalue.UnmarshalListOfMaps(items, &decoded); err != nil {
		return nil, domainerrors.NewStoreUnavailableError(err, "failed to decode orders")
	}

	orders := make([]*entity.Order, 0, len(decoded))
	for i := range decoded {
		orders = append(orders, toOrderDomain(&decoded[i]))
	}

	return orders, nil
}

// --- Mapper Functions ---

func toOrderDomain(data *orderItem) *entity.Order {
	items := make([]entity.OrderItem, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, entity.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
	}
	addr := data.DeliveryAddress

	return &entity.Order{
		OrderID: data.OrderID,
		UserID:  data.UserID,
		Items:   items,
		DeliveryAddress: entity.DeliveryAddress{
			Name:         addr.Name,
			Phone:        addr.Phone,
			Email:        addr.Email,
			AddressLine1: addr.AddressLine1,
			AddressLine2: addr.AddressLine2,
			City:         addr.City,
			State:        addr.State,
			PostalCode:   addr.PostalCode,
			AddressType:  entity.AddressType(addr.AddressType),
		},
		PaymentMethod:    entity.PaymentMethod(data.PaymentMethod),
		Notes:            data.Notes,
		Currency:         data.Currency,
		Subtotal:         data.Subtotal,
		ShippingFee:      data.ShippingFee,
		Total:            data.Total,
		Status:           entity.OrderStatus(data.Status),
		PaymentStatus:    entity.PaymentStatus(data.PaymentStatus),
		GatewayOrderID:   data.GatewayOrderID,
		GatewayPaymentID: data.GatewayPaymentID,
		CreatedAt:        time.Unix(0, data.CreatedAt).UTC(),
		UpdatedAt:        time.Unix(0, data.UpdatedAt).UTC(),
	}
}

func fromOrderDomain(data *entity.Order) orderItem {
	items := make([]lineItem, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, lineItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
	}
	addr := data.DeliveryAddress

	return orderItem{
		OrderID: data.OrderID,
		UserID:  data.UserID,
		Items:   items,
		DeliveryAddress: deliveryAddressItem{
			Name:         addr.Name,
			Phone:        addr.Phone,
			Email:        addr.Email,
			AddressLine1: addr.AddressLine1,
			AddressLine2: addr.AddressLine2,
			City:         addr.City,
			State:        addr.State,
			PostalCode:   addr.PostalCode,
			AddressType:  string(addr.AddressType),
		},
		PaymentMethod:    string(data.PaymentMethod),
		Notes:            data.Notes,
		Currency:         data.Currency,
		Subtotal:         data.Subtotal,
		ShippingFee:      data.ShippingFee,
		Total:            data.Total,
		Status:           string(data.Status),
		PaymentStatus:    string(data.PaymentStatus),
		GatewayOrderID:   data.GatewayOrderID,
		GatewayPaymentID: data.GatewayPaymentID,
		CreatedAt:        data.CreatedAt.UnixNano(),
		UpdatedAt:        data.UpdatedAt.UnixNano(),
	}
}
