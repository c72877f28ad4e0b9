package dynamo

import (
	"context"

	"petverse/internal/domain/entity"
	domainerrors "petverse/internal/domain/errors"
	"petverse/internal/domain/repository"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/pkg/errors"
)

// Intents share the order table under "INTENT#<gatewayOrderId>". They carry no
// userId, so the user index and the order scan never see them.
const intentKeyPrefix = "INTENT#"

type intentItem struct {
	OrderID          string `dynamodbav:"orderId"`
	GatewayOrderID   string `dynamodbav:"gatewayOrderId"`
	AmountMinorUnits int64  `dynamodbav:"amount"`
	Currency         string `dynamodbav:"currency"`
	ReceiptID        string `dynamodbav:"receipt,omitempty"`
}

type intentRepository struct {
	client API
	tables Tables
}

// NewIntentRepository is the constructor for intentRepository.
func NewIntentRepository(client API, tables Tables) repository.IntentRepository {
	return &intentRepository{client: client, tables: tables}
}

// SaveIntent writes the intent item, replacing an earlier one for the same gateway order.
func (repo *intentRepository) SaveIntent(ctx context.Context, intent *entity.GatewayIntent) error {
	av, err := attributevalue.MarshalMap(intentItem{
		OrderID:          intentKeyPrefix + intent.GatewayOrderID,
		GatewayOrderID:   intent.GatewayOrderID,
		AmountMinorUnits: intent.AmountMinorUnits,
		Currency:         intent.Currency,
		ReceiptID:        intent.ReceiptID,
	})
	if err != nil {
		return errors.Wrap(err, "failed to marshal gateway intent")
	}

	if _, err := repo.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(repo.tables.Orders),
		Item:      av,
	}); err != nil {
		return domainerrors.NewStoreUnavailableError(err, "failed to put gateway intent")
	}

	return nil
}

// FindIntent reads the intent item of a gateway order.
func (repo *intentRepository) FindIntent(ctx context.Context, gatewayOrderID string) (*entity.GatewayIntent, error) {
	out, err := repo.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(repo.tables.Orders),
		Key: map[string]types.AttributeValue{
			"orderId": &types.AttributeValueMemberS{Value: intentKeyPrefix + gatewayOrderID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, domainerrors.NewStoreUnavailableError(err, "failed to get gateway intent")
	}
	if len(out.Item) == 0 {
		return nil, errors.Wrapf(repository.ErrIntentNotFound, "gateway order %s", gatewayOrderID)
	}

	var item intentItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return nil, domainerrors.NewStoreUnavailableError(err, "failed to decode gateway intent")
	}

	return &entity.GatewayIntent{
		GatewayOrderID:   item.GatewayOrderID,
		AmountMinorUnits: item.AmountMinorUnits,
		Currency:         item.Currency,
		ReceiptID:        item.ReceiptID,
	}, nil
}
