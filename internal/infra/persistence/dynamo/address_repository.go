package dynamo

import (
	"context"
	"strconv"
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

// addressBookItem is one user's whole address book. Keeping the book in a single
// item makes every save one conditional PutItem.
type addressBookItem struct {
	UserID    string        `dynamodbav:"userId"`
	Version   int64         `dynamodbav:"version"`
	Addresses []addressItem `dynamodbav:"addresses"`
	UpdatedAt time.Time     `dynamodbav:"updatedAt"`
}

type addressItem struct {
	AddressID    string    `dynamodbav:"addressId"`
	Name         string    `dynamodbav:"name"`
	Phone        string    `dynamodbav:"phone"`
	Email        string    `dynamodbav:"email"`
	AddressLine1 string    `dynamodbav:"addressLine1"`
	AddressLine2 string    `dynamodbav:"addressLine2,omitempty"`
	City         string    `dynamodbav:"city"`
	State        string    `dynamodbav:"state"`
	PostalCode   string    `dynamodbav:"pincode"`
	AddressType  string    `dynamodbav:"addressType"`
	IsDefault    bool      `dynamodbav:"isDefault"`
	CreatedAt    time.Time `dynamodbav:"createdAt"`
	UpdatedAt    time.Time `dynamodbav:"updatedAt"`
}

type addressRepository struct {
	client API
	table  string
}

// NewAddressRepository is the constructor for addressRepository.
func NewAddressRepository(client API, tables Tables) repository.AddressRepository {
	return &addressRepository{client: client, table: tables.Addresses}
}

// LoadBook reads the book item with a strongly consistent read.
func (repo *addressRepository) LoadBook(ctx context.Context, userID string) (*entity.AddressBook, error) {
	out, err := repo.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(repo.table),
		Key: map[string]types.AttributeValue{
			"userId": &types.AttributeValueMemberS{Value: userID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, domainerrors.NewStoreUnavailableError(err, "failed to load address book")
	}
	if len(out.Item) == 0 {
		return entity.NewAddressBook(userID, 0, nil), nil
	}

	var item addressBookItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return nil, domainerrors.NewStoreUnavailableError(err, "failed to decode address book")
	}

	addresses := make([]*entity.Address, 0, len(item.Addresses))
	for i := range item.Addresses {
		addresses = append(addresses, toAddressDomain(userID, &item.Addresses[i]))
	}

	return entity.NewAddressBook(userID, item.Version, addresses), nil
}

// SaveBook replaces the book item if its stored version still equals book.Version.
func (repo *addressRepository) SaveBook(ctx context.Context, book *entity.AddressBook) error {
	if !book.HasChanges() {
		return nil
	}

	addresses := book.Addresses()
	item := addressBookItem{
		UserID:    book.UserID,
		Version:   book.Version + 1,
		Addresses: make([]addressItem, 0, len(addresses)),
		UpdatedAt: time.Now().UTC(),
	}
	for _, addr := range addresses {
		item.Addresses = append(item.Addresses, fromAddressDomain(addr))
	}

	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return errors.Wrap(err, "failed to marshal address book")
	}

	input := &dynamodb.PutItemInput{
		TableName: aws.String(repo.table),
		Item:      av,
	}
	if book.Version == 0 {
		input.ConditionExpression = aws.String("attribute_not_exists(userId)")
	} else {
		input.ConditionExpression = aws.String("version = :expected")
		input.ExpressionAttributeValues = map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(book.Version, 10)},
		}
	}

	if _, err := repo.client.PutItem(ctx, input); err != nil {
		var conditionErr *types.ConditionalCheckFailedException
		if errors.As(err, &conditionErr) {
			return errors.Wrapf(repository.ErrVersionConflict, "address book of %s moved past version %d", book.UserID, book.Version)
		}

		return domainerrors.NewStoreUnavailableError(err, "failed to save address book")
	}
	book.Version = item.Version

	return nil
}

func toAddressDomain(userID string, data *addressItem) *entity.Address {
	return &entity.Address{
		UserID:       userID,
		AddressID:    data.AddressID,
		Name:         data.Name,
		Phone:        data.Phone,
		Email:        data.Email,
		AddressLine1: data.AddressLine1,
		AddressLine2: data.AddressLine2,
		City:         data.City,
		State:        data.State,
		PostalCode:   data.PostalCode,
		AddressType:  entity.AddressType(data.AddressType),
		IsDefault:    data.IsDefault,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromAddressDomain(data *entity.Address) addressItem {
	return addressItem{
		AddressID:    data.AddressID,
		Name:         data.Name,
		Phone:        data.Phone,
		Email:        data.Email,
		AddressLine1: data.AddressLine1,
		AddressLine2: data.AddressLine2,
		City:         data.City,
		State:        data.State,
		PostalCode:   data.PostalCode,
		AddressType:  string(data.AddressType),
		IsDefault:    data.IsDefault,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
