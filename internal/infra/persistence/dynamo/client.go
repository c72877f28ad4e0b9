// Package dynamo implements the order store and address books on Amazon DynamoDB.
package dynamo

import (
	"context"
	"log/slog"

	"petverse/config"
	"petverse/internal/domain/lifecycle"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// API is the part of the DynamoDB client the repositories call.
type API interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
}

// Tables names the tables and indexes the repositories use.
type Tables struct {
	Orders    string
	Addresses string
	UserIndex string
}

// TablesFromConfig reads the table names out of the storage configuration.
func TablesFromConfig(cfg config.DynamoDBConfig) Tables {
	return Tables{
		Orders:    cfg.OrderTable,
		Addresses: cfg.AddressTable,
		UserIndex: cfg.UserIndex,
	}
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewClient builds a DynamoDB client from the default AWS credential chain and
// checks on start that both tables exist.
func NewClient(params Params) (API, error) {
	cfg := params.Config.Storage.DynamoDB

	loadCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	var opts []func(*awsconfig.LoadOptions) error
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(loadCtx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load AWS configuration")
	}

	client := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			for _, table := range []string{cfg.OrderTable, cfg.AddressTable} {
				if _, err := client.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(table)}); err != nil {
					return errors.Wrapf(err, "failed to describe DynamoDB table %s", table)
				}
			}
			params.Logger.Info("DynamoDB tables ready",
				slog.String("orderTable", cfg.OrderTable),
				slog.String("addressTable", cfg.AddressTable),
				slog.String("region", awsCfg.Region),
			)

			return nil
		},
	})

	return client, nil
}
