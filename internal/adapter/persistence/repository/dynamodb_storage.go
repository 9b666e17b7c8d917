package repository

import (
	"context"

	"salesdesk/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultStorageTableName = "salesdesk_storage"

type storageItem struct {
	Key   string `dynamodbav:"key"`
	Value []byte `dynamodbav:"value"`
}

// DynamoStorage keeps each serialized collection as one DynamoDB item.
//
// Table requirements:
//   - PK: key (string)
type DynamoStorage struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IStorageAdapter = (*DynamoStorage)(nil)

func NewDynamoStorage(ddb *dynamodb.Client) *DynamoStorage {
	return &DynamoStorage{
		ddb:       ddb,
		tableName: getenvDefault("STORAGE_TABLE", defaultStorageTableName),
	}
}

func (r *DynamoStorage) Get(ctx context.Context, key string) ([]byte, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"key": &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	var it storageItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, err
	}
	return it.Value, nil
}

func (r *DynamoStorage) Set(ctx context.Context, key string, value []byte) error {
	av, err := attributevalue.MarshalMap(storageItem{Key: key, Value: value})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}
