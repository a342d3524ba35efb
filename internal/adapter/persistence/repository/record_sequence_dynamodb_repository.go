package repository

import (
	"context"
	"errors"
	"strconv"

	"phone_repair/internal/infrastructure/database"
	"phone_repair/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const recordNumberCounterName = "record_number"

// DynamoCounterAPI is the part of *dynamodb.Client the sequence needs.
type DynamoCounterAPI interface {
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
}

type sequenceItem struct {
	Name      string `dynamodbav:"name"`
	LastValue int64  `dynamodbav:"last_value"`
}

// RecordSequenceDynamoRepository reserves record numbers with a DynamoDB
// atomic counter.
//
// Table requirements:
//   - PK: name (string)
//
// The counter item is created on first use, starting from the same seed as
// the SQL sequence.
type RecordSequenceDynamoRepository struct {
	ddb       DynamoCounterAPI
	tableName string
}

var _ interfaces.IRecordSequence = (*RecordSequenceDynamoRepository)(nil)

func NewRecordSequenceDynamoRepository(ddb DynamoCounterAPI, tableName string) *RecordSequenceDynamoRepository {
	return &RecordSequenceDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *RecordSequenceDynamoRepository) Reserve(ctx context.Context) (int64, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"name": &types.AttributeValueMemberS{Value: recordNumberCounterName},
		},
		UpdateExpression: aws.String("SET #last_value = if_not_exists(#last_value, :seed) - :step"),
		ExpressionAttributeNames: map[string]string{
			"#last_value": "last_value",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":seed": &types.AttributeValueMemberN{Value: strconv.Itoa(database.RecordNumberSeed)},
			":step": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, err
	}
	if len(out.Attributes) == 0 {
		return 0, errors.New("record sequence: empty update response")
	}

	var it sequenceItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return 0, err
	}
	return it.LastValue, nil
}
