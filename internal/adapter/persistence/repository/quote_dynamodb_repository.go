package repository

import (
	"context"
	"errors"
	"strconv"

	"ofair/internal/domain/entities"
	"ofair/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultQuotesTableName = "quotes"
	quotesRequestIDIndex   = "request_id-index"
)

type quoteItem struct {
	ID               string   `dynamodbav:"id"`
	RequestID        string   `dynamodbav:"request_id"`
	ProfessionalID   string   `dynamodbav:"professional_id"`
	ProfessionalName string   `dynamodbav:"professional_name"`
	Phone            string   `dynamodbav:"phone,omitempty"`
	Profession       string   `dynamodbav:"profession,omitempty"`
	Price            string   `dynamodbav:"price"`
	Description      string   `dynamodbav:"description"`
	EstimatedTime    string   `dynamodbav:"estimated_time,omitempty"`
	MediaKeys        []string `dynamodbav:"media_keys,omitempty"`
	Status           string   `dynamodbav:"status"`
	CreatedAt        string   `dynamodbav:"created_at"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: request_id-index (PK: request_id)
//
// Quote rows are written by the professionals platform; this service only
// reads them and flips their status.

type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) ListByRequestID(ctx context.Context, requestID string) ([]entities.Quote, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quotesRequestIDIndex),
		KeyConditionExpression: aws.String("request_id = :rid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid": &types.AttributeValueMemberS{Value: requestID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Quote, 0, len(out.Items))
	for _, raw := range out.Items {
		var it quoteItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromQuoteItem(it))
	}
	return items, nil
}

func (r *QuoteDynamoRepository) CountByRequestID(ctx context.Context, requestID string) (int, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quotesRequestIDIndex),
		KeyConditionExpression: aws.String("request_id = :rid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid": &types.AttributeValueMemberS{Value: requestID},
		},
		Select: types.SelectCount,
	})
	if err != nil {
		return 0, err
	}
	return int(out.Count), nil
}

func (r *QuoteDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#status": "status",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func fromQuoteItem(it quoteItem) entities.Quote {
	price, _ := strconv.ParseFloat(it.Price, 64)
	return entities.Quote{
		ID:               it.ID,
		RequestID:        it.RequestID,
		ProfessionalID:   it.ProfessionalID,
		ProfessionalName: it.ProfessionalName,
		Phone:            it.Phone,
		Profession:       it.Profession,
		Price:            price,
		Description:      it.Description,
		EstimatedTime:    it.EstimatedTime,
		MediaKeys:        it.MediaKeys,
		Status:           entities.QuoteStatus(it.Status),
		CreatedAt:        parseTime(it.CreatedAt),
	}
}
