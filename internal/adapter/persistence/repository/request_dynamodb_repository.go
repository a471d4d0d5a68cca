package repository

import (
	"context"
	"errors"

	"ofair/internal/domain/entities"
	"ofair/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultRequestsTableName = "requests"
	requestsUserIDIndex      = "user_id-index"
)

type requestItem struct {
	ID          string `dynamodbav:"id"`
	UserID      string `dynamodbav:"user_id"`
	Title       string `dynamodbav:"title"`
	Description string `dynamodbav:"description"`
	Location    string `dynamodbav:"location"`
	Status      string `dynamodbav:"status"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// RequestDynamoRepository persists Request entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)

type RequestDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRequestRepository = (*RequestDynamoRepository)(nil)

func NewRequestDynamoRepository(ddb *dynamodb.Client) *RequestDynamoRepository {
	return &RequestDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("REQUESTS_TABLE", defaultRequestsTableName),
	}
}

func (r *RequestDynamoRepository) Create(ctx context.Context, req entities.Request) (entities.Request, error) {
	av, err := attributevalue.MarshalMap(toRequestItem(req))
	if err != nil {
		return entities.Request{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Request{}, err
	}
	return req, nil
}

func (r *RequestDynamoRepository) GetByID(ctx context.Context, id string) (entities.Request, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Request{}, err
	}
	if len(out.Item) == 0 {
		return entities.Request{}, nil
	}

	var it requestItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Request{}, err
	}
	return fromRequestItem(it), nil
}

func (r *RequestDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Request, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(requestsUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Request, 0, len(out.Items))
	for _, raw := range out.Items {
		var it requestItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromRequestItem(it))
	}
	return items, nil
}

func (r *RequestDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.RequestStatus) (entities.Request, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(timeNow())},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Request{}, nil
		}
		return entities.Request{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Request{}, nil
	}

	var it requestItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Request{}, err
	}
	return fromRequestItem(it), nil
}

func (r *RequestDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toRequestItem(r entities.Request) requestItem {
	return requestItem{
		ID:          r.ID,
		UserID:      r.UserID,
		Title:       r.Title,
		Description: r.Description,
		Location:    r.Location,
		Status:      string(r.Status),
		CreatedAt:   formatTime(r.CreatedAt),
		UpdatedAt:   formatTime(r.UpdatedAt),
	}
}

func fromRequestItem(it requestItem) entities.Request {
	return entities.Request{
		ID:          it.ID,
		UserID:      it.UserID,
		Title:       it.Title,
		Description: it.Description,
		Location:    it.Location,
		Status:      entities.RequestStatus(it.Status),
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}
