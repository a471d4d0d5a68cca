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
	defaultNotificationsTableName = "notifications"
	notificationsUserIDIndex      = "user_id-index"
)

var ErrNotificationNotOwned = errors.New("notification does not belong to user")

type notificationItem struct {
	ID          string `dynamodbav:"id"`
	UserID      string `dynamodbav:"user_id"`
	Type        string `dynamodbav:"type"`
	Title       string `dynamodbav:"title"`
	Message     string `dynamodbav:"message"`
	ActionURL   string `dynamodbav:"action_url,omitempty"`
	ActionLabel string `dynamodbav:"action_label,omitempty"`
	IsRead      bool   `dynamodbav:"is_read"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// NotificationDynamoRepository persists Notification entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)
//
// The Type attribute goes through ParseNotificationType on the way out, so an
// unknown value stored by an older writer degrades to "system".

type NotificationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.INotificationRepository = (*NotificationDynamoRepository)(nil)

func NewNotificationDynamoRepository(ddb *dynamodb.Client) *NotificationDynamoRepository {
	return &NotificationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("NOTIFICATIONS_TABLE", defaultNotificationsTableName),
	}
}

func (r *NotificationDynamoRepository) Create(ctx context.Context, n entities.Notification) (entities.Notification, error) {
	av, err := attributevalue.MarshalMap(toNotificationItem(n))
	if err != nil {
		return entities.Notification{}, err
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
		return entities.Notification{}, err
	}
	return n, nil
}

func (r *NotificationDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Notification, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(notificationsUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Notification, 0, len(out.Items))
	for _, raw := range out.Items {
		var it notificationItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromNotificationItem(it))
	}
	return items, nil
}

func (r *NotificationDynamoRepository) MarkRead(ctx context.Context, id, userID string) (entities.Notification, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #user_id = :uid"),
		UpdateExpression:    aws.String("SET #is_read = :read"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":read": &types.AttributeValueMemberBOOL{Value: true},
			":uid":  &types.AttributeValueMemberS{Value: userID},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#user_id": "user_id",
			"#is_read": "is_read",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Notification{}, nil
		}
		return entities.Notification{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Notification{}, nil
	}

	var it notificationItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Notification{}, err
	}
	return fromNotificationItem(it), nil
}

func (r *NotificationDynamoRepository) Delete(ctx context.Context, id, userID string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_not_exists(#id) OR #user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#user_id": "user_id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return ErrNotificationNotOwned
		}
		return err
	}
	return nil
}

func toNotificationItem(n entities.Notification) notificationItem {
	return notificationItem{
		ID:          n.ID,
		UserID:      n.UserID,
		Type:        string(n.Type),
		Title:       n.Title,
		Message:     n.Message,
		ActionURL:   n.ActionURL,
		ActionLabel: n.ActionLabel,
		IsRead:      n.IsRead,
		CreatedAt:   formatTime(n.CreatedAt),
	}
}

func fromNotificationItem(it notificationItem) entities.Notification {
	return entities.Notification{
		ID:          it.ID,
		UserID:      it.UserID,
		Type:        entities.ParseNotificationType(it.Type),
		Title:       it.Title,
		Message:     it.Message,
		ActionURL:   it.ActionURL,
		ActionLabel: it.ActionLabel,
		IsRead:      it.IsRead,
		CreatedAt:   parseTime(it.CreatedAt),
	}
}
