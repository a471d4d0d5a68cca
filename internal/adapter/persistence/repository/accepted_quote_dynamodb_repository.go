package repository

import (
	"context"
	"strconv"
	"time"

	"ofair/internal/domain/entities"
	"ofair/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultAcceptedQuotesTableName = "accepted_quotes"
	acceptedQuotesRequestIDIndex   = "request_id-index"
)

type acceptedQuoteItem struct {
	QuoteID          string `dynamodbav:"quote_id"`
	RequestID        string `dynamodbav:"request_id"`
	UserID           string `dynamodbav:"user_id"`
	ProfessionalID   string `dynamodbav:"professional_id"`
	ProfessionalName string `dynamodbav:"professional_name"`
	Price            string `dynamodbav:"price"`
	PaymentMethod    string `dynamodbav:"payment_method"`
	Status           string `dynamodbav:"status"`
	CreatedAt        string `dynamodbav:"created_at"`
	// CreatedAtUnix duplicates created_at as epoch nanoseconds so the
	// reminder cutoff compares numerically; RFC3339Nano trims trailing
	// fractional zeros, which breaks lexicographic ordering.
	CreatedAtUnix  int64  `dynamodbav:"created_at_unix"`
	UpdatedAt      string `dynamodbav:"updated_at"`
	ReminderSentAt string `dynamodbav:"reminder_sent_at,omitempty"`
}

// AcceptedQuoteDynamoRepository persists AcceptedQuoteRecord entities.
//
// Table requirements:
//   - PK: quote_id (string)
//   - GSI: request_id-index (PK: request_id)
//
// Save is a plain PutItem: re-accepting the same quote overwrites the record,
// which is the upsert-on-conflict semantics the acceptance protocol relies on.
// Delete is naturally idempotent.

type AcceptedQuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAcceptedQuoteRepository = (*AcceptedQuoteDynamoRepository)(nil)

func NewAcceptedQuoteDynamoRepository(ddb *dynamodb.Client) *AcceptedQuoteDynamoRepository {
	return &AcceptedQuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ACCEPTED_QUOTES_TABLE", defaultAcceptedQuotesTableName),
	}
}

func (r *AcceptedQuoteDynamoRepository) Save(ctx context.Context, rec entities.AcceptedQuoteRecord) (entities.AcceptedQuoteRecord, error) {
	av, err := attributevalue.MarshalMap(toAcceptedQuoteItem(rec))
	if err != nil {
		return entities.AcceptedQuoteRecord{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.AcceptedQuoteRecord{}, err
	}
	return rec, nil
}

func (r *AcceptedQuoteDynamoRepository) GetByQuoteID(ctx context.Context, quoteID string) (entities.AcceptedQuoteRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"quote_id": &types.AttributeValueMemberS{Value: quoteID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.AcceptedQuoteRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.AcceptedQuoteRecord{}, nil
	}

	var it acceptedQuoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.AcceptedQuoteRecord{}, err
	}
	return fromAcceptedQuoteItem(it), nil
}

func (r *AcceptedQuoteDynamoRepository) GetByRequestID(ctx context.Context, requestID string) (entities.AcceptedQuoteRecord, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(acceptedQuotesRequestIDIndex),
		KeyConditionExpression: aws.String("request_id = :rid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid": &types.AttributeValueMemberS{Value: requestID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.AcceptedQuoteRecord{}, err
	}
	if len(out.Items) == 0 {
		return entities.AcceptedQuoteRecord{}, nil
	}

	var it acceptedQuoteItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.AcceptedQuoteRecord{}, err
	}
	return fromAcceptedQuoteItem(it), nil
}

func (r *AcceptedQuoteDynamoRepository) Delete(ctx context.Context, quoteID string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"quote_id": &types.AttributeValueMemberS{Value: quoteID},
		},
	})
	return err
}

func (r *AcceptedQuoteDynamoRepository) ListAwaitingReminder(ctx context.Context, acceptedBefore time.Time) ([]entities.AcceptedQuoteRecord, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#status = :waiting AND #created_at_unix <= :cutoff AND attribute_not_exists(#reminder_sent_at)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":waiting": &types.AttributeValueMemberS{Value: string(entities.AcceptedQuoteStatusWaitingForRating)},
			":cutoff":  &types.AttributeValueMemberN{Value: strconv.FormatInt(acceptedBefore.UTC().UnixNano(), 10)},
		},
		ExpressionAttributeNames: map[string]string{
			"#status":           "status",
			"#created_at_unix":  "created_at_unix",
			"#reminder_sent_at": "reminder_sent_at",
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.AcceptedQuoteRecord, 0, len(out.Items))
	for _, raw := range out.Items {
		var it acceptedQuoteItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromAcceptedQuoteItem(it))
	}
	return items, nil
}

func (r *AcceptedQuoteDynamoRepository) MarkReminded(ctx context.Context, quoteID string, at time.Time) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"quote_id": &types.AttributeValueMemberS{Value: quoteID},
		},
		ConditionExpression: aws.String("attribute_exists(#quote_id)"),
		UpdateExpression:    aws.String("SET #reminder_sent_at = :at, #updated_at = :at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":at": &types.AttributeValueMemberS{Value: formatTime(at)},
		},
		ExpressionAttributeNames: map[string]string{
			"#quote_id":         "quote_id",
			"#reminder_sent_at": "reminder_sent_at",
			"#updated_at":       "updated_at",
		},
	})
	return err
}

func toAcceptedQuoteItem(rec entities.AcceptedQuoteRecord) acceptedQuoteItem {
	it := acceptedQuoteItem{
		QuoteID:          rec.QuoteID,
		RequestID:        rec.RequestID,
		UserID:           rec.UserID,
		ProfessionalID:   rec.ProfessionalID,
		ProfessionalName: rec.ProfessionalName,
		Price:            floatToString(rec.Price),
		PaymentMethod:    string(rec.PaymentMethod),
		Status:           string(rec.Status),
		CreatedAt:        formatTime(rec.CreatedAt),
		CreatedAtUnix:    rec.CreatedAt.UTC().UnixNano(),
		UpdatedAt:        formatTime(rec.UpdatedAt),
	}
	if rec.ReminderSentAt != nil {
		it.ReminderSentAt = formatTime(*rec.ReminderSentAt)
	}
	return it
}

func fromAcceptedQuoteItem(it acceptedQuoteItem) entities.AcceptedQuoteRecord {
	price, _ := strconv.ParseFloat(it.Price, 64)
	rec := entities.AcceptedQuoteRecord{
		QuoteID:          it.QuoteID,
		RequestID:        it.RequestID,
		UserID:           it.UserID,
		ProfessionalID:   it.ProfessionalID,
		ProfessionalName: it.ProfessionalName,
		Price:            price,
		PaymentMethod:    entities.PaymentMethod(it.PaymentMethod),
		Status:           entities.AcceptedQuoteStatus(it.Status),
		CreatedAt:        parseTime(it.CreatedAt),
		UpdatedAt:        parseTime(it.UpdatedAt),
	}
	if it.ReminderSentAt != "" {
		at := parseTime(it.ReminderSentAt)
		rec.ReminderSentAt = &at
	}
	return rec
}
