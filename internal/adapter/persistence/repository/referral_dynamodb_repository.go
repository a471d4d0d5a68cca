package repository

import (
	"context"

	"ofair/internal/domain/entities"
	"ofair/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultReferralsTableName = "referrals"

type referralItem struct {
	ID               string `dynamodbav:"id"`
	UserID           string `dynamodbav:"user_id"`
	ProfessionalID   string `dynamodbav:"professional_id"`
	ProfessionalName string `dynamodbav:"professional_name"`
	Phone            string `dynamodbav:"phone"`
	Profession       string `dynamodbav:"profession"`
	CreatedAt        string `dynamodbav:"created_at"`
}

// ReferralDynamoRepository persists Referral entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type ReferralDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IReferralRepository = (*ReferralDynamoRepository)(nil)

func NewReferralDynamoRepository(ddb *dynamodb.Client) *ReferralDynamoRepository {
	return &ReferralDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("REFERRALS_TABLE", defaultReferralsTableName),
	}
}

func (r *ReferralDynamoRepository) Save(ctx context.Context, ref entities.Referral) (entities.Referral, error) {
	av, err := attributevalue.MarshalMap(referralItem{
		ID:               ref.ID,
		UserID:           ref.UserID,
		ProfessionalID:   ref.ProfessionalID,
		ProfessionalName: ref.ProfessionalName,
		Phone:            ref.Phone,
		Profession:       ref.Profession,
		CreatedAt:        formatTime(ref.CreatedAt),
	})
	if err != nil {
		return entities.Referral{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Referral{}, err
	}
	return ref, nil
}
