package repository

import (
	"context"
	"strconv"
	"time"

	"skiphire/internal/domain/entities"
	"skiphire/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	DefaultQuotesTableName = "quotes"
	quotesSessionIDIndex   = "session_id-index"
)

type quoteItem struct {
	ID             string `dynamodbav:"id"`
	SessionID      string `dynamodbav:"session_id"`
	SkipID         int    `dynamodbav:"skip_id"`
	Size           int    `dynamodbav:"size"`
	HirePeriodDays int    `dynamodbav:"hire_period_days"`
	PriceBeforeVAT string `dynamodbav:"price_before_vat"`
	VAT            string `dynamodbav:"vat"`
	TotalPrice     string `dynamodbav:"total_price"`
	PermitRequired bool   `dynamodbav:"permit_required"`
	Postcode       string `dynamodbav:"postcode"`
	Area           string `dynamodbav:"area"`
	CreatedAt      string `dynamodbav:"created_at"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: session_id-index (PK: session_id)
//
// Money is stored as decimal strings so totals read back exactly as quoted.

type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client, tableName string) *QuoteDynamoRepository {
	if tableName == "" {
		tableName = DefaultQuotesTableName
	}
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
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
		return entities.Quote{}, err
	}
	return q, nil
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

func (r *QuoteDynamoRepository) ListBySessionID(ctx context.Context, sessionID string) ([]entities.Quote, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quotesSessionIDIndex),
		KeyConditionExpression: aws.String("session_id = :sid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sid": &types.AttributeValueMemberS{Value: sessionID},
		},
	})
	if err != nil {
		return nil, err
	}

	quotes := make([]entities.Quote, 0, len(out.Items))
	for _, raw := range out.Items {
		var it quoteItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		quotes = append(quotes, fromQuoteItem(it))
	}
	return quotes, nil
}

func toQuoteItem(q entities.Quote) quoteItem {
	return quoteItem{
		ID:             q.ID,
		SessionID:      q.SessionID,
		SkipID:         q.SkipID,
		Size:           q.Size,
		HirePeriodDays: q.HirePeriodDays,
		PriceBeforeVAT: floatToString(q.PriceBeforeVAT),
		VAT:            floatToString(q.VAT),
		TotalPrice:     floatToString(q.TotalPrice),
		PermitRequired: q.PermitRequired,
		Postcode:       q.Postcode,
		Area:           q.Area,
		CreatedAt:      q.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromQuoteItem(it quoteItem) entities.Quote {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	price, _ := strconv.ParseFloat(it.PriceBeforeVAT, 64)
	vat, _ := strconv.ParseFloat(it.VAT, 64)
	total, _ := strconv.ParseFloat(it.TotalPrice, 64)
	return entities.Quote{
		ID:             it.ID,
		SessionID:      it.SessionID,
		SkipID:         it.SkipID,
		Size:           it.Size,
		HirePeriodDays: it.HirePeriodDays,
		PriceBeforeVAT: price,
		VAT:            vat,
		TotalPrice:     total,
		PermitRequired: it.PermitRequired,
		Postcode:       it.Postcode,
		Area:           it.Area,
		CreatedAt:      createdAt,
	}
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
