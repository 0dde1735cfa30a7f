package repository

import (
	"testing"
	"time"

	"skiphire/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func TestQuoteItemMapping(t *testing.T) {
	created := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)
	q := entities.Quote{
		ID:             "q-1",
		SessionID:      "s-1",
		SkipID:         17934,
		Size:           6,
		HirePeriodDays: 14,
		PriceBeforeVAT: 305,
		VAT:            17.5,
		TotalPrice:     358.38,
		PermitRequired: true,
		Postcode:       "NR32",
		Area:           "Lowestoft",
		CreatedAt:      created,
	}

	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	total, ok := av["total_price"].(*types.AttributeValueMemberS)
	if !ok || total.Value != "358.38" {
		t.Fatalf("expected total stored as decimal string, got %#v", av["total_price"])
	}
	if _, ok := av["session_id"].(*types.AttributeValueMemberS); !ok {
		t.Fatalf("expected session_id attribute for the GSI, got %#v", av["session_id"])
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := fromQuoteItem(it)
	if got.TotalPrice != 358.38 || got.VAT != 17.5 || got.SkipID != 17934 || !got.PermitRequired {
		t.Fatalf("unexpected mapped quote: %+v", got)
	}
	if !got.CreatedAt.Equal(created) {
		t.Fatalf("unexpected created_at: %v", got.CreatedAt)
	}
}

func TestNewQuoteDynamoRepository_DefaultTable(t *testing.T) {
	if r := NewQuoteDynamoRepository(nil, ""); r.tableName != DefaultQuotesTableName {
		t.Fatalf("expected default table, got %s", r.tableName)
	}
	if r := NewQuoteDynamoRepository(nil, "skip_quotes"); r.tableName != "skip_quotes" {
		t.Fatalf("expected skip_quotes, got %s", r.tableName)
	}
}
