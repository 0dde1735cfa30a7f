package interfaces

import (
	"context"
	"skiphire/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for Quote.
//
// The booking service must be able to:
//   - store a quote when a session's selection is confirmed
//   - read a quote back by id
//   - list the quotes confirmed from a session

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	ListBySessionID(ctx context.Context, sessionID string) ([]entities.Quote, error)
}
