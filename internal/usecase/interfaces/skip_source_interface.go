package interfaces

import (
	"context"
	"skiphire/internal/domain/entities"
)

// ISkipSource abstracts the remote skip pricing API.
//
// Any transport failure or non-success HTTP status is returned as an error;
// callers do not distinguish between them.

type ISkipSource interface {
	ListByLocation(ctx context.Context, postcode, area string) ([]entities.Skip, error)
}
