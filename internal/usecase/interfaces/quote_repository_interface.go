package interfaces

import (
	"context"
	"ofair/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for Quote.
//
// The lifecycle coordinators only ever flip quote statuses; quote creation is
// owned by the professionals side and happens out of band.

type IQuoteRepository interface {
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	ListByRequestID(ctx context.Context, requestID string) ([]entities.Quote, error)
	CountByRequestID(ctx context.Context, requestID string) (int, error)
	UpdateStatus(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error)
}
