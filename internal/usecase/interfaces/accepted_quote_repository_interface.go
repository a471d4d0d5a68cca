package interfaces

import (
	"context"
	"time"

	"ofair/internal/domain/entities"
)

// IAcceptedQuoteRepository abstracts the accepted-quote side table.
//
// Contract notes:
//   - Save has upsert-on-conflict semantics keyed by quote_id.
//   - Delete is idempotent: deleting an absent record is a success.
//   - GetByRequestID answers the "does this request already have an accepted
//     quote" re-check that guards double acceptance.

type IAcceptedQuoteRepository interface {
	Save(ctx context.Context, rec entities.AcceptedQuoteRecord) (entities.AcceptedQuoteRecord, error)
	GetByQuoteID(ctx context.Context, quoteID string) (entities.AcceptedQuoteRecord, error)
	GetByRequestID(ctx context.Context, requestID string) (entities.AcceptedQuoteRecord, error)
	Delete(ctx context.Context, quoteID string) error
	ListAwaitingReminder(ctx context.Context, acceptedBefore time.Time) ([]entities.AcceptedQuoteRecord, error)
	MarkReminded(ctx context.Context, quoteID string, at time.Time) error
}
